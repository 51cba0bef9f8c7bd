// Package diagnostic collects structured findings produced while validating
// a mapping file, so every problem in a file is reported in one pass instead
// of stopping at the first.
//
// Key capabilities:
//   - Error, warning and info severities with stable codes
//   - Definition and attribute locations ("[entity staff] labels[1]")
//   - "did you mean" suggestions for misspelled names
package diagnostic
