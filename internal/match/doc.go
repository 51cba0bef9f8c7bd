// Package match ranks known names against a misspelled one so errors and
// diagnostics can say "did you mean ...".
//
// Names are compared after normalization (case folded, separators removed),
// so "Last_Name", "lastName" and "last name" are all the same key.
package match
