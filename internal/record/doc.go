// Package record turns the rows of a sheet into Records according to one
// mapping.Definition.
//
// Consume opens the sheet named by the definition's page selector and returns
// a lazy, single-pass Cursor. The first row of every sheet is a header and is
// always skipped. Rows rejected by the definition's predicate produce no
// Record.
//
// Records are values: once produced they are not modified. Cross-referencing
// (package xref) returns bound copies instead of filling in endpoints in place.
package record
