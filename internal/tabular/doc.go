// Package tabular defines the read-only view of a spreadsheet-like dataset:
// named sheets holding ordered rows of typed cells.
//
// Concrete sources live in subpackages (xlsx, sqlsource); Memory is an
// in-process source for tests and embedded datasets. Cell values are always
// one of nil, string, int64, float64, bool or time.Time.
package tabular
