// Package value provides resolvers: small producers that turn a tabular row
// into a single value.
//
// A Column resolver reads a cell and runs it through extract, cast, then
// transform. A Fixed resolver returns a constant and ignores the row. Wrap
// is the one place where plain literals become resolvers, so every API that
// takes a resolver also accepts a constant.
package value
