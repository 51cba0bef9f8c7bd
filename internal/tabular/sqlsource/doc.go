// Package sqlsource exposes the tables of a SQL database as a
// tabular.Source. Each table is a sheet whose first row holds the column
// names, followed by the table rows in storage order.
//
// Two dialects are supported: "sqlite" (modernc.org/sqlite) and "postgres"
// (pgx through database/sql).
package sqlsource
