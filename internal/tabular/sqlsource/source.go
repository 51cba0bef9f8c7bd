package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"graph-loader/internal/tabular"
)

// Source is a tabular.Source over a SQL database.
type Source struct {
	ctx     context.Context
	db      *sql.DB
	dialect Dialect
	tables  []string
	owned   bool
}

// Open connects to dsn with the named dialect and lists its tables. Close
// the source when done.
func Open(ctx context.Context, dialect, dsn string) (*Source, error) {
	d, err := LookupDialect(dialect)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.Driver(), dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: opening %s database: %w", d.Name(), err)
	}

	s, err := New(ctx, db, d)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s.owned = true

	return s, nil
}

// New wraps an open database. The table list is read once, here.
func New(ctx context.Context, db *sql.DB, d Dialect) (*Source, error) {
	tables, err := d.Tables(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: listing %s tables: %w", d.Name(), err)
	}

	return &Source{ctx: ctx, db: db, dialect: d, tables: tables}, nil
}

// SheetNames implements tabular.Source.
func (s *Source) SheetNames() []string {
	return append([]string(nil), s.tables...)
}

// Rows implements tabular.Source.
func (s *Source) Rows(table string) (tabular.RowIterator, error) {
	if !slices.Contains(s.tables, table) {
		return nil, fmt.Errorf("sqlsource: no table %q", table)
	}

	query, err := s.dialect.SelectAll(s.ctx, s.db, table)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: %w", err)
	}

	rows, err := s.db.QueryContext(s.ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: reading table %q: %w", table, err)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("sqlsource: column types of %q: %w", table, err)
	}

	header := make([]any, len(types))
	temporal := make([]bool, len(types))

	for i, ct := range types {
		header[i] = ct.Name()
		temporal[i] = temporalType(ct.DatabaseTypeName())
	}

	return &rowIterator{table: table, rows: rows, header: header, temporal: temporal}, nil
}

// Close closes the database if Open created it.
func (s *Source) Close() error {
	if !s.owned {
		return nil
	}

	return s.db.Close()
}

type rowIterator struct {
	table    string
	rows     *sql.Rows
	header   []any
	temporal []bool

	number int
	row    *tabular.Row
	err    error
}

func (it *rowIterator) Next() bool {
	it.row = nil

	if it.err != nil {
		return false
	}

	it.number++

	if it.number == 1 {
		it.row = &tabular.Row{Sheet: it.table, Number: 1, Cells: it.header}
		return true
	}

	if !it.rows.Next() {
		it.err = it.rows.Err()
		return false
	}

	raw := make([]any, len(it.header))
	dest := make([]any, len(raw))

	for i := range raw {
		dest[i] = &raw[i]
	}

	if err := it.rows.Scan(dest...); err != nil {
		it.err = fmt.Errorf("sqlsource: table %q row %d: %w", it.table, it.number, err)
		return false
	}

	for i, v := range raw {
		raw[i] = convert(v, it.temporal[i])
	}

	it.row = &tabular.Row{Sheet: it.table, Number: it.number, Cells: raw}

	return true
}

func (it *rowIterator) Row() *tabular.Row { return it.row }

func (it *rowIterator) Err() error { return it.err }

func (it *rowIterator) Close() error {
	it.row = nil
	return it.rows.Close()
}

func temporalType(name string) bool {
	name = strings.ToUpper(name)

	return strings.HasPrefix(name, "DATE") || strings.HasPrefix(name, "TIMESTAMP")
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// convert maps driver values onto the cell types of tabular.Row.
func convert(v any, temporal bool) any {
	switch t := v.(type) {
	case []byte:
		return convert(string(t), temporal)
	case string:
		if temporal {
			for _, layout := range timeLayouts {
				if ts, err := time.Parse(layout, t); err == nil {
					return ts
				}
			}
		}

		return t
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case int16:
		return int64(t)
	case int8:
		return int64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
