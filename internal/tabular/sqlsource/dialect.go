package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Register the database/sql drivers used by the dialects.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect knows how to list tables and read them in a stable order.
type Dialect interface {
	// Name is the dialect name accepted by Open.
	Name() string
	// Driver is the database/sql driver name.
	Driver() string
	// Tables lists user tables in a stable order.
	Tables(ctx context.Context, db *sql.DB) ([]string, error)
	// SelectAll returns a query reading every row of table in a stable
	// order.
	SelectAll(ctx context.Context, db *sql.DB, table string) (string, error)
}

var dialects = map[string]Dialect{
	"sqlite":   sqliteDialect{},
	"postgres": postgresDialect{},
}

// LookupDialect returns the dialect registered under name.
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("sqlsource: unknown dialect %q (expected sqlite or postgres)", name)
	}

	return d, nil
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string   { return "sqlite" }
func (sqliteDialect) Driver() string { return "sqlite" }

func (sqliteDialect) Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	return queryNames(ctx, db,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`)
}

// SelectAll orders by rowid, or by the primary key for WITHOUT ROWID tables.
func (sqliteDialect) SelectAll(ctx context.Context, db *sql.DB, table string) (string, error) {
	query := "SELECT * FROM " + quoteIdent(table)

	var withoutRowid bool

	err := db.QueryRowContext(ctx,
		`SELECT wr FROM pragma_table_list WHERE schema = 'main' AND name = ?`, table).Scan(&withoutRowid)
	if err != nil {
		return "", fmt.Errorf("inspecting table %q: %w", table, err)
	}

	if !withoutRowid {
		return query + " ORDER BY rowid", nil
	}

	keys, err := queryNames(ctx, db,
		`SELECT name FROM pragma_table_info(?) WHERE pk > 0 ORDER BY pk`, table)
	if err != nil {
		return "", fmt.Errorf("primary key of %q: %w", table, err)
	}

	if len(keys) == 0 {
		return query, nil
	}

	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = quoteIdent(k)
	}

	return query + " ORDER BY " + strings.Join(quoted, ", "), nil
}

type postgresDialect struct{}

func (postgresDialect) Name() string   { return "postgres" }
func (postgresDialect) Driver() string { return "pgx" }

func (postgresDialect) Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	return queryNames(ctx, db,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		 ORDER BY table_name`)
}

func (postgresDialect) SelectAll(_ context.Context, _ *sql.DB, table string) (string, error) {
	return "SELECT * FROM " + quoteIdent(table) + " ORDER BY ctid", nil
}

func queryNames(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
