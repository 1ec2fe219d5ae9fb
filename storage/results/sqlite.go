package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// OpenSQLite opens (creating if needed) a SQLite database file. The
// special path ":memory:" keeps the table in process memory.
func OpenSQLite(ctx context.Context, path string, opts ...Option) (*SQL, error) {
	if path == "" {
		path = "results.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("results.OpenSQLite: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("results.OpenSQLite: %w", err)
	}
	// One connection: ":memory:" databases are per connection and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("results.OpenSQLite: %w", err)
	}

	return newSQL(db, sqliteDialect, opts...), nil
}
