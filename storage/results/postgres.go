package results

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const defaultDSN = "postgres://localhost/cliffordsim?sslmode=disable"

// OpenPostgres connects through the pgx database/sql driver. An empty dsn
// uses a local default.
func OpenPostgres(ctx context.Context, dsn string, opts ...Option) (*SQL, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("results.OpenPostgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("results.OpenPostgres: ping: %w", err)
	}

	return newSQL(db, postgresDialect, opts...), nil
}
