// Package results appends sweep samples to SQL tables. One Record is one
// point of one sample series of one data slide.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrClosed indicates use of a sink after Close.
var ErrClosed = errors.New("results: sink closed")

// Record is one row of the samples table.
type Record struct {
	RunID      string
	RunName    string
	Slide      int                // index of the data slide within the run
	Params     map[string]float64 // slide parameters, ints widened
	Series     string             // e.g. "entropy"
	Index      int                // position within the series
	Mean       float64
	Std        float64
	NumSamples int
}

// Sink receives records from a sweep.
type Sink interface {
	// Init creates the schema if needed.
	Init(ctx context.Context) error
	// Write appends records atomically.
	Write(ctx context.Context, recs []Record) error
	Close() error
}

// dialect captures the per-driver SQL differences.
type dialect struct {
	name        string
	placeholder func(i int) string
	realType    string
}

var (
	sqliteDialect = dialect{
		name:        "sqlite",
		placeholder: func(int) string { return "?" },
		realType:    "REAL",
	}
	postgresDialect = dialect{
		name:        "postgres",
		placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
		realType:    "DOUBLE PRECISION",
	}
)

const table = "samples"

// SQL is a Sink on a database/sql handle.
type SQL struct {
	db      *sql.DB
	dialect dialect
	log     *zap.Logger
}

// Option configures a SQL sink.
type Option func(*SQL)

// WithLogger routes sink diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *SQL) {
		if l != nil {
			s.log = l
		}
	}
}

func newSQL(db *sql.DB, d dialect, opts ...Option) *SQL {
	s := &SQL{db: db, dialect: d, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DB exposes the handle for inspection in tests.
func (s *SQL) DB() *sql.DB { return s.db }

// Init creates the samples table.
func (s *SQL) Init(ctx context.Context) error {
	if s.db == nil {
		return ErrClosed
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		run_id      TEXT NOT NULL,
		run_name    TEXT NOT NULL,
		slide       INTEGER NOT NULL,
		params      TEXT NOT NULL,
		series      TEXT NOT NULL,
		idx         INTEGER NOT NULL,
		mean        %[2]s NOT NULL,
		std         %[2]s NOT NULL,
		num_samples INTEGER NOT NULL,
		PRIMARY KEY (run_id, slide, series, idx)
	)`, table, s.dialect.realType)
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("results.Init(%s): %w", s.dialect.name, err)
	}

	return nil
}

// Write inserts recs in one transaction.
func (s *SQL) Write(ctx context.Context, recs []Record) (err error) {
	if s.db == nil {
		return ErrClosed
	}
	if len(recs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("results.Write: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, s.insertSQL())
	if err != nil {
		return fmt.Errorf("results.Write: prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range recs {
		params, err := json.Marshal(r.Params)
		if err != nil {
			return fmt.Errorf("results.Write: params: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, r.RunID, r.RunName, r.Slide, string(params),
			r.Series, r.Index, r.Mean, r.Std, r.NumSamples); err != nil {
			return fmt.Errorf("results.Write: slide %d %s[%d]: %w", r.Slide, r.Series, r.Index, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("results.Write: commit: %w", err)
	}
	s.log.Debug("results written", zap.String("driver", s.dialect.name), zap.Int("records", len(recs)))

	return nil
}

func (s *SQL) insertSQL() string {
	cols := []string{"run_id", "run_name", "slide", "params", "series", "idx", "mean", "std", "num_samples"}
	ph := make([]string, len(cols))
	for i := range ph {
		ph[i] = s.dialect.placeholder(i + 1)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(ph, ", "))
}

// Read returns the records of runID ordered by slide, series and index.
func (s *SQL) Read(ctx context.Context, runID string) ([]Record, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	q := fmt.Sprintf(`SELECT run_id, run_name, slide, params, series, idx, mean, std, num_samples
		FROM %s WHERE run_id = %s ORDER BY slide, series, idx`, table, s.dialect.placeholder(1))
	rows, err := s.db.QueryContext(ctx, q, runID)
	if err != nil {
		return nil, fmt.Errorf("results.Read: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var r Record
		var params string
		if err := rows.Scan(&r.RunID, &r.RunName, &r.Slide, &params, &r.Series, &r.Index,
			&r.Mean, &r.Std, &r.NumSamples); err != nil {
			return nil, fmt.Errorf("results.Read: scan: %w", err)
		}
		if err := json.Unmarshal([]byte(params), &r.Params); err != nil {
			return nil, fmt.Errorf("results.Read: params: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("results.Read: %w", err)
	}

	return out, nil
}

// Close releases the handle. Further calls return ErrClosed.
func (s *SQL) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}
