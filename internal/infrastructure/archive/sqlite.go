// Package archive keeps a local history of scraper runs in SQLite so price
// trends can be inspected after the fact.
package archive

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/oilwatch/backend/internal/domain"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_at         TIMESTAMP NOT NULL,
	total          INTEGER NOT NULL,
	added          INTEGER NOT NULL,
	removed        INTEGER NOT NULL,
	price_changes  INTEGER NOT NULL,
	avg_change_pct REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_run_at ON runs (run_at);
`

// Archive is a SQLite-backed run history store.
type Archive struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the archive database at path.
func Open(path string) (*Archive, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run archive: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize run archive: %w", err)
	}

	return &Archive{db: db}, nil
}

// RecordRun appends one run summary to the history.
func (a *Archive) RecordRun(ctx context.Context, run domain.RunSummary) error {
	const query = `
		INSERT INTO runs (run_at, total, added, removed, price_changes, avg_change_pct)
		VALUES (:run_at, :total, :added, :removed, :price_changes, :avg_change_pct)`

	if _, err := a.db.NamedExecContext(ctx, query, run); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent run summaries, newest first.
func (a *Archive) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
		SELECT run_at, total, added, removed, price_changes, avg_change_pct
		FROM runs
		ORDER BY run_at DESC, id DESC
		LIMIT ?`

	var runs []domain.RunSummary
	if err := a.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Close releases the underlying database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}
