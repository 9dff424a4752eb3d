package history

import (
	"context"
	"database/sql"
	"fmt"
)

// schema contains the DDL for the history tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id               TEXT PRIMARY KEY,
		created_at       TEXT NOT NULL,
		source           TEXT NOT NULL DEFAULT '',
		quantum          INTEGER NOT NULL,
		io_wait          INTEGER NOT NULL,
		promotion        TEXT NOT NULL,
		averages         TEXT NOT NULL,
		processes        INTEGER NOT NULL,
		switches         INTEGER NOT NULL,
		instructions     INTEGER NOT NULL,
		avg_switches     REAL NOT NULL,
		avg_instructions REAL NOT NULL,
		trace            TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
