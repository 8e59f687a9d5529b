package store

import (
	"context"
	"database/sql"
)

// schema is the DDL for all tables. Statements use IF NOT EXISTS so
// migration is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id                       TEXT PRIMARY KEY,
		algorithm                TEXT NOT NULL,
		process_count            INTEGER NOT NULL,
		context_switch_overhead  INTEGER NOT NULL DEFAULT 0,
		time_quantum             INTEGER NOT NULL DEFAULT 0,
		total_time               INTEGER NOT NULL,
		cpu_utilization          REAL NOT NULL,
		average_waiting_time     REAL NOT NULL,
		average_turn_around_time REAL NOT NULL,
		response                 TEXT NOT NULL DEFAULT '',
		created_at               TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
