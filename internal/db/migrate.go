package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full set is re-run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		archived   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	// project_id deliberately carries no foreign key: entries must survive
	// whatever happens to their project row, and name resolution falls back
	// to a sentinel.
	`CREATE TABLE IF NOT EXISTS time_entries (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		started_at TEXT NOT NULL,
		ended_at   TEXT,
		note       TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_project ON time_entries(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_started ON time_entries(started_at)`,
}
