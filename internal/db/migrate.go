package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// migration set can be re-run against an existing database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		user_id    TEXT PRIMARY KEY,
		id         TEXT NOT NULL,
		text       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'in-progress'
		           CHECK(status IN ('in-progress','completed')),
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		user_id    TEXT PRIMARY KEY,
		id         TEXT NOT NULL,
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS performance_metrics (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		skill_id        TEXT NOT NULL,
		success         INTEGER NOT NULL DEFAULT 0,
		completion_rate REAL NOT NULL,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_performance_metrics_user ON performance_metrics(user_id)`,
}
