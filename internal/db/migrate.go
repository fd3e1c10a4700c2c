package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE additions tolerate re-runs via the duplicate-column check.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_date TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_items (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		start_date TEXT,
		end_date   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_items_project ON work_items(project_id)`,

	// position preserves the declared edge order per successor so the
	// engine's tie-breaking stays deterministic across loads.
	`CREATE TABLE IF NOT EXISTS dependencies (
		successor_id   TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		predecessor_id TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		dep_type       TEXT NOT NULL DEFAULT 'FS'
		               CHECK(dep_type IN ('FS','SS','FF','SF')),
		lag_days       INTEGER NOT NULL DEFAULT 0,
		position       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (successor_id, predecessor_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_predecessor ON dependencies(predecessor_id)`,
}
