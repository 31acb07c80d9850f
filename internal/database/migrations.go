package database

import (
	"context"
	"database/sql"
	"fmt"
)

// runMigrations creates the database schema if needed.
// Statements are idempotent so this runs on every start.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		// deleted_at marks the single trashed row kept around for undo
		`CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			is_packed BOOLEAN NOT NULL DEFAULT 0,
			deleted_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_deleted_at ON items(deleted_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
