package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/chmielowski/baggage/internal/database"
)

// SetupTestDB creates a migrated in-memory database that is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestItem inserts an item and returns its ID
func CreateTestItem(t *testing.T, db *sql.DB, name string, isPacked bool) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		"INSERT INTO items (name, is_packed) VALUES (?, ?)", name, isPacked)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get item ID: %v", err)
	}
	return int(id)
}

// ItemPacked reads the packed flag of a row, trashed or not
func ItemPacked(t *testing.T, db *sql.DB, id int) bool {
	t.Helper()

	var packed bool
	err := db.QueryRowContext(context.Background(),
		"SELECT is_packed FROM items WHERE id = ?", id).Scan(&packed)
	if err != nil {
		t.Fatalf("Failed to read item %d: %v", id, err)
	}
	return packed
}

// CountLiveItems counts rows that are not in the trash
func CountLiveItems(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM items WHERE deleted_at IS NULL").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count items: %v", err)
	}
	return count
}
