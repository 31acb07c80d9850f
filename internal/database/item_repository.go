package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chmielowski/baggage/internal/models"
	"github.com/chmielowski/baggage/internal/types"
)

// ItemRepo handles all item-related database operations.
// Rows with a non-NULL deleted_at sit in the trash and are invisible to readers.
type ItemRepo struct {
	db *sql.DB
}

const itemColumns = `id, name, is_packed, created_at`

func scanItem(row interface{ Scan(...any) error }) (*models.Item, error) {
	var (
		id        int
		item      models.Item
		createdAt sql.NullTime
	)
	if err := row.Scan(&id, &item.Name, &item.IsPacked, &createdAt); err != nil {
		return nil, err
	}
	item.ID = types.ItemID(id)
	item.CreatedAt = NullTimeToTime(createdAt)
	return &item, nil
}

// GetAll retrieves every live item ordered by id
func (r *ItemRepo) GetAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE deleted_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID retrieves a live item
func (r *ItemRepo) GetByID(ctx context.Context, id types.ItemID) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND deleted_at IS NULL`, id.ToInt())
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, models.ErrItemNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}

// Create inserts a new unpacked item
func (r *ItemRepo) Create(ctx context.Context, name string) (*models.Item, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO items (name, is_packed) VALUES (?, 0)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read item id: %w", err)
	}

	return r.GetByID(ctx, types.ItemID(id))
}

// SetPacked updates the packed flag of a live item
func (r *ItemRepo) SetPacked(ctx context.Context, id types.ItemID, isPacked bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET is_packed = ? WHERE id = ? AND deleted_at IS NULL`,
		isPacked, id.ToInt())
	if err != nil {
		return fmt.Errorf("failed to update item %d: %w", id, err)
	}
	return requireAffected(result, id.ToInt())
}

// Delete moves a live item to the trash. Whatever was in the trash before is
// purged in the same transaction, so at most one row is ever restorable.
func (r *ItemRepo) Delete(ctx context.Context, id types.ItemID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM items WHERE deleted_at IS NOT NULL AND id != ?`, id.ToInt()); err != nil {
			return fmt.Errorf("failed to purge trash: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE items SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
			id.ToInt())
		if err != nil {
			return fmt.Errorf("failed to delete item %d: %w", id, err)
		}
		return requireAffected(result, id.ToInt())
	})
}

// UndoDelete restores a trashed item under its original id
func (r *ItemRepo) UndoDelete(ctx context.Context, id types.ItemID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`, id.ToInt())
	if err != nil {
		return fmt.Errorf("failed to restore item %d: %w", id, err)
	}
	return requireAffected(result, id.ToInt())
}

// GetLastDeleted returns the item currently in the trash
func (r *ItemRepo) GetLastDeleted(ctx context.Context) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE deleted_at IS NOT NULL
		 ORDER BY deleted_at DESC, id DESC LIMIT 1`)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNothingToUndo
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deleted item: %w", err)
	}
	return item, nil
}
