package database

import (
	"context"

	"github.com/chmielowski/baggage/internal/models"
	"github.com/chmielowski/baggage/internal/types"
)

// ItemReader defines read operations for items.
type ItemReader interface {
	GetAllItems(ctx context.Context) ([]*models.Item, error)
	GetItemByID(ctx context.Context, id types.ItemID) (*models.Item, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	CreateItem(ctx context.Context, name string) (*models.Item, error)
	SetItemPacked(ctx context.Context, id types.ItemID, isPacked bool) error
}

// ItemTrash defines the reversible delete operations.
// Only the most recently deleted item can be restored.
type ItemTrash interface {
	DeleteItem(ctx context.Context, id types.ItemID) error
	UndoDeleteItem(ctx context.Context, id types.ItemID) error
	GetLastDeletedItem(ctx context.Context) (*models.Item, error)
}

// ItemRepository combines all item-related operations.
type ItemRepository interface {
	ItemReader
	ItemWriter
	ItemTrash
}
