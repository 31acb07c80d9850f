package database

import (
	"context"
	"database/sql"

	"github.com/chmielowski/baggage/internal/models"
	"github.com/chmielowski/baggage/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ItemRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ItemRepo: &ItemRepo{db: db},
	}
}

// Wrapper methods for ItemRepo
func (r *Repository) GetAllItems(ctx context.Context) ([]*models.Item, error) {
	return r.ItemRepo.GetAll(ctx)
}

func (r *Repository) GetItemByID(ctx context.Context, id types.ItemID) (*models.Item, error) {
	return r.ItemRepo.GetByID(ctx, id)
}

func (r *Repository) CreateItem(ctx context.Context, name string) (*models.Item, error) {
	return r.ItemRepo.Create(ctx, name)
}

func (r *Repository) SetItemPacked(ctx context.Context, id types.ItemID, isPacked bool) error {
	return r.ItemRepo.SetPacked(ctx, id, isPacked)
}

func (r *Repository) DeleteItem(ctx context.Context, id types.ItemID) error {
	return r.ItemRepo.Delete(ctx, id)
}

func (r *Repository) UndoDeleteItem(ctx context.Context, id types.ItemID) error {
	return r.ItemRepo.UndoDelete(ctx, id)
}

func (r *Repository) GetLastDeletedItem(ctx context.Context) (*models.Item, error) {
	return r.ItemRepo.GetLastDeleted(ctx)
}
