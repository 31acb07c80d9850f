package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/chmielowski/baggage/internal/database"
	"github.com/chmielowski/baggage/internal/events"
	"github.com/chmielowski/baggage/internal/models"
	"github.com/chmielowski/baggage/internal/types"
)

// Service defines all item-related business operations
type Service interface {
	// Read operations
	ListItems(ctx context.Context) ([]*models.Item, error)
	GetItem(ctx context.Context, id types.ItemID) (*models.Item, error)
	Stats(ctx context.Context) (models.PackingStats, error)

	// Write operations
	CreateItem(ctx context.Context, name string) (*models.Item, error)
	SetPacked(ctx context.Context, id types.ItemID, isPacked bool) error
	DeleteItem(ctx context.Context, id types.ItemID) (*models.Item, error)
	UndoDelete(ctx context.Context, id types.ItemID) error
	UndoLastDelete(ctx context.Context) (*models.Item, error)

	// Observe streams the item list: the current snapshot first, then a
	// fresh one after every change. The channel closes when ctx ends.
	Observe(ctx context.Context) <-chan []*models.Item
}

// service implements Service interface
type service struct {
	repo database.DataStore
	bus  events.EventBus
}

// NewService creates a new item service. bus may be nil, in which case
// writes are not announced and Observe emits only the initial snapshot.
func NewService(repo database.DataStore, bus events.EventBus) Service {
	return &service{
		repo: repo,
		bus:  bus,
	}
}

// ListItems retrieves all live items ordered by id
func (s *service) ListItems(ctx context.Context) ([]*models.Item, error) {
	return s.repo.GetAllItems(ctx)
}

// GetItem retrieves a single live item
func (s *service) GetItem(ctx context.Context, id types.ItemID) (*models.Item, error) {
	if !id.Valid() {
		return nil, ErrInvalidItemID
	}
	return s.repo.GetItemByID(ctx, id)
}

// Stats summarizes packing progress
func (s *service) Stats(ctx context.Context) (models.PackingStats, error) {
	items, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return models.PackingStats{}, fmt.Errorf("failed to list items: %w", err)
	}
	return models.StatsFor(items), nil
}

// CreateItem creates a new unpacked item with validation
func (s *service) CreateItem(ctx context.Context, name string) (*models.Item, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.CreateItem(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.publishItemsChanged()
	return item, nil
}

// SetPacked marks an item packed or unpacked
func (s *service) SetPacked(ctx context.Context, id types.ItemID, isPacked bool) error {
	if !id.Valid() {
		return ErrInvalidItemID
	}

	if err := s.repo.SetItemPacked(ctx, id, isPacked); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	s.publishItemsChanged()
	return nil
}

// DeleteItem moves an item to the trash and returns it as it was before
// the delete, so callers can name it in an undo prompt.
func (s *service) DeleteItem(ctx context.Context, id types.ItemID) (*models.Item, error) {
	if !id.Valid() {
		return nil, ErrInvalidItemID
	}

	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	s.publishItemsChanged()
	return item, nil
}

// UndoDelete restores a trashed item under its original id
func (s *service) UndoDelete(ctx context.Context, id types.ItemID) error {
	if !id.Valid() {
		return ErrInvalidItemID
	}

	if err := s.repo.UndoDeleteItem(ctx, id); err != nil {
		return fmt.Errorf("failed to restore item: %w", err)
	}

	s.publishItemsChanged()
	return nil
}

// UndoLastDelete restores whatever item is in the trash
func (s *service) UndoLastDelete(ctx context.Context) (*models.Item, error) {
	item, err := s.repo.GetLastDeletedItem(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.UndoDelete(ctx, item.ID); err != nil {
		return nil, err
	}
	return item, nil
}

// Observe implements the item observer
func (s *service) Observe(ctx context.Context) <-chan []*models.Item {
	out := make(chan []*models.Item)

	// Subscribe before the first read so no change can slip in between
	var changes <-chan events.Event
	if s.bus != nil {
		changes = s.bus.Subscribe(ctx)
	}

	go func() {
		defer close(out)

		emit := func() bool {
			items, err := s.repo.GetAllItems(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("item observer query failed", "error", err)
				}
				return true
			}
			select {
			case out <- items:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					<-ctx.Done()
					return
				}
				drain(changes)
				if !emit() {
					return
				}
			}
		}
	}()

	return out
}

// drain discards queued events; one re-read covers all of them.
func drain(ch <-chan events.Event) {
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// validateName trims the name and checks it
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// publishItemsChanged announces a committed write
func (s *service) publishItemsChanged() {
	if s.bus == nil {
		return
	}
	events.NotifyItemsChanged(s.bus)
}
