package app

import (
	"log/slog"

	"github.com/chmielowski/baggage/internal/database"
	"github.com/chmielowski/baggage/internal/events"
	"github.com/chmielowski/baggage/internal/packlist"
	"github.com/chmielowski/baggage/internal/services/item"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Change events for live updates. Nil when running without observers.
	bus    events.EventBus
	logger *slog.Logger

	// Service layer (business logic)
	ItemService item.Service
}

// New creates a new App with all services initialized.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &App{
		repo:        repo,
		bus:         cfg.bus,
		logger:      cfg.logger,
		ItemService: item.NewService(repo, cfg.bus),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Bus returns the change event bus, or nil.
func (a *App) Bus() events.EventBus {
	return a.bus
}

// NewListStore builds the packing list store on top of the item service.
// The caller owns the returned store and must Start and Close it.
func (a *App) NewListStore(opts ...packlist.Option) *packlist.Store {
	opts = append([]packlist.Option{packlist.WithLogger(a.logger)}, opts...)
	return packlist.New(a.ItemService, opts...)
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return nil
}
