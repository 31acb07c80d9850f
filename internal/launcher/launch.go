package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/chmielowski/baggage/internal/app"
	"github.com/chmielowski/baggage/internal/config"
	"github.com/chmielowski/baggage/internal/database"
	"github.com/chmielowski/baggage/internal/events"
	"github.com/chmielowski/baggage/internal/logging"
	"github.com/chmielowski/baggage/internal/tui/core"
)

// Launch starts the TUI application and blocks until it exits.
func Launch(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else writes
	logCloser, err := logging.Init(cfg.DataDir, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	db, err := database.InitDB(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	broker := events.NewBroker(events.DefaultSubscriberBuffer, slog.Default())
	defer broker.Close()

	// Changes made by other processes (e.g. "baggage pack 3") arrive
	// through the database files; continue without them if watching fails.
	if err := events.WatchDatabase(ctx, cfg.DataDir, database.FileName, broker, events.DefaultThrottle); err != nil {
		slog.Warn("failed to watch database, continuing without live updates", "error", err)
	}

	application := app.New(database.NewRepository(db), app.WithEventBus(broker))
	defer func() { _ = application.Close() }()

	// Closed before the database so in-flight writes drain first
	store := application.NewListStore()
	store.Start(ctx)
	defer func() {
		store.Close()
		slog.Info("list store closed", "metrics", store.Metrics())
	}()

	tuiApp := core.New(ctx, store, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("shutting down")
	return nil
}
