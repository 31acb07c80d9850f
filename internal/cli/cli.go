package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/chmielowski/baggage/internal/app"
	"github.com/chmielowski/baggage/internal/cli/styles"
	"github.com/chmielowski/baggage/internal/config"
	"github.com/chmielowski/baggage/internal/database"
)

type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB
}

// NewCLI loads the configuration and opens the database.
// Writes are picked up by running TUIs through their database watcher, so
// no event bus is attached here.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:    app.New(database.NewRepository(db)),
		Config: cfg,
		db:     db,
	}, nil
}

// WithApp returns a context carrying an existing App. Commands run with it
// use that App instead of opening the on-disk database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI around the App stored by WithApp, or a
// freshly initialized one.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			cfg := config.Default()
			styles.Init(cfg.ColorScheme)
			return &CLI{App: a, Config: cfg}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		slog.Error("error closing app", "error", err)
	}
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
