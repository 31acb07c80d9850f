package app

import (
	"log/slog"

	"github.com/chmielowski/baggage/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	bus    events.EventBus
	logger *slog.Logger
}

// WithEventBus sets the change event bus shared by the services and observers
func WithEventBus(bus events.EventBus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
