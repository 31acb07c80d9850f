package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/chmielowski/baggage/internal/config"
	"github.com/chmielowski/baggage/internal/packlist"
	"github.com/chmielowski/baggage/internal/services/item"
	"github.com/chmielowski/baggage/internal/tui/state"
	"github.com/chmielowski/baggage/internal/tui/theme"
)

// ListStore is the part of the packing list store the screen talks to.
type ListStore interface {
	Submit(intent packlist.Intent)
	ObserveModel(ctx context.Context) <-chan packlist.Model
	ObserveLabels(ctx context.Context) <-chan packlist.Label
}

// Model is the Bubble Tea model for the packing list screen.
// It keeps no list state of its own: every change goes to the store as an
// intent and comes back as a packlist.Model.
type Model struct {
	Ctx    context.Context
	Config *config.Config
	Keys   KeyMap

	store    ListStore
	modelCh  <-chan packlist.Model
	labelsCh <-chan packlist.Label

	List          packlist.Model
	Cursor        int
	Input         textinput.Model
	Notifications *state.NotificationState
	ShowHelp      bool
	Width         int
	Height        int

	canUndo bool
}

// InitialModel subscribes to the store and prepares the screen.
func InitialModel(ctx context.Context, store ListStore, cfg *config.Config) Model {
	theme.Init(cfg.ColorScheme)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item name..."
	ti.CharLimit = item.MaxNameLength

	return Model{
		Ctx:           ctx,
		Config:        cfg,
		Keys:          NewKeyMap(cfg.KeyMappings),
		store:         store,
		modelCh:       store.ObserveModel(ctx),
		labelsCh:      store.ObserveLabels(ctx),
		Input:         ti,
		Notifications: state.NewNotificationState(),
	}
}

// Init starts listening to both store streams.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForModel(m.Ctx, m.modelCh),
		waitForLabel(m.Ctx, m.labelsCh),
	)
}

// SelectedRow returns the row under the cursor.
func (m Model) SelectedRow() (packlist.ItemRow, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.List.Items) {
		return packlist.ItemRow{}, false
	}
	return m.List.Items[m.Cursor], true
}
