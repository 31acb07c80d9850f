package core

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmielowski/baggage/internal/app"
	"github.com/chmielowski/baggage/internal/config"
	"github.com/chmielowski/baggage/internal/database"
	"github.com/chmielowski/baggage/internal/events"
	"github.com/chmielowski/baggage/internal/packlist"
	"github.com/chmielowski/baggage/internal/testutil"
	"github.com/chmielowski/baggage/internal/tui"
)

// setupApp starts a real list store over an in-memory database
func setupApp(t *testing.T, names ...string) (*App, *packlist.Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	db := testutil.SetupTestDB(t)
	for _, name := range names {
		testutil.CreateTestItem(t, db, name, false)
	}

	broker := events.NewBroker(events.DefaultSubscriberBuffer, nil)
	t.Cleanup(broker.Close)

	application := app.New(database.NewRepository(db), app.WithEventBus(broker))
	store := application.NewListStore()
	store.Start(ctx)
	t.Cleanup(store.Close)

	require.Eventually(t, func() bool {
		return len(store.CurrentModel().Items) == len(names)
	}, 2*time.Second, time.Millisecond)

	a := New(ctx, store, config.Default())
	_, _ = a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return a, store
}

// nextModel runs the pending model listener and feeds its message back in
func nextModel(t *testing.T, a *App, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	msg := cmd()
	_, ok := msg.(tui.ModelMsg)
	require.True(t, ok, "expected a model message, got %T", msg)
	_, next := a.Update(msg)
	return next
}

func TestAppImplementsTeaModel(t *testing.T) {
	a, _ := setupApp(t)
	var _ tea.Model = a
	require.NotNil(t, a.Init())
	require.NotNil(t, a.GetModel())
}

func TestApp_RendersStoreModel(t *testing.T) {
	a, _ := setupApp(t, "Pants", "Socks")

	batch, ok := a.Init()().(tea.BatchMsg)
	require.True(t, ok)
	nextModel(t, a, batch[0])

	require.Len(t, a.GetModel().List.Items, 2)
	assert.Contains(t, a.View().Content, "Socks")
}

func TestApp_TogglePackedRoundTrip(t *testing.T) {
	a, _ := setupApp(t, "Pants")

	batch, ok := a.Init()().(tea.BatchMsg)
	require.True(t, ok)
	next := nextModel(t, a, batch[0])
	require.Len(t, a.GetModel().List.Items, 1)

	_, _ = a.Update(tea.KeyPressMsg(tea.Key{Code: ' '}))

	// The replayed model may still be the old one; read until packed
	for range 10 {
		next = nextModel(t, a, next)
		if a.GetModel().List.Progress == 100 {
			break
		}
	}
	assert.Equal(t, 100, a.GetModel().List.Progress)
	assert.True(t, a.GetModel().List.Items[0].IsChecked)
}
