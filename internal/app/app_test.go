package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmielowski/baggage/internal/database"
	"github.com/chmielowski/baggage/internal/events"
	"github.com/chmielowski/baggage/internal/packlist"
)

func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func TestNew(t *testing.T) {
	app := New(setupTestRepo(t))

	require.NotNil(t, app)
	assert.NotNil(t, app.ItemService)
	assert.NotNil(t, app.Repo())
	assert.Nil(t, app.Bus())
}

func TestNew_WithEventBus(t *testing.T) {
	broker := events.NewBroker(events.DefaultSubscriberBuffer, nil)
	defer broker.Close()

	app := New(setupTestRepo(t), WithEventBus(broker))
	assert.Equal(t, events.EventBus(broker), app.Bus())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := broker.Subscribe(ctx)

	_, err := app.ItemService.CreateItem(ctx, "Socks")
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventItemsChanged, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("expected an items_changed event")
	}
}

func TestNewListStore(t *testing.T) {
	broker := events.NewBroker(events.DefaultSubscriberBuffer, nil)
	defer broker.Close()
	app := New(setupTestRepo(t), WithEventBus(broker))

	ctx := context.Background()
	_, err := app.ItemService.CreateItem(ctx, "Socks")
	require.NoError(t, err)

	store := app.NewListStore()
	store.Start(ctx)
	defer store.Close()

	require.Eventually(t, func() bool {
		return len(store.CurrentModel().Items) == 1
	}, 2*time.Second, time.Millisecond)

	store.Submit(packlist.MarkPacked{ID: store.CurrentModel().Items[0].ID, IsPacked: true})
	require.Eventually(t, func() bool {
		return store.CurrentModel().Progress == 100
	}, 2*time.Second, time.Millisecond)
}

func TestClose(t *testing.T) {
	app := New(setupTestRepo(t))
	assert.NoError(t, app.Close())
}
