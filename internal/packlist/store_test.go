package packlist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmielowski/baggage/internal/database"
	"github.com/chmielowski/baggage/internal/events"
	"github.com/chmielowski/baggage/internal/packlist"
	"github.com/chmielowski/baggage/internal/services/item"
	"github.com/chmielowski/baggage/internal/types"
)

const waitFor = 2 * time.Second

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupStore starts a store over a fresh database holding one unpacked "Pants"
func setupStore(t *testing.T) (*packlist.Store, types.ItemID) {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	broker := events.NewBroker(16, nil)
	t.Cleanup(broker.Close)

	svc := item.NewService(database.NewRepository(db), broker)
	pants, err := svc.CreateItem(ctx, "Pants")
	require.NoError(t, err)

	store := packlist.New(svc)
	store.Start(ctx)
	t.Cleanup(store.Close)

	waitModel(t, store, func(m packlist.Model) bool { return len(m.Items) == 1 })
	return store, pants.ID
}

func waitModel(t *testing.T, s *packlist.Store, cond func(packlist.Model) bool) packlist.Model {
	t.Helper()
	require.Eventually(t, func() bool {
		return cond(s.CurrentModel())
	}, waitFor, time.Millisecond)
	return s.CurrentModel()
}

func waitProcessed(t *testing.T, s *packlist.Store, n int64) {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.Metrics().IntentsProcessed >= n
	}, waitFor, time.Millisecond)
}

func rowNamed(m packlist.Model, name string) (packlist.ItemRow, bool) {
	for _, r := range m.Items {
		if r.Name == name {
			return r, true
		}
	}
	return packlist.ItemRow{}, false
}

func hasID(m packlist.Model, id types.ItemID) bool {
	for _, r := range m.Items {
		if r.ID == id {
			return true
		}
	}
	return false
}

func nextLabel(t *testing.T, ch <-chan packlist.Label) packlist.Label {
	t.Helper()
	select {
	case l, ok := <-ch:
		require.True(t, ok, "label channel closed")
		return l
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for label")
		return nil
	}
}

func noLabel(t *testing.T, ch <-chan packlist.Label) {
	t.Helper()
	select {
	case l := <-ch:
		t.Fatalf("unexpected label %v", l)
	case <-time.After(50 * time.Millisecond):
	}
}

// ============================================================================
// EDIT MODE
// ============================================================================

func TestEnterEditMode_ShowsEmptyInput(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)

	store.Submit(packlist.EnterEditMode{})
	m := waitModel(t, store, func(m packlist.Model) bool { return m.IsInputVisible })

	assert.False(t, m.IsAddNewVisible)
	assert.Empty(t, m.NewItemName)
}

func TestAddItem_Socks(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)

	store.Submit(packlist.EnterEditMode{})
	store.Submit(packlist.SetNewItemName{Text: "Socks"})
	store.Submit(packlist.ConfirmAddingItem{})

	m := waitModel(t, store, func(m packlist.Model) bool {
		_, ok := rowNamed(m, "Socks")
		return ok
	})
	assert.False(t, m.IsInputVisible)
	assert.True(t, m.IsAddNewVisible)
	assert.Len(t, m.Items, 2)

	socks, _ := rowNamed(m, "Socks")
	assert.False(t, socks.IsChecked)
}

func TestAddItem_NameIsTrimmed(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)

	store.Submit(packlist.EnterEditMode{})
	store.Submit(packlist.SetNewItemName{Text: "  Hat  "})
	store.Submit(packlist.ConfirmAddingItem{})

	waitModel(t, store, func(m packlist.Model) bool {
		_, ok := rowNamed(m, "Hat")
		return ok
	})
}

func TestConfirmAddingItem_BlankIsNoOp(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)

	store.Submit(packlist.EnterEditMode{})
	store.Submit(packlist.SetNewItemName{Text: "   "})
	store.Submit(packlist.ConfirmAddingItem{})
	waitProcessed(t, store, 3)

	m := store.CurrentModel()
	assert.True(t, m.IsInputVisible)
	assert.Equal(t, "   ", m.NewItemName)
	assert.Len(t, m.Items, 1)
	assert.Zero(t, store.Metrics().ContractViolations)
}

func TestSetNewItemName_IgnoredWhileHidden(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)
	before := store.CurrentModel()

	store.Submit(packlist.SetNewItemName{Text: "Socks"})
	waitProcessed(t, store, 1)

	assert.True(t, before.Equal(store.CurrentModel()))
}

func TestCancelAddingItem(t *testing.T) {
	t.Parallel()

	t.Run("discards pending text", func(t *testing.T) {
		store, _ := setupStore(t)
		store.Submit(packlist.EnterEditMode{})
		store.Submit(packlist.SetNewItemName{Text: "Soc"})
		store.Submit(packlist.CancelAddingItem{})
		waitProcessed(t, store, 3)

		m := store.CurrentModel()
		assert.False(t, m.IsInputVisible)
		assert.Empty(t, m.NewItemName)

		// Re-entering starts from an empty field
		store.Submit(packlist.EnterEditMode{})
		m = waitModel(t, store, func(m packlist.Model) bool { return m.IsInputVisible })
		assert.Empty(t, m.NewItemName)
	})

	t.Run("idempotent when hidden", func(t *testing.T) {
		store, _ := setupStore(t)
		before := store.CurrentModel()

		store.Submit(packlist.CancelAddingItem{})
		store.Submit(packlist.ExitEditMode{})
		waitProcessed(t, store, 2)

		assert.True(t, before.Equal(store.CurrentModel()))
		assert.Zero(t, store.Metrics().ContractViolations)
	})
}

// ============================================================================
// PACKING
// ============================================================================

func TestMarkPacked_PantsScenario(t *testing.T) {
	t.Parallel()
	store, pantsID := setupStore(t)
	assert.Equal(t, 0, store.CurrentModel().Progress)

	store.Submit(packlist.MarkPacked{ID: pantsID, IsPacked: true})
	m := waitModel(t, store, func(m packlist.Model) bool { return m.Progress == 100 })
	pants, ok := rowNamed(m, "Pants")
	require.True(t, ok)
	assert.True(t, pants.IsChecked)

	store.Submit(packlist.MarkPacked{ID: pantsID, IsPacked: false})
	m = waitModel(t, store, func(m packlist.Model) bool { return m.Progress == 0 })
	pants, ok = rowNamed(m, "Pants")
	require.True(t, ok)
	assert.False(t, pants.IsChecked)
}

func TestMarkPacked_ProgressRounds(t *testing.T) {
	t.Parallel()
	store, pantsID := setupStore(t)

	store.Submit(packlist.EnterEditMode{})
	store.Submit(packlist.SetNewItemName{Text: "Socks"})
	store.Submit(packlist.ConfirmAddingItem{})
	store.Submit(packlist.EnterEditMode{})
	store.Submit(packlist.SetNewItemName{Text: "Hat"})
	store.Submit(packlist.ConfirmAddingItem{})
	waitModel(t, store, func(m packlist.Model) bool { return len(m.Items) == 3 })

	store.Submit(packlist.MarkPacked{ID: pantsID, IsPacked: true})
	waitModel(t, store, func(m packlist.Model) bool { return m.Progress == 33 })

	socks, _ := rowNamed(store.CurrentModel(), "Socks")
	store.Submit(packlist.MarkPacked{ID: socks.ID, IsPacked: true})
	waitModel(t, store, func(m packlist.Model) bool { return m.Progress == 67 })
}

// ============================================================================
// DELETE MODE
// ============================================================================

func TestDeleteMode_Visibility(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)

	store.Submit(packlist.EnterDeleteMode{})
	m := waitModel(t, store, func(m packlist.Model) bool { return m.IsCancelDeletingVisible })
	assert.False(t, m.IsDeleteButtonVisible)
	for _, row := range m.Items {
		assert.True(t, row.IsDeleteVisible)
	}

	store.Submit(packlist.ExitDeleteMode{})
	m = waitModel(t, store, func(m packlist.Model) bool { return !m.IsCancelDeletingVisible })
	assert.True(t, m.IsDeleteButtonVisible)
	for _, row := range m.Items {
		assert.False(t, row.IsDeleteVisible)
	}
}

func TestDeleteMode_IndependentOfInput(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)

	store.Submit(packlist.EnterEditMode{})
	store.Submit(packlist.EnterDeleteMode{})
	m := waitModel(t, store, func(m packlist.Model) bool {
		return m.IsInputVisible && m.IsCancelDeletingVisible
	})
	assert.False(t, m.IsProgressVisible)

	store.Submit(packlist.ExitDeleteMode{})
	m = waitModel(t, store, func(m packlist.Model) bool { return !m.IsCancelDeletingVisible })
	assert.True(t, m.IsInputVisible)
}

// ============================================================================
// DELETE AND UNDO
// ============================================================================

func TestDelete_PublishesUndoAndUndoRestores(t *testing.T) {
	t.Parallel()
	store, pantsID := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	labels := store.ObserveLabels(ctx)

	store.Submit(packlist.EnterDeleteMode{})
	store.Submit(packlist.Delete{ID: pantsID})

	waitModel(t, store, func(m packlist.Model) bool { return !hasID(m, pantsID) })
	assert.Equal(t, packlist.ShowUndoSnackbar{ItemName: "Pants"}, nextLabel(t, labels))
	noLabel(t, labels)

	store.Submit(packlist.UndoDelete{})
	m := waitModel(t, store, func(m packlist.Model) bool { return hasID(m, pantsID) })
	pants, ok := rowNamed(m, "Pants")
	require.True(t, ok)
	assert.Equal(t, pantsID, pants.ID)
	noLabel(t, labels)
}

func TestUndoDelete_SlotClearedAfterUndo(t *testing.T) {
	t.Parallel()
	store, pantsID := setupStore(t)

	store.Submit(packlist.Delete{ID: pantsID})
	store.Submit(packlist.UndoDelete{})
	require.Eventually(t, func() bool {
		return store.Metrics().EffectsCompleted == 2
	}, waitFor, time.Millisecond)
	waitModel(t, store, func(m packlist.Model) bool { return len(m.Items) == 1 })

	store.Submit(packlist.UndoDelete{})
	require.Eventually(t, func() bool {
		return store.Metrics().ContractViolations == 1
	}, waitFor, time.Millisecond)
}

func TestDelete_OnlyLatestIsUndoable(t *testing.T) {
	t.Parallel()
	store, pantsID := setupStore(t)

	store.Submit(packlist.EnterEditMode{})
	store.Submit(packlist.SetNewItemName{Text: "Socks"})
	store.Submit(packlist.ConfirmAddingItem{})
	m := waitModel(t, store, func(m packlist.Model) bool { return len(m.Items) == 2 })
	socks, _ := rowNamed(m, "Socks")

	store.Submit(packlist.Delete{ID: pantsID})
	waitModel(t, store, func(m packlist.Model) bool { return len(m.Items) == 1 })
	store.Submit(packlist.Delete{ID: socks.ID})
	waitModel(t, store, func(m packlist.Model) bool { return len(m.Items) == 0 })

	store.Submit(packlist.UndoDelete{})
	m = waitModel(t, store, func(m packlist.Model) bool { return len(m.Items) == 1 })
	assert.Equal(t, "Socks", m.Items[0].Name)
}

// ============================================================================
// CONTRACT VIOLATIONS
// ============================================================================

func TestContractViolations_LeaveModelUnchanged(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)
	before := store.CurrentModel()

	store.Submit(packlist.ConfirmAddingItem{})
	store.Submit(packlist.MarkPacked{ID: 999, IsPacked: true})
	store.Submit(packlist.Delete{ID: 999})
	store.Submit(packlist.UndoDelete{})
	waitProcessed(t, store, 4)

	assert.Equal(t, int64(4), store.Metrics().ContractViolations)
	assert.True(t, before.Equal(store.CurrentModel()))
}

// ============================================================================
// STREAMS
// ============================================================================

func TestObserveModel_ReplaysLatestToLateSubscriber(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)

	store.Submit(packlist.EnterDeleteMode{})
	waitModel(t, store, func(m packlist.Model) bool { return m.IsCancelDeletingVisible })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	select {
	case m := <-store.ObserveModel(ctx):
		assert.True(t, m.IsCancelDeletingVisible)
		assert.Len(t, m.Items, 1)
	case <-time.After(waitFor):
		t.Fatal("no model replayed")
	}
}

func TestObserveModel_SlowSubscriberSeesLatest(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	modelCh := store.ObserveModel(ctx)

	store.Submit(packlist.EnterEditMode{})
	for _, text := range []string{"S", "So", "Soc", "Sock", "Socks"} {
		store.Submit(packlist.SetNewItemName{Text: text})
	}
	waitModel(t, store, func(m packlist.Model) bool { return m.NewItemName == "Socks" })

	m := <-modelCh
	assert.Equal(t, "Socks", m.NewItemName)
}

func TestObserveLabels_ReplaysLastLabel(t *testing.T) {
	t.Parallel()
	store, pantsID := setupStore(t)

	store.Submit(packlist.Delete{ID: pantsID})
	require.Eventually(t, func() bool {
		return store.Metrics().LabelsPublished == 1
	}, waitFor, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	late := store.ObserveLabels(ctx)
	assert.Equal(t, packlist.ShowUndoSnackbar{ItemName: "Pants"}, nextLabel(t, late))
	noLabel(t, late)
}

func TestObserve_ChannelsCloseWithContext(t *testing.T) {
	t.Parallel()
	store, _ := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	modelCh := store.ObserveModel(ctx)
	labels := store.ObserveLabels(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-modelCh:
			return !ok
		default:
			return false
		}
	}, waitFor, time.Millisecond)
	_, ok := <-labels
	assert.False(t, ok)
}
