package events

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDatabaseFile(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path string
		want bool
	}{
		{"/data/baggage.db", true},
		{"/data/baggage.db-wal", true},
		{"/data/baggage.db-shm", true},
		{"/data/baggage.db-journal", true},
		{"/data/logs", false},
		{"/data/notes.txt", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isDatabaseFile(tt.path, "baggage.db"), tt.path)
	}
}

func TestIsContentChange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"chmod only", fsnotify.Chmod, false},
		{"write", fsnotify.Write, true},
		{"write with chmod", fsnotify.Write | fsnotify.Chmod, true},
		{"create with write", fsnotify.Create | fsnotify.Write, true},
		{"remove", fsnotify.Remove, true},
		{"rename", fsnotify.Rename, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isContentChange(tt.op), tt.name)
	}
}

func TestWatchDatabase_PublishesOnWrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	b := NewBroker(8, nil)
	ch := b.Subscribe(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, WatchDatabase(ctx, dir, "baggage.db", b, 20*time.Millisecond))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "baggage.db"), []byte("x"), 0o644))

	select {
	case evt := <-ch:
		assert.Equal(t, EventItemsChanged, evt.Type)
		assert.Equal(t, SourceExternal, evt.Source)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for database write")
	}
}

func TestWatchDatabase_IgnoresOtherFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	b := NewBroker(8, nil)
	ch := b.Subscribe(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, WatchDatabase(ctx, dir, "baggage.db", b, 20*time.Millisecond))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event %+v", evt)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestEventThrottle_CoalescesBurst(t *testing.T) {
	t.Parallel()
	var sent atomic.Int32
	th := newEventThrottle(50 * time.Millisecond)
	defer th.Stop()

	for i := 0; i < 10; i++ {
		th.Enqueue(func() { sent.Add(1) })
	}

	require.Eventually(t, func() bool { return sent.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), sent.Load())

	// A new burst after the window fires again
	th.Enqueue(func() { sent.Add(1) })
	require.Eventually(t, func() bool { return sent.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestEventThrottle_StopCancelsPending(t *testing.T) {
	t.Parallel()
	var sent atomic.Int32
	th := newEventThrottle(30 * time.Millisecond)
	th.Enqueue(func() { sent.Add(1) })
	th.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), sent.Load())
}
