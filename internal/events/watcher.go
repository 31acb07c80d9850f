package events

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultThrottle is the window in which file events collapse into one
const DefaultThrottle = 100 * time.Millisecond

// WatchDatabase publishes an external items_changed event whenever the
// database file (or its WAL/journal siblings) in dir is written by anyone.
// It returns once the watch is established; the watch runs until ctx ends.
func WatchDatabase(ctx context.Context, dir, dbFile string, publisher EventPublisher, throttle time.Duration) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}
	if throttle <= 0 {
		throttle = DefaultThrottle
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: SQLite creates and removes the sidecar files
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	send := func() {
		err := publisher.Publish(Event{
			Type:      EventItemsChanged,
			Source:    SourceExternal,
			Timestamp: time.Now(),
		})
		if err != nil {
			slog.Debug("watcher publish failed", "error", err)
		}
	}

	go func() {
		defer func() {
			if err := watcher.Close(); err != nil {
				slog.Error("watcher close", "error", err)
			}
		}()

		t := newEventThrottle(throttle)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Unclassifiable: treat as a change so observers resync
				slog.Warn("database watcher error", "error", err)
				t.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isContentChange(evt.Op) || !isDatabaseFile(evt.Name, dbFile) {
					continue
				}
				t.Enqueue(send)
			}
		}
	}()

	return nil
}

// isContentChange reports whether op carries anything besides a chmod.
// Op is a bitmask, so a write may arrive combined with other bits.
func isContentChange(op fsnotify.Op) bool {
	return op&^fsnotify.Chmod != 0
}

// isDatabaseFile matches the database and the -wal/-shm/-journal sidecars.
func isDatabaseFile(path, dbFile string) bool {
	return strings.HasPrefix(filepath.Base(path), dbFile)
}

// eventThrottle coalesces a burst of notifications into a single send
// fired once the window elapses.
type eventThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(send func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.mu.Lock()
			t.timer = nil
			t.mu.Unlock()
			send()
		})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
