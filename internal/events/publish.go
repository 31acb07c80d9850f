package events

import (
	"log/slog"
	"time"
)

// NotifyItemsChanged publishes an items_changed event from this process.
// A nil publisher is skipped (e.g. in tests). Failures are logged and
// swallowed: the write already succeeded and the next change refreshes
// observers anyway.
func NotifyItemsChanged(publisher EventPublisher) {
	if publisher == nil {
		return
	}

	event := Event{
		Type:      EventItemsChanged,
		Source:    SourceLocal,
		Timestamp: time.Now(),
	}
	if err := publisher.Publish(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"error", err)
	}
}
