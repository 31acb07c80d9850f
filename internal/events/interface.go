package events

import "context"

// EventPublisher is the write side of the change feed.
type EventPublisher interface {
	Publish(event Event) error
}

// EventSubscriber is the read side of the change feed.
type EventSubscriber interface {
	// Subscribe returns a channel of events that is closed when ctx ends
	// or the feed shuts down.
	Subscribe(ctx context.Context) <-chan Event
}

// EventBus combines both sides of the feed.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

// Compile-time verification that *Broker implements EventBus
var _ EventBus = (*Broker)(nil)
