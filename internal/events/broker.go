package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultSubscriberBuffer is the per-subscriber queue length
const DefaultSubscriberBuffer = 16

type subscriber struct {
	ch chan Event
}

// Broker fans out change events to in-process subscribers.
// Delivery never blocks the publisher: a subscriber whose queue is full
// misses the event, which is fine because any later event triggers the
// same full re-read.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	closed      bool

	buffer          int
	sequenceCounter atomic.Int64
	dropped         atomic.Int64
	logger          *slog.Logger
}

// NewBroker creates a broker. A non-positive buffer uses DefaultSubscriberBuffer.
func NewBroker(buffer int, logger *slog.Logger) *Broker {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		subscribers: make(map[*subscriber]struct{}),
		buffer:      buffer,
		logger:      logger,
	}
}

// Publish stamps the event and delivers it to every current subscriber.
func (b *Broker) Publish(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBrokerClosed
	}

	event.SequenceID = b.sequenceCounter.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for sub := range b.subscribers {
		// Non-blocking send - if subscriber is slow, skip
		select {
		case sub.ch <- event:
		default:
			b.dropped.Add(1)
			b.logger.Debug("subscriber queue full, event dropped",
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
	return nil
}

// Subscribe registers a new subscriber until ctx ends.
func (b *Broker) Subscribe(ctx context.Context) <-chan Event {
	sub := &subscriber{ch: make(chan Event, b.buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	b.subscribers[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(sub)
	}()

	return sub.ch
}

func (b *Broker) remove(sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[sub]; ok {
		delete(b.subscribers, sub)
		close(sub.ch)
	}
}

// SubscriberCount returns the number of active subscribers
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped returns how many deliveries were skipped because a queue was full
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}

// Close closes every subscriber channel. Further publishes fail.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subscribers {
		close(sub.ch)
		delete(b.subscribers, sub)
	}
}
