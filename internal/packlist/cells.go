package packlist

import (
	"context"
	"log/slog"
	"sync"
)

// modelCell holds the latest Model and hands it to subscribers.
// Each subscriber channel has room for one value; publishing replaces an
// unread value, so a slow reader only ever sees the newest Model.
type modelCell struct {
	mu      sync.Mutex
	current Model
	subs    map[chan Model]struct{}
	closed  bool
}

func newModelCell(initial Model) *modelCell {
	return &modelCell{
		current: initial,
		subs:    make(map[chan Model]struct{}),
	}
}

func (c *modelCell) subscribe(ctx context.Context) <-chan Model {
	ch := make(chan Model, 1)

	c.mu.Lock()
	ch <- c.current
	if c.closed {
		close(ch)
		c.mu.Unlock()
		return ch
	}
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.unsubscribe(ch)
	}()
	return ch
}

func (c *modelCell) unsubscribe(ch chan Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subs[ch]; ok {
		delete(c.subs, ch)
		close(ch)
	}
}

// publish stores m and reports whether it differed from the previous Model
func (c *modelCell) publish(m Model) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.current.Equal(m) {
		return false
	}
	c.current = m
	for ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- m
	}
	return true
}

func (c *modelCell) get() Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *modelCell) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for ch := range c.subs {
		delete(c.subs, ch)
		close(ch)
	}
}

// labelCell broadcasts labels and remembers the most recent one for
// subscribers that attach after it was published.
type labelCell struct {
	mu     sync.Mutex
	last   Label
	subs   map[chan Label]struct{}
	buffer int
	closed bool
	logger *slog.Logger
}

func newLabelCell(buffer int, logger *slog.Logger) *labelCell {
	return &labelCell{
		subs:   make(map[chan Label]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

func (c *labelCell) subscribe(ctx context.Context) <-chan Label {
	ch := make(chan Label, c.buffer)

	c.mu.Lock()
	if c.last != nil {
		ch <- c.last
	}
	if c.closed {
		close(ch)
		c.mu.Unlock()
		return ch
	}
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.unsubscribe(ch)
	}()
	return ch
}

func (c *labelCell) unsubscribe(ch chan Label) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subs[ch]; ok {
		delete(c.subs, ch)
		close(ch)
	}
}

func (c *labelCell) publish(l Label) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.last = l
	for ch := range c.subs {
		// Non-blocking send - a subscriber that stopped reading loses labels
		select {
		case ch <- l:
		default:
			c.logger.Warn("label subscriber full, label dropped", "label", l.String())
		}
	}
}

func (c *labelCell) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for ch := range c.subs {
		delete(c.subs, ch)
		close(ch)
	}
}
