// Package packlist holds the packing list screen state. A Store folds user
// intents, item list refreshes and side effect results through one loop and
// publishes the derived Model plus one-shot Labels.
package packlist

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/chmielowski/baggage/internal/models"
	"github.com/chmielowski/baggage/internal/types"
)

// DefaultLabelBuffer is the per-subscriber label queue length
const DefaultLabelBuffer = 8

// ItemStore is the persisted item collection the Store reads and writes.
// item.Service satisfies it.
type ItemStore interface {
	Observe(ctx context.Context) <-chan []*models.Item
	CreateItem(ctx context.Context, name string) (*models.Item, error)
	SetPacked(ctx context.Context, id types.ItemID, isPacked bool) error
	DeleteItem(ctx context.Context, id types.ItemID) (*models.Item, error)
	UndoDelete(ctx context.Context, id types.ItemID) error
}

// Option configures a Store
type Option func(*Store)

// WithExecutor runs side effects on e instead of a private worker.
// The caller owns e and must keep it running until Close returns.
func WithExecutor(e Executor) Option {
	return func(s *Store) {
		s.executor = e
	}
}

// WithLogger sets the logger for diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithLabelBuffer sets how many undelivered labels a subscriber may hold
func WithLabelBuffer(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.labelBuffer = n
		}
	}
}

// message is anything the loop folds into State
type message interface{}

type intentMsg struct {
	intent Intent
}

type refreshMsg struct {
	items []*models.Item
}

// effectDone carries a finished side effect back to the loop. after runs on
// the loop with the effect's error.
type effectDone struct {
	op    string
	err   error
	after func(err error)
}

type stopMsg struct{}

// Store is the list state store
type Store struct {
	items       ItemStore
	executor    Executor
	ownExecutor *WorkerExecutor
	logger      *slog.Logger
	labelBuffer int
	metrics     *Metrics

	mbMu    sync.Mutex
	mailbox []message
	wake    chan struct{}

	// state is owned by the loop goroutine
	state State

	models *modelCell
	labels *labelCell

	effectCtx context.Context
	pending   int // side effects in flight, owned by the loop
	cancel    context.CancelFunc
	lifeMu    sync.Mutex // guards Start against Close
	started   atomic.Bool
	closing   atomic.Bool
	loopDone  chan struct{}
	closeOnce sync.Once
}

// New creates a Store over items. Call Start to begin processing.
func New(items ItemStore, opts ...Option) *Store {
	s := &Store{
		items:       items,
		logger:      slog.Default(),
		labelBuffer: DefaultLabelBuffer,
		metrics:     NewMetrics(),
		wake:        make(chan struct{}, 1),
		loopDone:    make(chan struct{}),
		effectCtx:   context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.executor == nil {
		s.ownExecutor = NewWorkerExecutor()
		s.executor = s.ownExecutor
	}
	s.models = newModelCell(Project(s.state))
	s.labels = newLabelCell(s.labelBuffer, s.logger)
	return s
}

// Start subscribes to the item observer and starts the processing loop.
// Calling it more than once, or after Close, has no effect.
func (s *Store) Start(ctx context.Context) {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	if s.started.Load() || s.closing.Load() {
		return
	}
	s.started.Store(true)

	ctx, s.cancel = context.WithCancel(ctx)
	// Writes already handed to the executor outlive the screen
	s.effectCtx = context.WithoutCancel(ctx)

	updates := s.items.Observe(ctx)
	go func() {
		for items := range updates {
			s.enqueue(refreshMsg{items: items})
		}
	}()

	go s.loop(ctx)
}

// Submit queues an intent. It never blocks and never fails; intents
// submitted after Close are dropped.
func (s *Store) Submit(intent Intent) {
	if intent == nil {
		return
	}
	if s.closing.Load() {
		s.logger.Debug("store closed, intent dropped", "intent", intent.String())
		return
	}
	s.enqueue(intentMsg{intent: intent})
}

// ObserveModel returns the current Model followed by every change. Unread
// Models are replaced by newer ones. The channel closes when ctx ends or
// the store closes.
func (s *Store) ObserveModel(ctx context.Context) <-chan Model {
	return s.models.subscribe(ctx)
}

// ObserveLabels returns labels published from now on, preceded by the most
// recent label if there was one. The channel closes when ctx ends or the
// store closes.
func (s *Store) ObserveLabels(ctx context.Context) <-chan Label {
	return s.labels.subscribe(ctx)
}

// CurrentModel returns the latest published Model
func (s *Store) CurrentModel() Model {
	return s.models.get()
}

// Metrics returns a snapshot of the store counters
func (s *Store) Metrics() MetricsSnapshot {
	return s.metrics.GetSnapshot()
}

// Close stops observing the item list, waits for queued side effects and
// their results, then closes all subscriber channels. Intents submitted once
// Close has begun are dropped.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.lifeMu.Lock()
		s.closing.Store(true)
		started := s.started.Load()
		s.lifeMu.Unlock()

		if started {
			// Stop refreshes first; pending writes still report back
			s.cancel()
			s.enqueue(stopMsg{})
			<-s.loopDone
		}

		if s.ownExecutor != nil {
			s.ownExecutor.Close()
		}
		s.models.close()
		s.labels.close()
	})
}

func (s *Store) enqueue(msg message) {
	s.mbMu.Lock()
	s.mailbox = append(s.mailbox, msg)
	s.mbMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store) dequeue() (message, bool) {
	s.mbMu.Lock()
	defer s.mbMu.Unlock()
	if len(s.mailbox) == 0 {
		return nil, false
	}
	msg := s.mailbox[0]
	s.mailbox[0] = nil
	s.mailbox = s.mailbox[1:]
	return msg, true
}

func (s *Store) loop(ctx context.Context) {
	defer close(s.loopDone)
	done := ctx.Done()
	stopping := false

	for {
		select {
		case <-s.wake:
		case <-done:
			// Keep serving effect results until Close asks us to stop
			done = nil
			continue
		}

		for {
			msg, ok := s.dequeue()
			if !ok {
				break
			}
			switch msg.(type) {
			case stopMsg:
				stopping = true
				continue
			case intentMsg:
				if stopping {
					continue
				}
			}
			s.handle(msg)
			s.models.publish(Project(s.state))
			if _, ok := msg.(intentMsg); ok {
				s.metrics.IntentsProcessed.Add(1)
			}
		}

		if stopping && s.pending == 0 {
			return
		}
	}
}

func (s *Store) handle(msg message) {
	switch m := msg.(type) {
	case intentMsg:
		s.reduce(m.intent)
	case refreshMsg:
		s.metrics.RefreshesApplied.Add(1)
		s.state.Items = m.items
	case effectDone:
		s.pending--
		s.metrics.EffectsCompleted.Add(1)
		if m.err != nil {
			s.metrics.EffectFailures.Add(1)
			s.logger.Error("side effect failed", "op", m.op, "error", m.err)
			s.publishLabel(ShowError{Op: m.op, Message: m.err.Error()})
		}
		if m.after != nil {
			m.after(m.err)
		}
	}
}

func (s *Store) reduce(intent Intent) {
	switch in := intent.(type) {
	case EnterEditMode:
		s.state.Input = InputState{Visible: true}

	case SetNewItemName:
		if s.state.Input.Visible {
			s.state.Input.Text = in.Text
		}

	case ConfirmAddingItem:
		if !s.state.Input.Visible {
			s.violation(in, "input is hidden")
			return
		}
		pending := s.state.Input.Text
		name := strings.TrimSpace(pending)
		if name == "" {
			return
		}
		s.state.Input = InputState{}
		s.runEffect("add item",
			func(ctx context.Context) error {
				_, err := s.items.CreateItem(ctx, name)
				return err
			},
			func(err error) {
				// Give the text back so the user can retry
				if err != nil && !s.state.Input.Visible {
					s.state.Input = InputState{Visible: true, Text: pending}
				}
			})

	case CancelAddingItem, ExitEditMode:
		s.state.Input = InputState{}

	case MarkPacked:
		if s.state.find(in.ID) == nil {
			s.violation(in, "item not in list")
			return
		}
		s.runEffect("update item",
			func(ctx context.Context) error {
				return s.items.SetPacked(ctx, in.ID, in.IsPacked)
			}, nil)

	case EnterDeleteMode:
		s.state.DeleteMode = true

	case ExitDeleteMode:
		s.state.DeleteMode = false

	case Delete:
		item := s.state.find(in.ID)
		if item == nil {
			s.violation(in, "item not in list")
			return
		}
		name := item.Name
		s.state.LastDeletedID = in.ID
		s.runEffect("delete item",
			func(ctx context.Context) error {
				_, err := s.items.DeleteItem(ctx, in.ID)
				return err
			},
			func(err error) {
				if err == nil {
					s.state.TrashedID = in.ID
					s.publishLabel(ShowUndoSnackbar{ItemName: name})
					return
				}
				// The failed write rolled back, so the earlier delete is still in the trash
				if s.state.LastDeletedID == in.ID {
					s.state.LastDeletedID = s.state.TrashedID
				}
			})

	case UndoDelete:
		id := s.state.LastDeletedID
		if !id.Valid() {
			s.violation(in, "nothing to undo")
			return
		}
		s.runEffect("restore item",
			func(ctx context.Context) error {
				return s.items.UndoDelete(ctx, id)
			},
			func(err error) {
				if err != nil {
					return
				}
				if s.state.TrashedID == id {
					s.state.TrashedID = 0
				}
				if s.state.LastDeletedID == id {
					s.state.LastDeletedID = 0
				}
			})

	default:
		s.violation(intent, "unknown intent")
	}
}

// runEffect hands fn to the executor; its outcome comes back as a message
func (s *Store) runEffect(op string, fn func(ctx context.Context) error, after func(err error)) {
	s.pending++
	ctx := s.effectCtx
	s.executor.Execute(func() {
		err := fn(ctx)
		s.enqueue(effectDone{op: op, err: err, after: after})
	})
}

func (s *Store) publishLabel(l Label) {
	s.labels.publish(l)
	s.metrics.LabelsPublished.Add(1)
}

func (s *Store) violation(intent Intent, reason string) {
	s.metrics.ContractViolations.Add(1)
	s.logger.Warn("ignoring intent", "intent", intent.String(), "reason", reason)
}
