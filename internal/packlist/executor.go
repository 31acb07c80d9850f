package packlist

import "sync"

// Executor runs side effects off the store loop. Execute must not block
// the caller for the duration of the task.
type Executor interface {
	Execute(task func())
}

// WorkerExecutor runs tasks one at a time, in submission order, on a single
// background goroutine. Its queue is unbounded.
type WorkerExecutor struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	closed  bool
	stopped chan struct{}
}

// NewWorkerExecutor starts the worker goroutine
func NewWorkerExecutor() *WorkerExecutor {
	e := &WorkerExecutor{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	go e.run()
	return e
}

// Execute queues a task. Tasks queued after Close are dropped.
func (e *WorkerExecutor) Execute(task func()) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.queue = append(e.queue, task)
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Close stops accepting tasks and waits until the queue is drained.
func (e *WorkerExecutor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		<-e.stopped
		return
	}
	e.closed = true
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
	<-e.stopped
}

func (e *WorkerExecutor) run() {
	defer close(e.stopped)
	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			closed := e.closed
			e.mu.Unlock()
			if closed {
				return
			}
			<-e.wake
			continue
		}
		task := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]
		e.mu.Unlock()

		task()
	}
}
