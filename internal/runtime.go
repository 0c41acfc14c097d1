package internal

import (
	"log/slog"
)

// Runtime owns the reactive state of one goroutine: the collector slot and the deferred task queue.
type Runtime struct {
	tracker *Tracker
	batcher *Batcher
	queue   *TaskQueue

	logger *slog.Logger
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		batcher: NewBatcher(),
		queue:   NewTaskQueue(),
		logger:  slog.Default(),
	}
}

func (r *Runtime) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	r.logger = logger
}

// Flush runs every deferred task, in scheduling order.
// Inside a batch it does nothing, the outermost batch flushes when it returns.
func (r *Runtime) Flush() {
	if r.batcher.IsBatching() || r.queue.IsDraining() || r.queue.Len() == 0 {
		return
	}

	r.logger.Debug("flushing deferred tasks", "tasks", r.queue.Len())
	ran := r.queue.Drain()
	r.logger.Debug("flushed deferred tasks", "ran", ran)
}

// Pending returns the number of deferred tasks waiting for a flush.
func (r *Runtime) Pending() int {
	return r.queue.Len()
}

// Collect evaluates fn with flush as the active collector and returns its result.
func (r *Runtime) Collect(flush func(), fn func() any) any {
	var result any
	r.tracker.Collect(flush, func() { result = fn() })
	return result
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.Untrack(fn)
}

func (r *Runtime) Tracker() *Tracker {
	return r.tracker
}
