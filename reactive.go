// Package reactive turns the keys of a plain record into reactive properties,
// so that watchers and computed values re-run whenever the keys they depend on change.
package reactive

import (
	"log/slog"

	"github.com/AnatoleLucet/reactive/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Runtime holds the collector slot and the deferred task queue shared by the records bound to it.
type Runtime struct {
	runtime *internal.Runtime
}

// NewRuntime creates a standalone runtime, detached from the goroutine's default one.
func NewRuntime() *Runtime {
	return &Runtime{internal.NewRuntime()}
}

// DefaultRuntime returns the runtime of the calling goroutine.
func DefaultRuntime() *Runtime {
	return &Runtime{internal.GetRuntime()}
}

// Flush runs every deferred task scheduled on this runtime.
func (r *Runtime) Flush() { r.runtime.Flush() }

// Batch runs fn as one synchronous phase and flushes afterwards.
// Nested batches flush once, when the outermost one returns.
func (r *Runtime) Batch(fn func()) { r.runtime.Batch(fn) }

// Pending returns the number of deferred tasks waiting to run.
func (r *Runtime) Pending() int { return r.runtime.Pending() }

// Untrack runs fn without registering any dependency on this runtime.
func (r *Runtime) Untrack(fn func()) { r.runtime.Untrack(fn) }

// SetLogger sets the logger used for debug output. nil means slog.Default().
func (r *Runtime) SetLogger(logger *slog.Logger) { r.runtime.SetLogger(logger) }

// Flush runs the deferred tasks of the calling goroutine's runtime.
func Flush() {
	internal.GetRuntime().Flush()
}

// Batch runs fn on the calling goroutine's runtime and flushes once it returns.
func Batch(fn func()) {
	internal.GetRuntime().Batch(fn)
}

// Pending returns the number of deferred tasks on the calling goroutine's runtime.
func Pending() int {
	return internal.GetRuntime().Pending()
}

// Untrack runs the given function without registering any dependency
// on the calling goroutine's runtime. Use UntrackData for records bound to another runtime.
func Untrack[T any](fn func() T) T {
	return untrack(internal.GetRuntime(), fn)
}

// UntrackData runs the given function without registering any dependency on the runtime of d.
func UntrackData[T any](d *Data, fn func() T) T {
	return untrack(d.runtime, fn)
}

func untrack[T any](r *internal.Runtime, fn func() T) T {
	var result T
	r.Untrack(func() { result = fn() })
	return result
}
