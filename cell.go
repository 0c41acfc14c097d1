package reactive

import "github.com/AnatoleLucet/reactive/internal"

// Cell is a typed reactive value.
type Cell[T any] struct {
	cell *internal.Cell
}

// NewCell creates a standalone cell on the calling goroutine's runtime.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		internal.GetRuntime().NewCell(initial, nil),
	}
}

// Field returns a typed view of a record key, making it reactive if it is not yet.
func Field[T any](d *Data, key string) *Cell[T] {
	return &Cell[T]{
		d.define(key, d.Peek(key), nil),
	}
}

// Get the current value, subscribing the computed value being collected if any.
func (c *Cell[T]) Get() T {
	return as[T](c.cell.Read())
}

// Peek the current value without tracking.
func (c *Cell[T]) Peek() T {
	return as[T](c.cell.Value())
}

// Set a new value. Setting an equal value is a no-op.
func (c *Cell[T]) Set(v T) {
	c.cell.Write(v)
}

// Subscribe adds a callback to run, deferred, after each change.
func (c *Cell[T]) Subscribe(fn func()) {
	c.cell.Subscribe(fn)
}

// OnChange sets the handler called synchronously with each new value.
func (c *Cell[T]) OnChange(fn func(T)) {
	if fn == nil {
		return
	}

	c.cell.OnChange(func(v any) { fn(as[T](v)) })
}

// Value reads a record key as T, tracking it like Data.Get.
func Value[T any](d *Data, key string) T {
	return as[T](d.Get(key))
}
