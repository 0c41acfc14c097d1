package reactive

import (
	"maps"
	"slices"

	"github.com/AnatoleLucet/reactive/internal"
)

// Data is the record a host exposes to the engine.
// Keys keep their insertion order. Once a key is reactive, it is only reachable through its accessor.
type Data struct {
	runtime *internal.Runtime

	keys  []string
	raw   map[string]any
	cells map[string]*internal.Cell
}

type DataOption func(*Data)

// WithRuntime binds the record to the given runtime instead of the goroutine's default one.
func WithRuntime(r *Runtime) DataOption {
	return func(d *Data) {
		if r != nil {
			d.runtime = r.runtime
		}
	}
}

// NewData creates a record holding the given values, inserted in sorted key order.
func NewData(initial map[string]any, opts ...DataOption) *Data {
	d := &Data{
		runtime: internal.GetRuntime(),
		raw:     make(map[string]any, len(initial)),
		cells:   make(map[string]*internal.Cell),
	}

	for _, opt := range opts {
		opt(d)
	}

	for _, key := range slices.Sorted(maps.Keys(initial)) {
		d.Set(key, initial[key])
	}

	return d
}

// Runtime returns the runtime the record is bound to.
func (d *Data) Runtime() *Runtime {
	return &Runtime{d.runtime}
}

// Get reads a key. Reading a reactive key while a computed value is being collected subscribes it.
func (d *Data) Get(key string) any {
	if cell, ok := d.cells[key]; ok {
		return cell.Read()
	}

	return d.raw[key]
}

// Set writes a key, going through the accessor when the key is reactive.
func (d *Data) Set(key string, v any) {
	if cell, ok := d.cells[key]; ok {
		cell.Write(v)
		return
	}

	if _, ok := d.raw[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.raw[key] = v
}

// Peek reads a key without tracking it.
func (d *Data) Peek(key string) any {
	if cell, ok := d.cells[key]; ok {
		return cell.Value()
	}

	return d.raw[key]
}

func (d *Data) Has(key string) bool {
	if _, ok := d.cells[key]; ok {
		return true
	}

	_, ok := d.raw[key]
	return ok
}

// Keys returns the record keys in insertion order.
func (d *Data) Keys() []string {
	return slices.Clone(d.keys)
}

func (d *Data) Len() int {
	return len(d.keys)
}

func (d *Data) IsReactive(key string) bool {
	_, ok := d.cells[key]
	return ok
}

// Subscribers returns how many callbacks are attached to a reactive key.
func (d *Data) Subscribers(key string) int {
	if cell, ok := d.cells[key]; ok {
		return cell.Subscribers()
	}

	return 0
}

// Snapshot copies the current values without tracking them.
func (d *Data) Snapshot() map[string]any {
	snapshot := make(map[string]any, len(d.keys))
	for _, key := range d.keys {
		snapshot[key] = d.Peek(key)
	}

	return snapshot
}

func (d *Data) define(key string, initial any, onChange func(any)) *internal.Cell {
	if cell, ok := d.cells[key]; ok {
		cell.OnChange(onChange)
		return cell
	}

	if _, ok := d.raw[key]; ok {
		delete(d.raw, key)
	} else {
		d.keys = append(d.keys, key)
	}

	cell := d.runtime.NewCell(initial, onChange)
	d.cells[key] = cell

	return cell
}
