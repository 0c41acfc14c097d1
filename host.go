package reactive

import (
	"maps"
	"slices"
)

// Host is the object owning a record.
// SetData applies a partial update to the record and refreshes whatever the host displays.
type Host interface {
	Data() *Data
	SetData(patch map[string]any)
}

func hostData(host Host) *Data {
	d := host.Data()
	if d == nil {
		panic("reactive: nil host data")
	}

	return d
}

// Watch calls each callback with the new value whenever its key changes,
// synchronously and before any deferred flush. Keys are bound in sorted order.
func Watch(host Host, bindings map[string]func(any)) {
	d := hostData(host)

	for _, key := range slices.Sorted(maps.Keys(bindings)) {
		d.define(key, d.Peek(key), bindings[key])
	}
}

// Computed evaluates each expression once to discover the keys it reads, then publishes
// all results with a single SetData call. Whenever a key read by an expression changes,
// the expression is evaluated again after the current synchronous phase and its result republished.
//
// Every key already in the record is made reactive first. Expressions run in sorted key order
// and do not see each other's results: reading a key computed by the same call returns its
// previous value. Chain computed values with separate Computed calls instead.
//
// A panicking expression propagates to the caller and nothing is published.
func Computed(host Host, bindings map[string]func() any) {
	d := hostData(host)

	for _, key := range d.Keys() {
		d.define(key, d.Peek(key), nil)
	}

	initial := make(map[string]any, len(bindings))
	for _, key := range slices.Sorted(maps.Keys(bindings)) {
		expr := bindings[key]

		republish := func() {
			host.SetData(map[string]any{key: expr()})
		}

		initial[key] = d.runtime.Collect(republish, expr)
	}

	host.SetData(initial)
}
