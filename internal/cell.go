package internal

import "reflect"

// Cell is a single reactive property of a record.
// Reads register the runtime's active collector as a subscriber,
// writes of a different value notify the change handler and schedule a flush of the subscribers.
type Cell struct {
	runtime *Runtime

	value any

	// called synchronously with the new value, before it is stored
	onChange func(any)

	// insertion order, duplicates allowed
	subs []func()
}

func (r *Runtime) NewCell(initial any, onChange func(any)) *Cell {
	return &Cell{
		runtime:  r,
		value:    initial,
		onChange: onChange,
	}
}

func (c *Cell) Read() any {
	if sub := c.runtime.tracker.Current(); sub != nil {
		c.Subscribe(sub)
	}

	return c.value
}

func (c *Cell) Write(v any) {
	if isEqual(c.value, v) {
		return
	}

	if c.onChange != nil {
		c.onChange(v)
	}

	if len(c.subs) > 0 {
		c.runtime.queue.Enqueue(c.flush)
	}

	c.value = v
}

// Value returns the current value without tracking.
func (c *Cell) Value() any {
	return c.value
}

func (c *Cell) Subscribe(fn func()) {
	c.subs = append(c.subs, fn)
}

func (c *Cell) Subscribers() int {
	return len(c.subs)
}

// OnChange replaces the change handler. A nil handler keeps the current one.
func (c *Cell) OnChange(fn func(any)) {
	if fn != nil {
		c.onChange = fn
	}
}

func (c *Cell) flush() {
	// subscribers may be added while flushing, only run the ones present now
	subs := append([]func(){}, c.subs...)

	for _, sub := range subs {
		sub()
	}
}

// isEqual is a shallow equality: == for comparable values, identity for the rest.
func isEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	// checks the dynamic contents too, an interface field holding a slice makes the value not comparable
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Comparable() && vb.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}

	// structs or arrays holding non comparable fields
	return false
}
