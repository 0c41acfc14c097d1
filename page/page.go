// Package page provides a minimal host for reactive records:
// a page holding data, a batched SetData, render hooks and event dispatch.
package page

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/AnatoleLucet/reactive"
)

// Page owns a reactive record and re-renders whenever SetData is called.
type Page struct {
	data    *reactive.Data
	runtime *reactive.Runtime
	logger  *slog.Logger

	renders  []func(patch map[string]any)
	catchers []func(error)
}

var _ reactive.Host = (*Page)(nil)

func New(initial map[string]any, opts ...Option) *Page {
	o := newOptions(opts)

	return &Page{
		data:    reactive.NewData(initial, reactive.WithRuntime(o.runtime)),
		runtime: o.runtime,
		logger:  o.logger,
	}
}

func (p *Page) Data() *reactive.Data { return p.data }

func (p *Page) Runtime() *reactive.Runtime { return p.runtime }

// SetData applies the patch through the record accessors in sorted key order
// and renders it. Deferred work scheduled by the writes runs once the patch is rendered.
func (p *Page) SetData(patch map[string]any) {
	p.runtime.Batch(func() {
		for _, key := range slices.Sorted(maps.Keys(patch)) {
			p.data.Set(key, patch[key])
		}

		p.render(patch)
	})
}

// OnRender adds a hook called with every applied patch.
func (p *Page) OnRender(fn func(patch map[string]any)) {
	p.renders = append(p.renders, fn)
}

// OnError adds a function called when an event handler or the work it triggers panics.
// If no error listener is registered, the panic propagates as usual.
func (p *Page) OnError(fn func(error)) {
	p.catchers = append(p.catchers, fn)
}

// Dispatch runs an event handler as one synchronous phase, then flushes the deferred work it caused.
func (p *Page) Dispatch(event string, handler func() error) (err error) {
	p.logger.Debug("dispatching event", "event", event)

	defer func() {
		if r := recover(); r != nil {
			if len(p.catchers) == 0 {
				panic(r)
			}

			err = toError(r)
			p.logger.Error("event handler panicked", "event", event, "error", err)

			for _, catcher := range p.catchers {
				catcher(err)
			}
		}
	}()

	p.runtime.Batch(func() {
		err = handler()
	})

	return err
}

func (p *Page) render(patch map[string]any) {
	for _, fn := range p.renders {
		fn(patch)
	}
}

func toError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}

	return fmt.Errorf("panic: %v", r)
}
