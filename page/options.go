package page

import (
	"log/slog"

	"github.com/AnatoleLucet/reactive"
)

type options struct {
	logger  *slog.Logger
	runtime *reactive.Runtime
}

type Option func(*options)

// WithLogger sets the page logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRuntime runs the page on its own runtime instead of the goroutine's default one.
func WithRuntime(r *reactive.Runtime) Option {
	return func(o *options) { o.runtime = r }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.runtime == nil {
		o.runtime = reactive.DefaultRuntime()
	}

	if o.logger == nil {
		o.logger = slog.Default()
	} else {
		o.runtime.SetLogger(o.logger)
	}

	return o
}
