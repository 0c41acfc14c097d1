package internal

type Batcher struct {
	// each nested batch increases the depth by 1
	// if depth > 0, the deferred phase waits until the outermost batch is complete
	depth int
}

func NewBatcher() *Batcher {
	return &Batcher{
		depth: 0,
	}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

func (b *Batcher) Batch(fn, onComplete func()) {
	b.depth++
	func() {
		defer func() { b.depth-- }()
		fn()
	}()

	// a panicking fn skips onComplete, its deferred work stays queued
	if b.depth == 0 && onComplete != nil {
		onComplete()
	}
}

// Batch runs fn as one synchronous phase, then flushes the deferred tasks it scheduled.
func (r *Runtime) Batch(fn func()) {
	r.batcher.Batch(fn, r.Flush)
}
