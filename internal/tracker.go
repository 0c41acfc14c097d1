package internal

// Tracker holds the collector slot: the flush callback of the computation currently being evaluated.
// Every cell read while the slot is set subscribes that callback.
type Tracker struct {
	current func()
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Collect runs fn with flush as the active collector.
// The previous collector is restored afterwards, even if fn panics.
func (t *Tracker) Collect(flush func(), fn func()) {
	prev := t.current
	t.current = flush
	defer func() { t.current = prev }()

	fn()
}

// Untrack runs fn with no active collector.
func (t *Tracker) Untrack(fn func()) {
	t.Collect(nil, fn)
}

func (t *Tracker) Current() func() {
	return t.current
}

func (t *Tracker) IsCollecting() bool {
	return t.current != nil
}
