package discount

import (
	"context"
	"sync"
)

// Tracker holds the caller-side applied-discount state the engine
// deliberately does not own. It also guards against out-of-order lookup
// completions: a lookup that finishes after a newer one started is
// discarded rather than overwriting newer state.
type Tracker struct {
	mu      sync.Mutex
	engine  *Engine
	seq     uint64
	applied *Applied
}

// NewTracker wraps the engine with applied-state bookkeeping.
func NewTracker(engine *Engine) *Tracker {
	return &Tracker{engine: engine}
}

// Apply runs the engine and records the result, unless a newer Apply
// began while this one was in flight. A failed apply leaves the
// previously applied discount untouched.
func (t *Tracker) Apply(ctx context.Context, code string, subtotal float64) (*Applied, error) {
	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.mu.Unlock()

	applied, err := t.engine.ApplyCode(ctx, code, subtotal)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		// A newer apply superseded this one; report its result but do
		// not record it.
		return applied, nil
	}
	t.applied = applied
	return applied, nil
}

// Remove clears the applied discount.
func (t *Tracker) Remove() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.applied = nil
}

// Current returns the applied discount, or nil when none is applied.
func (t *Tracker) Current() *Applied {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.applied == nil {
		return nil
	}
	copied := *t.applied
	return &copied
}

// Amount is the currently applied discount amount, zero when none.
func (t *Tracker) Amount() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.applied == nil {
		return 0
	}
	return t.applied.Amount
}
