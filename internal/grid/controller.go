package grid

import (
	"context"
	"errors"
	"log"
	"sync"
)

// ErrStale is returned when a newer dispatch superseded the one that was
// waiting on the backend. Its results were dropped.
var ErrStale = errors.New("grid: stale response discarded")

// Snapshot is what a renderer needs: the state and the records fetched
// for it
type Snapshot[R any] struct {
	State   State
	Records []R
}

// Returned is the number of records the backend actually sent, which is
// below the limit on the last page
func (s Snapshot[R]) Returned() int {
	return len(s.Records)
}

// Load performs the fetches for s. With EffectCountAndPage the count is
// awaited before the page is requested. A failed count is logged and
// treated as a total of 0. A failed page is returned as the error, along
// with the state carrying the refreshed total.
func Load[R any](ctx context.Context, source Source[R], s State, effect Effect) (Snapshot[R], error) {
	if effect == EffectCountAndPage {
		total, err := source.Count(ctx, s.Filter)
		if err != nil {
			log.Printf("grid: %s count failed: %v", s.Kind, err)
			total = 0
		}
		s.Page.Total = total
	}

	records, err := source.Page(ctx, s.Filter, s.Page.Window())
	if err != nil {
		return Snapshot[R]{State: s}, err
	}
	return Snapshot[R]{State: s, Records: records}, nil
}

// Controller owns one long-lived grid. Every dispatch that fetches gets
// a sequence number and only the response to the latest one is applied.
type Controller[R any] struct {
	source Source[R]

	mu      sync.Mutex
	state   State
	seq     uint64
	current Snapshot[R]
}

// NewController returns a controller in the initial state. Nothing is
// fetched until ActionLoad is dispatched.
func NewController[R any](source Source[R], initial State) *Controller[R] {
	return &Controller[R]{
		source:  source,
		state:   initial,
		current: Snapshot[R]{State: initial},
	}
}

// State returns the state the most recent dispatch moved to, which may
// still be waiting on the backend
func (c *Controller[R]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the last applied result
func (c *Controller[R]) Snapshot() Snapshot[R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Dispatch reduces a and performs the fetches it calls for. Guarded
// no-ops return the current snapshot without touching the backend. When
// the page fetch fails the controller falls back to the last applied
// snapshot, so the rendered table and the state stay consistent.
func (c *Controller[R]) Dispatch(ctx context.Context, a Action) (Snapshot[R], error) {
	c.mu.Lock()
	next, effect := Reduce(c.state, a)
	if effect == EffectNone {
		snap := c.current
		c.mu.Unlock()
		return snap, nil
	}
	c.state = next
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	snap, err := Load(ctx, c.source, next, effect)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return c.current, ErrStale
	}
	if err != nil {
		c.state = c.current.State
		return c.current, err
	}
	c.state = snap.State
	c.current = snap
	return snap, nil
}
