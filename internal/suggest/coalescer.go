package suggest

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded means a newer query arrived for the same field while
// this one was waiting out the debounce window.
var ErrSuperseded = errors.New("suggest: superseded by a newer query")

// Coalescer debounces typeahead lookups so a burst of keystrokes issues
// at most one upstream airport search. Each key (client + input field)
// holds a single latest-pending slot; keys never share state, so the
// origin and destination fields debounce independently.
type Coalescer struct {
	delay time.Duration

	mu  sync.Mutex
	seq map[string]uint64
}

func NewCoalescer(delay time.Duration) *Coalescer {
	return &Coalescer{
		delay: delay,
		seq:   make(map[string]uint64),
	}
}

// Wait blocks for the debounce window and reports whether the caller is
// still the latest submission for key. Only the caller that outlives the
// window unsuperseded should perform the lookup; everyone else gets
// ErrSuperseded. Last write wins per key.
func (c *Coalescer) Wait(ctx context.Context, key string) error {
	c.mu.Lock()
	c.seq[key]++
	mine := c.seq[key]
	c.mu.Unlock()

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	c.mu.Lock()
	latest := c.seq[key]
	c.mu.Unlock()

	if mine != latest {
		return ErrSuperseded
	}
	return nil
}
