package anim

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Clock is the frame clock shared by every animation of a page. Time only
// advances while the clock is running; Stop freezes it.
type Clock struct {
	clk       clock.Clock
	running   bool
	startedAt time.Time
	banked    time.Duration
}

// NewClock wraps clk. Pass clock.New() for wall time or clock.NewMock() in tests.
func NewClock(clk clock.Clock) *Clock {
	if clk == nil {
		clk = clock.New()
	}
	return &Clock{clk: clk}
}

// Start resumes time advancement. Calling Start on a running clock is a no-op.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.startedAt = c.clk.Now()
	c.running = true
}

// Stop freezes elapsed time until the next Start.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.banked += c.clk.Since(c.startedAt)
	c.running = false
}

func (c *Clock) Running() bool { return c.running }

// Elapsed returns the running time accumulated since the first Start.
func (c *Clock) Elapsed() time.Duration {
	if !c.running {
		return c.banked
	}
	return c.banked + c.clk.Since(c.startedAt)
}

// Source exposes the underlying clock.
func (c *Clock) Source() clock.Clock { return c.clk }
