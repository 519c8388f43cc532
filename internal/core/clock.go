package core

import "time"

// DefaultMaxDelta caps a single simulation step after a stalled frame.
const DefaultMaxDelta = 50 * time.Millisecond

// FrameClock turns frame timestamps into clamped simulation deltas.
// Rebase drops the time elapsed since the last frame, which is how pausing
// avoids feeding paused wall-clock time into the simulation.
type FrameClock struct {
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock creates a clock that clamps deltas to maxDelta.
// A non-positive maxDelta falls back to DefaultMaxDelta.
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &FrameClock{maxDelta: maxDelta}
}

// Delta returns the seconds since the previous frame, clamped to [0, maxDelta].
// The first call after creation or Rebase returns 0.
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		d = 0
	}
	if d > c.maxDelta {
		d = c.maxDelta
	}
	return d.Seconds()
}

// Rebase moves the reference point to now.
func (c *FrameClock) Rebase(now time.Time) {
	c.last = now
}

// MaxDelta returns the clamp applied to each delta.
func (c *FrameClock) MaxDelta() time.Duration {
	return c.maxDelta
}
