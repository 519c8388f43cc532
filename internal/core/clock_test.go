package core

import (
	"testing"
	"time"
)

func TestFrameClockFirstDeltaIsZero(t *testing.T) {
	c := NewFrameClock(0)
	if c.MaxDelta() != DefaultMaxDelta {
		t.Errorf("MaxDelta() = %v, expected default %v", c.MaxDelta(), DefaultMaxDelta)
	}
	if d := c.Delta(time.Unix(100, 0)); d != 0 {
		t.Errorf("first Delta() = %v, expected 0", d)
	}
}

func TestFrameClockClampsLargeDeltas(t *testing.T) {
	c := NewFrameClock(50 * time.Millisecond)
	base := time.Unix(100, 0)
	c.Delta(base)

	if d := c.Delta(base.Add(16 * time.Millisecond)); d != 0.016 {
		t.Errorf("Delta() = %v, expected 0.016", d)
	}

	// A stalled frame (e.g. terminal suspended) is clamped
	if d := c.Delta(base.Add(5 * time.Second)); d != 0.05 {
		t.Errorf("stalled Delta() = %v, expected 0.05", d)
	}

	// Clock going backwards yields zero
	if d := c.Delta(base); d != 0 {
		t.Errorf("backwards Delta() = %v, expected 0", d)
	}
}

func TestFrameClockRebase(t *testing.T) {
	c := NewFrameClock(time.Second)
	base := time.Unix(100, 0)
	c.Delta(base)

	// Paused for 800ms, then resumed: rebase drops the paused time
	resume := base.Add(800 * time.Millisecond)
	c.Rebase(resume)

	if d := c.Delta(resume.Add(10 * time.Millisecond)); d != 0.01 {
		t.Errorf("Delta() after Rebase = %v, expected 0.01", d)
	}
}
