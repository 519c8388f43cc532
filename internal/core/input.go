package core

import "fmt"

// IntentKind is a semantic player request, abstracted from keys and mouse events.
type IntentKind int

const (
	IntentNone        IntentKind = iota
	IntentMoveTo                 // Pointer position, X in world units
	IntentNudgeLeft              // Left arrow
	IntentNudgeRight             // Right arrow
	IntentStart                  // Space - start from ready or game over
	IntentRestart                // R - restart from any phase
	IntentTogglePause            // P, Escape
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentMoveTo:
		return "MoveTo"
	case IntentNudgeLeft:
		return "NudgeLeft"
	case IntentNudgeRight:
		return "NudgeRight"
	case IntentStart:
		return "Start"
	case IntentRestart:
		return "Restart"
	case IntentTogglePause:
		return "TogglePause"
	default:
		return "Unknown"
	}
}

// Intent is a single queued player request. X is only meaningful for IntentMoveTo.
type Intent struct {
	Kind IntentKind
	X    float64
}

func (i Intent) String() string {
	if i.Kind == IntentMoveTo {
		return fmt.Sprintf("MoveTo(%.1f)", i.X)
	}
	return i.Kind.String()
}

// MoveTo builds a pointer intent targeting world coordinate x.
func MoveTo(x float64) Intent {
	return Intent{Kind: IntentMoveTo, X: x}
}

// IntentQueue collects intents between frames. The platform pushes as input
// events arrive and the game drains the queue once per tick, so input timing
// never interleaves with a simulation step.
type IntentQueue struct {
	pending []Intent
}

// NewIntentQueue creates an empty queue.
func NewIntentQueue() *IntentQueue {
	return &IntentQueue{pending: make([]Intent, 0, 8)}
}

// Push appends an intent. IntentNone is dropped.
// Consecutive MoveTo intents collapse into the latest one; only the final
// pointer position of a drag matters for the next tick.
func (q *IntentQueue) Push(in Intent) {
	if in.Kind == IntentNone {
		return
	}
	if in.Kind == IntentMoveTo && len(q.pending) > 0 && q.pending[len(q.pending)-1].Kind == IntentMoveTo {
		q.pending[len(q.pending)-1] = in
		return
	}
	q.pending = append(q.pending, in)
}

// Len returns the number of pending intents.
func (q *IntentQueue) Len() int {
	return len(q.pending)
}

// Drain returns all pending intents in arrival order and empties the queue.
func (q *IntentQueue) Drain() []Intent {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Intent, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}
