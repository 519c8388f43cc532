package maze

import (
	"math"

	"github.com/vovakirdan/maze-drift/internal/config"
)

// Maze is the window of segments currently in play, ordered top to bottom
// (index 0 is the topmost), plus the scroll state.
type Maze struct {
	segments      []Segment
	gen           *Generator
	segmentHeight float64
	fieldWidth    float64
	fieldHeight   float64
	initialSpeed  float64
	accel         float64
	extra         int
	speed         float64
}

// New creates an empty maze. Call Reset before scrolling.
func New(gen *Generator, field config.FieldConfig, cfg config.MazeConfig) *Maze {
	return &Maze{
		segments:      make([]Segment, 0, SegmentCount(field.Height, cfg)),
		gen:           gen,
		segmentHeight: cfg.SegmentHeight,
		fieldWidth:    field.Width,
		fieldHeight:   field.Height,
		initialSpeed:  cfg.InitialSpeed,
		accel:         cfg.Accel,
		extra:         cfg.ExtraSegments,
		speed:         cfg.InitialSpeed,
	}
}

// SegmentCount returns the window size: enough segments to cover the field
// plus a few spares above it.
func SegmentCount(fieldHeight float64, cfg config.MazeConfig) int {
	return int(math.Ceil(fieldHeight/cfg.SegmentHeight)) + cfg.ExtraSegments
}

// Reset regenerates the window. The first segment sits two segment heights
// above the field bottom, connecting to a gap of the current base width
// centered in the field; the rest are built upward from it.
func (m *Maze) Reset(gaps config.GapConfig) {
	m.speed = m.initialSpeed
	count := int(math.Ceil(m.fieldHeight/m.segmentHeight)) + m.extra

	built := make([]Segment, 0, count)
	y := m.fieldHeight - m.segmentHeight*2
	below := Gap{Center: m.fieldWidth / 2, Width: gaps.Base}
	for i := 0; i < count; i++ {
		seg := m.gen.Next(y, below, gaps)
		built = append(built, seg)
		below = seg.Top
		y -= m.segmentHeight
	}

	// Built bottom-up; store top-down
	m.segments = m.segments[:0]
	for i := len(built) - 1; i >= 0; i-- {
		m.segments = append(m.segments, built[i])
	}
}

// Accelerate raises the scroll speed by accel*dt, scaled by boost.
func (m *Maze) Accelerate(dt, boost float64) {
	m.speed += m.accel * dt * boost
}

// Scroll moves every segment down by speed*dt and recycles the bottom
// segment once it has left the field, regenerating it above the current top
// segment. At most one segment is recycled per call. Reports whether a
// segment was recycled.
func (m *Maze) Scroll(dt float64, gaps config.GapConfig) bool {
	if len(m.segments) == 0 {
		return false
	}

	dy := m.speed * dt
	for i := range m.segments {
		m.segments[i].Y += dy
	}

	bottom := m.segments[len(m.segments)-1]
	if bottom.Y <= m.fieldHeight+m.segmentHeight {
		return false
	}

	top := m.segments[0]
	fresh := m.gen.Next(top.Y-m.segmentHeight, top.Top, gaps)

	// Shift down one slot and put the fresh segment in front
	copy(m.segments[1:], m.segments[:len(m.segments)-1])
	m.segments[0] = fresh
	return true
}

// Segments returns a copy of the current window, top to bottom.
func (m *Maze) Segments() []Segment {
	out := make([]Segment, len(m.segments))
	copy(out, m.segments)
	return out
}

// View returns the live window without copying. Callers must not modify it.
func (m *Maze) View() []Segment {
	return m.segments
}

// Speed returns the current scroll speed in world units per time unit.
func (m *Maze) Speed() float64 {
	return m.speed
}

// SegmentHeight returns the height of one segment.
func (m *Maze) SegmentHeight() float64 {
	return m.segmentHeight
}
