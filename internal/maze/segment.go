// Package maze implements the scrolling maze: procedural segment generation,
// the scrolling window of segments, and ball-versus-wall collision detection.
package maze

import "github.com/vovakirdan/maze-drift/internal/core"

// Gap is the open horizontal span of a segment edge.
type Gap struct {
	Center float64
	Width  float64
}

// Left returns the x-coordinate of the gap's left wall.
func (g Gap) Left() float64 {
	return g.Center - g.Width/2
}

// Right returns the x-coordinate of the gap's right wall.
func (g Gap) Right() float64 {
	return g.Center + g.Width/2
}

// Segment is one horizontal slice of the maze. Its gap is Top at its top
// edge (Y) and Bottom at its bottom edge (Y + segment height), with straight
// walls in between. Bottom is the Top of the segment directly below it at
// the time this segment was generated.
type Segment struct {
	Y      float64 // Vertical position of the top edge; grows as the maze scrolls
	Top    Gap
	Bottom Gap
}

// GapAt interpolates the gap at relative height t (0 = top edge, 1 = bottom edge).
// t is clamped to [0, 1].
func (s Segment) GapAt(t float64) Gap {
	t = core.ClampF(t, 0, 1)
	return Gap{
		Center: core.Lerp(s.Top.Center, s.Bottom.Center, t),
		Width:  core.Lerp(s.Top.Width, s.Bottom.Width, t),
	}
}

// Overlaps reports whether the vertical span [y0, y1] touches the segment
// span [Y, Y+height].
func (s Segment) Overlaps(y0, y1, height float64) bool {
	return y1 >= s.Y && y0 <= s.Y+height
}
