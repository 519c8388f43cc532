package maze

import "github.com/vovakirdan/maze-drift/internal/core"

// Detector tests the ball against the maze walls.
type Detector struct {
	SegmentHeight float64
	Forgiveness   float64 // Trimmed from each side of the visual gap
}

// Probe is the outcome of one collision test.
type Probe struct {
	Checked  bool    // A segment overlapped the ball vertically
	Index    int     // Index of the tested segment (valid when Checked)
	GapStart float64 // Forgiven left edge of the passage at the ball's height
	GapEnd   float64 // Forgiven right edge
	Hit      bool    // Ball protrudes past either forgiven edge
}

// Probe finds the first segment, top to bottom, whose span overlaps the ball
// vertically and tests the ball's horizontal extent against that segment's
// interpolated gap. Only one segment is tested per call; when none overlaps
// nothing is checked.
func (d Detector) Probe(segments []Segment, x, y, radius float64) Probe {
	for i, seg := range segments {
		if !seg.Overlaps(y-radius, y+radius, d.SegmentHeight) {
			continue
		}

		t := core.ClampF((y-seg.Y)/d.SegmentHeight, 0, 1)
		gap := seg.GapAt(t)
		start := gap.Left() + d.Forgiveness
		end := gap.Right() - d.Forgiveness

		overlapLeft := start - (x - radius)
		overlapRight := (x + radius) - end

		return Probe{
			Checked:  true,
			Index:    i,
			GapStart: start,
			GapEnd:   end,
			Hit:      overlapLeft > 0 || overlapRight > 0,
		}
	}
	return Probe{Index: -1}
}
