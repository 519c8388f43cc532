package mazedrift

import "github.com/vovakirdan/maze-drift/internal/maze"

// Snapshot is a read-only copy of the game state for rendering.
// It shares nothing with the live game.
type Snapshot struct {
	Phase         Phase
	Ball          Ball
	Segments      []maze.Segment // Top to bottom
	SegmentHeight float64
	FieldWidth    float64
	FieldHeight   float64
	Score         int
	Best          int
	Lives         int
	MaxLives      int
	Elapsed       float64
	Level         float64 // Difficulty level in [0, 1]
	Speed         float64 // Scroll speed
	Guard         float64
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:         g.phase,
		Ball:          g.ball,
		Segments:      g.maze.Segments(),
		SegmentHeight: g.maze.SegmentHeight(),
		FieldWidth:    g.cfg.Field.Width,
		FieldHeight:   g.cfg.Field.Height,
		Score:         g.Score(),
		Best:          g.best,
		Lives:         g.lives,
		MaxLives:      g.cfg.Ball.MaxLives,
		Elapsed:       g.elapsed,
		Level:         g.difficulty.Level(g.elapsed),
		Speed:         g.maze.Speed(),
		Guard:         g.guard,
	}
}

// GapAt returns the gap of the segment covering world height y.
// ok is false when no segment covers y.
func (s Snapshot) GapAt(y float64) (gap maze.Gap, ok bool) {
	for _, seg := range s.Segments {
		if y >= seg.Y && y < seg.Y+s.SegmentHeight {
			return seg.GapAt((y - seg.Y) / s.SegmentHeight), true
		}
	}
	return maze.Gap{}, false
}
