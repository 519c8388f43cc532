package maze

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-drift/internal/config"
	"github.com/vovakirdan/maze-drift/internal/core"
)

// Source is the randomness the generator draws from: uniform values in [0, 1).
// *rand.Rand satisfies it; tests inject fixed sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source. Seed 0 means seed from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generator produces new maze segments that connect to the segment below them.
type Generator struct {
	src         Source
	fieldWidth  float64
	maxOffset   float64 // Max center drift between a segment's bottom and top gap
	margin      float64 // Min wall thickness between a gap and the field edge
	widthJitter float64 // Random +/- around the base width
}

// NewGenerator creates a generator for the given field and maze constants.
func NewGenerator(src Source, fieldWidth float64, cfg config.MazeConfig) *Generator {
	return &Generator{
		src:         src,
		fieldWidth:  fieldWidth,
		maxOffset:   cfg.MaxOffset,
		margin:      cfg.Margin,
		widthJitter: cfg.WidthJitter,
	}
}

// SetSource replaces the randomness source.
func (g *Generator) SetSource(src Source) {
	g.src = src
}

// Next builds the segment whose top edge sits at y, continuing from the gap
// below it. The new top width is the jittered base width clamped to
// [Min, Max]; the new top center drifts from below.Center by at most
// maxOffset and is clamped so the gap keeps margin from both field edges.
// Width is settled first because the center bounds depend on it.
func (g *Generator) Next(y float64, below Gap, gaps config.GapConfig) Segment {
	width := core.ClampF(gaps.Base+g.uniform(-g.widthJitter, g.widthJitter), gaps.Min, gaps.Max)

	centerMin := width/2 + g.margin
	centerMax := g.fieldWidth - width/2 - g.margin
	center := core.ClampF(below.Center+g.uniform(-1, 1)*g.maxOffset, centerMin, centerMax)

	return Segment{
		Y:      y,
		Top:    Gap{Center: center, Width: width},
		Bottom: below,
	}
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.src.Float64()*(hi-lo)
}
