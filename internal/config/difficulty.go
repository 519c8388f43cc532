package config

import "github.com/vovakirdan/maze-drift/internal/core"

// DifficultyManager maps elapsed run time to gap sizes and scroll speed boost.
// It is a pure function of the elapsed time it is given; the game owns the clock.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Progress returns elapsed/ramp clamped to [0, 1].
func (d *DifficultyManager) Progress(elapsed float64) float64 {
	ramp := d.cfg.RampDuration
	if ramp <= 0 {
		ramp = 1 // Prevent division by zero
	}
	return core.ClampF(elapsed/ramp, 0.0, 1.0)
}

// Level returns the current difficulty level (0.0 to 1.0).
// Progression interpolates from the initial level to 1.0; with progression
// disabled the level stays at the initial level.
func (d *DifficultyManager) Level(elapsed float64) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}
	return core.Lerp(d.initialLevel, 1.0, d.Progress(elapsed))
}

// Gaps returns the gap triple for the current level, interpolated between
// the easy and hard triples. At level 1 the hard values are returned exactly.
func (d *DifficultyManager) Gaps(elapsed float64) GapConfig {
	level := d.Level(elapsed)
	easy, hard := d.cfg.Easy, d.cfg.Hard
	return GapConfig{
		Base: core.Lerp(easy.Base, hard.Base, level),
		Min:  core.Lerp(easy.Min, hard.Min, level),
		Max:  core.Lerp(easy.Max, hard.Max, level),
	}
}

// SpeedBoost returns the multiplier applied to scroll acceleration.
func (d *DifficultyManager) SpeedBoost(elapsed float64) float64 {
	return d.cfg.SpeedBoostBase + d.cfg.SpeedBoostRange*d.Level(elapsed)
}
