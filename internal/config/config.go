// Package config provides YAML/TOML configuration loading and difficulty
// management for Maze Drift.
package config

import (
	"errors"
	"fmt"
)

// MazeDriftConfig contains all tunable constants of the game.
// Field units are world units: the maze is simulated on a FieldConfig-sized
// plane and only mapped to terminal cells when rendering.
type MazeDriftConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Maze       MazeConfig       `yaml:"maze" toml:"maze"`
	Collision  CollisionConfig  `yaml:"collision" toml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
}

// FieldConfig defines the simulated playing field.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the player ball.
type BallConfig struct {
	BaseRadius   float64 `yaml:"base_radius" toml:"base_radius"`     // Radius per remaining life
	MaxLives     int     `yaml:"max_lives" toml:"max_lives"`         // Lives at the start of a run
	Speed        float64 `yaml:"speed" toml:"speed"`                 // Easing rate toward the target x
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance of the ball above the field bottom
}

// MazeConfig defines segment generation and scrolling.
type MazeConfig struct {
	SegmentHeight float64 `yaml:"segment_height" toml:"segment_height"`
	InitialSpeed  float64 `yaml:"initial_speed" toml:"initial_speed"` // Scroll speed at run start
	Accel         float64 `yaml:"accel" toml:"accel"`                 // Scroll acceleration per time unit
	MaxOffset     float64 `yaml:"max_offset" toml:"max_offset"`       // Max gap center drift between segments
	Margin        float64 `yaml:"margin" toml:"margin"`               // Min wall thickness beside a gap
	WidthJitter   float64 `yaml:"width_jitter" toml:"width_jitter"`   // Random +/- applied to the base gap width
	ExtraSegments int     `yaml:"extra_segments" toml:"extra_segments"`
}

// CollisionConfig defines hit detection and its cooldowns.
type CollisionConfig struct {
	Forgiveness float64 `yaml:"forgiveness" toml:"forgiveness"` // Trimmed from each side of the gap
	Guard       float64 `yaml:"guard" toml:"guard"`             // Cooldown after a hit
	StartGrace  float64 `yaml:"start_grace" toml:"start_grace"` // Cooldown at run start
}

// GapConfig is one gap-size triple of the difficulty curve.
type GapConfig struct {
	Base float64 `yaml:"base" toml:"base"`
	Min  float64 `yaml:"min" toml:"min"`
	Max  float64 `yaml:"max" toml:"max"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled         bool      `yaml:"enabled" toml:"enabled"`
	InitialLevel    float64   `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	RampDuration    float64   `yaml:"ramp_duration" toml:"ramp_duration"` // Time units to reach full progression
	Easy            GapConfig `yaml:"easy" toml:"easy"`
	Hard            GapConfig `yaml:"hard" toml:"hard"`
	SpeedBoostBase  float64   `yaml:"speed_boost_base" toml:"speed_boost_base"`
	SpeedBoostRange float64   `yaml:"speed_boost_range" toml:"speed_boost_range"`
}

// ScoringConfig defines score accumulation.
type ScoringConfig struct {
	Rate float64 `yaml:"rate" toml:"rate"` // Points per time unit while running
}

// InputConfig defines keyboard steering.
type InputConfig struct {
	Nudge float64 `yaml:"nudge" toml:"nudge"` // Target shift per arrow key press
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	MaxDeltaMS int `yaml:"max_delta_ms" toml:"max_delta_ms"` // Clamp on a single frame delta
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means easy.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyEasy, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured initial level and stops progression.
func ApplyPreset(cfg *MazeDriftConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate rejects configurations the simulation cannot run with.
func (c MazeDriftConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Ball.BaseRadius <= 0 {
		errs = append(errs, fmt.Errorf("ball.base_radius must be positive, got %v", c.Ball.BaseRadius))
	}
	if c.Ball.MaxLives < 1 {
		errs = append(errs, fmt.Errorf("ball.max_lives must be at least 1, got %d", c.Ball.MaxLives))
	}
	if c.Maze.SegmentHeight <= 0 {
		errs = append(errs, fmt.Errorf("maze.segment_height must be positive, got %v", c.Maze.SegmentHeight))
	}
	if c.Maze.ExtraSegments < 0 {
		errs = append(errs, fmt.Errorf("maze.extra_segments must not be negative, got %d", c.Maze.ExtraSegments))
	}
	if c.Difficulty.RampDuration <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.ramp_duration must be positive, got %v", c.Difficulty.RampDuration))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel))
	}
	for name, g := range map[string]GapConfig{"easy": c.Difficulty.Easy, "hard": c.Difficulty.Hard} {
		if g.Min > g.Max {
			errs = append(errs, fmt.Errorf("difficulty.%s: min %v exceeds max %v", name, g.Min, g.Max))
		}
		if g.Max+2*c.Maze.Margin > c.Field.Width {
			errs = append(errs, fmt.Errorf("difficulty.%s: max gap %v does not fit the field", name, g.Max))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
