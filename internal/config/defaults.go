package config

import (
	_ "embed"
)

//go:embed defaults/mazedrift.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in Maze Drift configuration.
func DefaultConfig() MazeDriftConfig {
	return MazeDriftConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 800,
		},
		Ball: BallConfig{
			BaseRadius:   6,
			MaxLives:     5,
			Speed:        9,
			BottomOffset: 120,
		},
		Maze: MazeConfig{
			SegmentHeight: 64,
			InitialSpeed:  110,
			Accel:         8,
			MaxOffset:     70,
			Margin:        6,
			WidthJitter:   20,
			ExtraSegments: 4,
		},
		Collision: CollisionConfig{
			Forgiveness: 4,
			Guard:       0.35,
			StartGrace:  0.75,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialLevel:    0.0,
			RampDuration:    45,
			Easy:            GapConfig{Base: 190, Min: 170, Max: 230},
			Hard:            GapConfig{Base: 135, Min: 110, Max: 175},
			SpeedBoostBase:  0.6,
			SpeedBoostRange: 0.4,
		},
		Scoring: ScoringConfig{
			Rate: 10,
		},
		Input: InputConfig{
			Nudge: 22,
		},
		Timing: TimingConfig{
			MaxDeltaMS: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
