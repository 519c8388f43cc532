package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-drift/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Maze Drift.

Controls:
  Space/Enter      - Start or retry
  Left/Right/A/D   - Nudge the ball
  Mouse            - Click or drag to steer
  P/Esc            - Pause
  R                - Restart
  T                - Toggle dark/light theme
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the widest gaps, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  mazedrift play
  mazedrift play --difficulty hard
  mazedrift play --seed 42
  mazedrift play --config ./my-maze.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, preset, err := loadGameConfig(flagConfig, flagDifficulty)
	exitOnError("Error", err)

	logger, closeLog, err := newLogger(io.Discard)
	exitOnError("Error", err)
	defer closeLog()

	store := openStore(logger)

	// Run the game
	runErr := tui.Run(tui.GameOptions{
		Config:  gameCfg,
		Runtime: terminalConfig(),
		Preset:  preset,
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		exitOnError("Error running game", runErr)
	}
}
