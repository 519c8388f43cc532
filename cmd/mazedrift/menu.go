package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-drift/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Maze Drift with an interactive menu",
	Long: `Start Maze Drift in interactive menu mode.

Pick a difficulty preset to play, browse the high scores or toggle the
theme. After a game, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  mazedrift menu
  mazedrift menu --fps 30
  mazedrift menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, _, err := loadGameConfig(flagConfig, "")
	exitOnError("Error", err)

	logger, closeLog, err := newLogger(io.Discard)
	exitOnError("Error", err)
	defer closeLog()

	store := openStore(logger)

	runErr := tui.RunSession(store, gameCfg, terminalConfig(), logger)

	// Cleanup
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		exitOnError("Error", runErr)
	}
}
