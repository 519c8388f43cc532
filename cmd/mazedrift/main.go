// mazedrift is a terminal rendition of the Maze Drift arcade game: steer a
// ball through an endlessly scrolling maze and pass through the gaps.
//
// Usage:
//
//	mazedrift play           - Play a game
//	mazedrift menu           - Start menu to pick a difficulty interactively
//	mazedrift scores         - Show the best and most recent runs
//	mazedrift serve          - Start SSH server for remote play
//	mazedrift config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible mazes
//	--db <path>          - Set database path (default: ~/.mazedrift/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-drift/internal/config"
	"github.com/vovakirdan/maze-drift/internal/core"
	"github.com/vovakirdan/maze-drift/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazedrift",
	Short: "Maze Drift - steer through an endless scrolling maze",
	Long: `Maze Drift is a terminal arcade game. A ball sits near the bottom of
the field while maze rows scroll towards it; move it left and right to pass
through the gaps. Every wall hit costs a life and shrinks the ball.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu with presets, scores and theme
  scores   - View the best and most recent runs
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  mazedrift play
  mazedrift play --difficulty hard
  mazedrift menu
  mazedrift serve --ssh :2222
  mazedrift scores --recent`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazedrift/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. Interactive commands pass io.Discard so logging
// never draws over the alt screen.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "mazedrift",
	})
	return logger, closeFn, nil
}

// terminalConfig returns the runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. A failure is reported and the caller
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	store.SetLogger(logger)
	return store
}

// loadGameConfig loads the game config and validates the difficulty preset.
func loadGameConfig(path, difficulty string) (config.MazeDriftConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.MazeDriftConfig{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, "", err
	}
	return cfg, preset, nil
}

// exitOnError prints err and exits.
func exitOnError(prefix string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
	os.Exit(1)
}
