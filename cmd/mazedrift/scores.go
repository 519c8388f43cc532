package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-drift/internal/platform/tui"
	"github.com/vovakirdan/maze-drift/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagTUI    bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best and most recent runs",
	Long: `Display the top runs and aggregate statistics.

Examples:
  mazedrift scores
  mazedrift scores --recent --limit 5
  mazedrift scores --tui
  mazedrift scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse the scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	exitOnError("Error", err)
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		closeLog()
		exitOnError("Error opening scores database", err)
	}
	store.SetLogger(logger)
	defer store.Close()

	if err := showScores(store); err != nil {
		store.Close()
		closeLog()
		exitOnError("Error", err)
	}
}

func showScores(store *storage.Store) error {
	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagTUI {
		theme := tui.DarkTheme()
		if name, err := store.Theme(); err == nil {
			theme = tui.ThemeByName(name)
		}
		rt := terminalConfig()
		_, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH, theme)
		return err
	}

	title := "Top Runs"
	runs, err := store.TopRuns(flagLimit)
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	// Display runs
	fmt.Printf("Maze Drift - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mazedrift play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-10s  %-6s  %-7s  %s\n", "Rank", "Score", "Time", "Preset", "When")
	fmt.Printf("  %-5s  %-10s  %-6s  %-7s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range runs {
		d := r.Duration.Round(time.Second)
		fmt.Printf("  %-5s  %-10s  %-6s  %-7s  %s\n",
			humanize.Ordinal(i+1),
			humanize.Comma(int64(r.Score)),
			fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
			r.Preset,
			humanize.Time(r.CreatedAt),
		)
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	best, err := store.HighScore()
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}

	fmt.Println()
	fmt.Printf("Best: %s\n", humanize.Comma(int64(best)))
	fmt.Printf("Runs: %s  Average: %s  Played: %s\n",
		humanize.Comma(int64(stats.Runs)),
		humanize.CommafWithDigits(stats.AvgScore, 1),
		stats.TotalTime.Round(time.Second),
	)
	return nil
}

