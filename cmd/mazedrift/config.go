package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-drift/internal/config"
)

var (
	flagFormat       string
	flagConfigPath   string
	flagConfigPreset string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would run with, after the config file
search and the difficulty preset are applied. The output can be saved to
~/.mazedrift/configs/ and edited.

Examples:
  mazedrift config
  mazedrift config --format toml > ~/.mazedrift/configs/mazedrift.toml
  mazedrift config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagConfigPreset, "difficulty", "", "Apply a difficulty preset before printing")
}

func runConfig(_ *cobra.Command, _ []string) {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		exitOnError("Error", fmt.Errorf("unsupported format %q (want yaml or toml)", flagFormat))
	}

	cfg, preset, err := loadGameConfig(flagConfigPath, flagConfigPreset)
	exitOnError("Error", err)
	if flagConfigPreset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	out, err := config.Encode(cfg, format)
	exitOnError("Error", err)
	os.Stdout.Write(out)
}
