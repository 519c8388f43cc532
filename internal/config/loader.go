package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// configNames are the file names probed in each search directory, in order.
var configNames = []string{"mazedrift.yaml", "mazedrift.yml", "mazedrift.toml"}

// Load loads the Maze Drift configuration.
// Search order: customPath -> ~/.mazedrift/configs/ -> ./configs/ -> embedded default.
// Files only need to contain the keys they override; everything else keeps
// its default value. A custom path that cannot be read or parsed is an error;
// broken files found while searching are skipped.
func Load(customPath string) (MazeDriftConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			cfg, err := LoadFile(filepath.Join(dir, name))
			if err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single config file on top of the defaults.
// The format is chosen by extension: .toml uses TOML, anything else YAML.
func LoadFile(path string) (MazeDriftConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Decode(data, FormatForPath(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FormatForPath picks the decoder for a file name.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode unmarshals data in the given format into cfg.
func Decode(data []byte, format Format, cfg *MazeDriftConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// Encode marshals cfg in the given format.
func Encode(cfg MazeDriftConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return buf.Bytes(), nil
}

// searchDirs returns the directories probed for a config file.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	return append(dirs, "configs")
}

// userConfigDir returns ~/.mazedrift/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazedrift", "configs")
}
