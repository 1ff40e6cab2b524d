// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultThemeName    = "default"
	DefaultOutputFormat = "plain"
	DefaultDebounce     = "250ms"
)

// Config represents the themeconf configuration.
type Config struct {
	Theme  ThemeConfig  `toml:"theme"`
	Output OutputConfig `toml:"output"`
	Watch  WatchConfig  `toml:"watch"`
	TUI    TUIConfig    `toml:"tui"`
}

// ThemeConfig holds theme selection defaults.
type ThemeConfig struct {
	Default string `toml:"default"` // Theme loaded when none is named
}

// OutputConfig holds default output options.
type OutputConfig struct {
	Format string `toml:"format"` // plain, json
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	Debounce string `toml:"debounce"` // Reload delay after a file change
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHex      bool `toml:"show_hex"`      // Show hex values next to token names
	ShowSwatches bool `toml:"show_swatches"` // Render color swatches
	ShowHelp     bool `toml:"show_help"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Default: DefaultThemeName,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
		TUI: TUIConfig{
			ShowHex:      true,
			ShowSwatches: true,
			ShowHelp:     true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "themeconf", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Parse TOML
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DebounceDuration parses the configured watch debounce.
// Falls back to the default when the value does not parse.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultDebounce)
	}
	return d
}
