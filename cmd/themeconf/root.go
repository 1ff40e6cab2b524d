// Package main provides the CLI entrypoint for themeconf.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themeconf/internal/adapter/output"
	"github.com/jmylchreest/themeconf/internal/config"
	"github.com/jmylchreest/themeconf/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themeFile  string
	}
	logger *slog.Logger

	// themeLoader is the global loader instance
	themeLoader *theme.Loader
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "themeconf",
	Short: "Theme configuration toolkit for utility-class build pipelines",
	Long: `themeconf owns the theme configuration record a utility-class build
pipeline consumes: the content globs that select source files for class
scanning, and the design-token extensions merged into the default palette.

It loads themes from ~/.config/themeconf/themes/ (falling back to bundled
themes), validates them, resolves the merged palette, and watches theme
files for changes.

Running themeconf without a subcommand launches the interactive palette
browser.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		themeLoader = theme.NewLoader(logger)
		themeLoader.SetWatchDebounce(cfg.DebounceDuration())

		return nil
	},
	// Default to the palette browser when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/themeconf/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themeFile, "theme-file", "",
		"Path to a theme file, bypassing theme name resolution")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// resolveTheme loads the theme named by the first positional argument,
// the --theme-file flag, or the configured default, in that order of
// precedence. An argument that names an existing file is loaded as a
// path rather than a theme name.
func resolveTheme(args []string) (*theme.Theme, error) {
	if globalOpts.themeFile != "" {
		if err := themeLoader.LoadPath(globalOpts.themeFile); err != nil {
			return nil, fmt.Errorf("failed to load theme file: %w", err)
		}
		return themeLoader.Current(), nil
	}

	if len(args) > 0 {
		arg := args[0]
		if looksLikePath(arg) {
			if err := themeLoader.LoadPath(arg); err != nil {
				return nil, fmt.Errorf("failed to load theme file: %w", err)
			}
			return themeLoader.Current(), nil
		}
		if err := themeLoader.LoadTheme(arg); err != nil {
			return nil, err
		}
		return themeLoader.Current(), nil
	}

	if err := themeLoader.LoadTheme(cfg.Theme.Default); err != nil {
		return nil, err
	}
	return themeLoader.Current(), nil
}

// looksLikePath reports whether arg should be treated as a file path
// instead of a theme name.
func looksLikePath(arg string) bool {
	if strings.ContainsRune(arg, filepath.Separator) {
		return true
	}
	if filepath.Ext(arg) == "" {
		return false
	}
	_, err := os.Stat(arg)
	return err == nil
}

// createFormatter creates the output formatter for a requested format,
// falling back to the configured default.
func createFormatter(format string) output.Formatter {
	if format == "" && cfg != nil {
		format = cfg.Output.Format
	}

	opts := output.DefaultFormatterOptions()
	if cfg != nil {
		opts.ShowHex = cfg.TUI.ShowHex
	}

	return output.NewFormatter(output.ParseFormatType(strings.ToLower(format)), opts)
}

// getConfig returns the global config instance.
func getConfig() *config.Config {
	return cfg
}
