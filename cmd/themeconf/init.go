package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themeconf/internal/theme"
)

var initOpts struct {
	from  string
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a user theme from a bundled theme",
	Long: `Create a new theme file in ~/.config/themeconf/themes/ seeded from a
bundled theme, ready to edit.

Examples:
  # Create ~/.config/themeconf/themes/site.toml from the default theme
  themeconf init site

  # Seed from the minimal theme instead
  themeconf init site --from minimal`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initOpts.from, "from", theme.DefaultThemeName,
		"Bundled theme to seed from")
	initCmd.Flags().BoolVar(&initOpts.force, "force", false,
		"Overwrite an existing theme file")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]

	seed, found := theme.GetEmbeddedRaw(initOpts.from)
	if !found {
		return fmt.Errorf("unknown bundled theme %q", initOpts.from)
	}

	if err := theme.CreateThemesDir(); err != nil {
		return fmt.Errorf("failed to create themes directory: %w", err)
	}

	themesDir, err := theme.ThemesDir()
	if err != nil {
		return err
	}

	path := filepath.Join(themesDir, name+".toml")
	if !initOpts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("theme file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, seed, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}

	fmt.Printf("created %s\n", path)
	return nil
}
