package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themeconf/internal/theme"
)

var themesOpts struct {
	format string
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List all available themes: bundled themes shipped with themeconf and
user themes from ~/.config/themeconf/themes/. A user theme with the same
name as a bundled one shadows it.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().StringVarP(&themesOpts.format, "format", "f", "",
		"Output format (plain, json)")
}

// themeListing is the JSON shape of a theme list entry.
type themeListing struct {
	Name     string    `json:"name"`
	Path     string    `json:"path,omitempty"`
	Bundled  bool      `json:"bundled"`
	Default  bool      `json:"default"`
	Modified time.Time `json:"modified,omitzero"`
}

func runThemes(cmd *cobra.Command, args []string) error {
	infos, err := theme.ListAvailableThemes()
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}

	format := themesOpts.format
	if format == "" {
		format = cfg.Output.Format
	}

	if format == "json" {
		listings := make([]themeListing, 0, len(infos))
		for _, info := range infos {
			listings = append(listings, themeListing{
				Name:     info.Name,
				Path:     info.Path,
				Bundled:  info.IsBundled,
				Default:  info.IsDefault,
				Modified: info.ModTime,
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listings)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, info := range infos {
		source := "(bundled)"
		if !info.IsBundled {
			source = info.Path
		}

		modified := ""
		if !info.ModTime.IsZero() {
			modified = humanize.Time(info.ModTime)
		}

		marker := ""
		if info.IsDefault {
			marker = "*"
		}

		fmt.Fprintf(w, "%s%s\t%s\t%s\n", info.Name, marker, source, modified)
	}
	return w.Flush()
}
