package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themeconf/internal/adapter/output"
	"github.com/jmylchreest/themeconf/internal/palette"
)

var paletteOpts struct {
	format     string
	extendOnly bool
	swatches   bool
}

var paletteCmd = &cobra.Command{
	Use:   "palette [theme|file]",
	Short: "Print the merged color palette for a theme",
	Long: `Print the color palette a build pipeline would see after merging the
theme's color extensions into the default palette. The merge is additive:
default tokens the extension does not name are unchanged.

Examples:
  # Merged palette of the default theme
  themeconf palette

  # Only the extension tokens
  themeconf palette --extend-only

  # Merged palette with terminal swatches
  themeconf palette --swatches`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVarP(&paletteOpts.format, "format", "f", "",
		"Output format (plain, json)")
	paletteCmd.Flags().BoolVar(&paletteOpts.extendOnly, "extend-only", false,
		"Show only the theme's extension tokens")
	paletteCmd.Flags().BoolVar(&paletteOpts.swatches, "swatches", false,
		"Render terminal color swatches (plain format)")
}

func runPalette(cmd *cobra.Command, args []string) error {
	th, err := resolveTheme(args)
	if err != nil {
		return err
	}

	extend := th.Config.Theme.Extend.Colors

	var p palette.Palette
	if paletteOpts.extendOnly {
		p = palette.Palette(extend).Clone()
	} else {
		p = palette.Default().Merge(extend)
	}

	opts := output.DefaultFormatterOptions()
	opts.ShowHex = cfg.TUI.ShowHex
	opts.ShowSwatches = paletteOpts.swatches

	format := paletteOpts.format
	if format == "" {
		format = cfg.Output.Format
	}

	formatter := output.NewFormatter(output.ParseFormatType(format), opts)
	return formatter.FormatPalette(os.Stdout, p)
}
