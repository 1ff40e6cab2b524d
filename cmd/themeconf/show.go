package main

import (
	"os"

	"github.com/spf13/cobra"
)

var showOpts struct {
	format string
}

var showCmd = &cobra.Command{
	Use:   "show [theme|file]",
	Short: "Print a resolved theme configuration record",
	Long: `Print a theme configuration record after name resolution.

Without arguments, shows the configured default theme. With a theme name,
resolves it against the user themes directory first and the bundled themes
second. With a file path, loads that file directly.

Examples:
  # Show the default theme
  themeconf show

  # Show a named theme as JSON
  themeconf show minimal --format json

  # Show a theme file
  themeconf show ./site.theme.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showOpts.format, "format", "f", "",
		"Output format (plain, json)")
}

func runShow(cmd *cobra.Command, args []string) error {
	th, err := resolveTheme(args)
	if err != nil {
		return err
	}

	formatter := createFormatter(showOpts.format)
	return formatter.FormatTheme(os.Stdout, th)
}
