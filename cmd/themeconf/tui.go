package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themeconf/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [theme|file]",
	Short: "Browse a theme's merged palette interactively",
	Long: `Launch the interactive palette browser. Shows every token of the
merged palette with its value and origin (default or extension), with
filtering and an extension-only view.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	th, err := resolveTheme(args)
	if err != nil {
		return err
	}

	return tui.Run(getConfig(), th)
}
