package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themeconf/internal/core"
)

var validateOpts struct {
	format string
	quiet  bool
}

var validateCmd = &cobra.Command{
	Use:   "validate [theme|file]",
	Short: "Validate a theme configuration record",
	Long: `Validate the structure of a theme configuration record: the content
glob patterns, the color and spacing token extensions, and the plugin list.

Exits non-zero when the record has errors. Warnings (such as duplicate
glob patterns) do not affect the exit code.

Examples:
  # Validate the default theme
  themeconf validate

  # Validate a theme file, machine-readable
  themeconf validate ./site.theme.toml --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateOpts.format, "format", "f", "",
		"Output format (plain, json)")
	validateCmd.Flags().BoolVarP(&validateOpts.quiet, "quiet", "q", false,
		"Suppress output, report via exit code only")
}

func runValidate(cmd *cobra.Command, args []string) error {
	th, err := resolveTheme(args)
	if err != nil {
		return err
	}

	issues := core.Validate(th.Config)

	if !validateOpts.quiet {
		formatter := createFormatter(validateOpts.format)
		if err := formatter.FormatIssues(os.Stdout, issues); err != nil {
			return err
		}
	}

	if core.HasErrors(issues) {
		errs := 0
		for _, issue := range issues {
			if issue.Severity == core.SeverityError {
				errs++
			}
		}
		return fmt.Errorf("theme %q failed validation with %d error(s)", th.Name, errs)
	}

	logger.Debug("theme validated", "theme", th.Name, "warnings", len(issues))
	return nil
}
