package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themeconf/internal/core"
	"github.com/jmylchreest/themeconf/internal/theme"
)

var watchOpts struct {
	format string
}

var watchCmd = &cobra.Command{
	Use:   "watch [theme|file]",
	Short: "Revalidate a theme whenever its file changes",
	Long: `Watch a theme file and revalidate the record after every change,
printing the result. Runs until interrupted.

Only file-backed themes can be watched; bundled themes have no file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOpts.format, "format", "f", "",
		"Output format (plain, json)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	th, err := resolveTheme(args)
	if err != nil {
		return err
	}
	if th.IsBundled {
		return fmt.Errorf("theme %q is bundled and has no file to watch", th.Name)
	}

	formatter := createFormatter(watchOpts.format)

	// Initial validation before waiting for changes
	if err := formatter.FormatIssues(os.Stdout, core.Validate(th.Config)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = themeLoader.StartWatch(ctx, func(changed *theme.Theme) {
		if err := formatter.FormatIssues(os.Stdout, core.Validate(changed.Config)); err != nil {
			logger.Warn("failed to write validation output", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer themeLoader.StopWatch()

	logger.Info("watching theme", "theme", th.Name, "path", th.Path)
	<-ctx.Done()
	return nil
}
