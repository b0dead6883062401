// Package cmd provides Cobra CLI commands for tabicon.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabicon/internal/cli"
	"github.com/bnema/tabicon/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "tabicon",
		Short: "Tab favicon selection, replayed from the command line",
		Long: `tabicon decides which favicon a browser tab should show.

While a page loads, the engine delivers a stream of candidate icons of
assorted sizes. tabicon keeps the one closest to the ideal size, holds it
rescaled to that size, and notifies observers of every candidate.

Use 'tabicon replay' to feed a scripted candidate stream through the
selection policy, and 'tabicon index' to inspect the icons kept so far.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory containing config.toml (default $XDG_CONFIG_HOME/tabicon)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
