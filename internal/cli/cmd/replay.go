package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabicon/internal/cli"
	"github.com/bnema/tabicon/internal/cli/styles"
	"github.com/bnema/tabicon/internal/logging"
)

var (
	replayOutDir     string
	replayMetricsOut string
	replayWatch      bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml>",
	Short: "Replay scripted favicon candidates through the selection policy",
	Long: `Replay a TOML script of tabs and candidate icons.

Each tab's events run in order: an event may set the page URL, deliver an
icon (a file relative to the script or an http(s) URL), navigate without an
icon, or attach/detach the tab's web contents. Icons are decoded up front.

Example script:

  [[tab]]
  id = "docs"

  [[tab.event]]
  url = "https://example.com/"
  icon = "icons/example-32.png"

  [[tab.event]]
  icon = "icons/example-16.png"

Examples:
  tabicon replay session.toml
  tabicon replay session.toml --out ./held --metrics-out tabicon.prom`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayOutDir, "out", "", "write each tab's held icon as <tab>.png into this directory")
	replayCmd.Flags().StringVar(&replayMetricsOut, "metrics-out", "", "write candidate counters in Prometheus text format to this file")
	replayCmd.Flags().BoolVar(&replayWatch, "watch", false, "reload config.toml while replaying")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "replay")

	script, err := cli.LoadScript(args[0])
	if err != nil {
		return err
	}

	if replayWatch {
		if err := app.WatchConfig(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	results, err := app.NewReplayer().Run(ctx, script)
	if err != nil {
		return err
	}

	var written map[string]string
	if replayOutDir != "" {
		paths, err := cli.WriteHeldIcons(replayOutDir, results)
		if err != nil {
			return err
		}
		written = make(map[string]string, len(paths))
		for id, path := range paths {
			written[string(id)] = path
		}
	}

	if replayMetricsOut != "" {
		if err := app.Metrics.WriteTextfile(replayMetricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	rows := make([]styles.ReplayRow, 0, len(results))
	for _, res := range results {
		rows = append(rows, styles.ReplayRow{
			TabID:         string(res.TabID),
			PageURL:       res.PageURL,
			Held:          res.HasHeld,
			SourceWidth:   res.Held.Source.Width,
			SourceHeight:  res.Held.Source.Height,
			SourceURL:     res.Held.SourceURL,
			Showing:       res.Showing,
			Notifications: res.Notifications,
			OutputPath:    written[string(res.TabID)],
		})
	}

	renderer := styles.NewReplayRenderer(app.Theme)
	_, err = fmt.Fprint(cmd.OutOrStdout(), renderer.Render(app.Tabs.IdealSize(), rows))
	return err
}
