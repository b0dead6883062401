package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabicon/internal/cli/styles"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "List the favicon index",
	Long:  `List every domain with a kept favicon, most recently updated first.`,
	Args:  cobra.NoArgs,
	RunE:  runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	entries, err := app.Index.List(app.Ctx())
	if err != nil {
		return fmt.Errorf("list favicon index: %w", err)
	}

	renderer := styles.NewIndexRenderer(app.Theme)
	_, err = fmt.Fprint(cmd.OutOrStdout(), renderer.Render(entries, app.Cache.HasPNGOnDisk))
	return err
}
