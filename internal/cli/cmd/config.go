package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabicon/internal/cli/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the config file location, the derived ideal icon size in pixels
and the effective configuration after defaults and TABICON_* environment
overrides.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := ""
	if app.ConfigManager != nil {
		path = app.ConfigManager.GetConfigFile()
	}

	out, err := styles.NewConfigRenderer(app.Theme).Render(path, app.Config)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
