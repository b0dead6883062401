package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabicon/internal/application/usecase"
	"github.com/bnema/tabicon/internal/cli/styles"
	domainurl "github.com/bnema/tabicon/internal/domain/url"
)

var purgeAll bool

var purgeCmd = &cobra.Command{
	Use:   "purge [domain|url]...",
	Short: "Remove kept favicons from the index and the icon cache",
	Long: `Remove kept favicons for the given domains (or page URLs) from the
favicon index and the on-disk icon cache.

Examples:
  tabicon purge example.com
  tabicon purge https://www.example.com/page
  tabicon purge --all`,
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().BoolVar(&purgeAll, "all", false, "purge every indexed domain")
	rootCmd.AddCommand(purgeCmd)
}

func runPurge(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if len(args) == 0 && !purgeAll {
		return fmt.Errorf("name at least one domain, or pass --all")
	}
	if len(args) > 0 && purgeAll {
		return fmt.Errorf("--all does not take domains")
	}

	input := usecase.PurgeFaviconsInput{}
	for _, arg := range args {
		domain := arg
		if d := domainurl.ExtractDomain(arg); d != "" {
			domain = d
		}
		input.Domains = append(input.Domains, domain)
	}

	out, err := app.PurgeUC.Execute(app.Ctx(), input)
	if out != nil {
		for _, res := range out.Results {
			if res.Success {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), res.Domain)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s %s\n",
					app.Theme.ErrorStyle.Render(styles.IconX), res.Domain, app.Theme.Subtle.Render(res.Error.Error()))
			}
		}
	}
	return err
}
