package cli

import (
	"context"

	"github.com/spf13/cobra"

	"yumbridge/internal/ui"
)

var latestCmd = &cobra.Command{
	Use:     "latest [packages...]",
	Aliases: []string{"available-version"},
	Short:   "Show the latest available version of packages",
	Long: `Query the repositories for the latest version available for
upgrade or installation. A package whose latest version is already
installed, or that no repository carries, renders with a dash.

Examples:
  yumbridge latest vim
  yumbridge latest vim bash --from-repo epel-testing`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLatest,
}

func init() {
	addRepoFlags(latestCmd)
}

func runLatest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	latest, err := mgr.LatestVersions(ctx, repoOptions(), args...)
	if err != nil {
		return err
	}

	ui.PrintVersionMap(latest)
	return nil
}
