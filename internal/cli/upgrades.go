package cli

import (
	"context"

	"github.com/spf13/cobra"

	"yumbridge/internal/ui"
)

var upgradesRefresh bool

var upgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "List pending package upgrades",
	Long: `List the installed packages that have an upgrade available,
with the version the upgrade would install.

Examples:
  yumbridge upgrades
  yumbridge upgrades --refresh`,
	RunE: runUpgrades,
}

func init() {
	upgradesCmd.Flags().BoolVar(&upgradesRefresh, "refresh", true, "clean cached metadata first")
}

func runUpgrades(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	upgrades, err := mgr.ListUpgrades(ctx, upgradesRefresh)
	if err != nil {
		return err
	}

	if len(upgrades) == 0 {
		ui.SuccessMsg("System is up to date")
		return nil
	}

	ui.PrintVersionMap(upgrades)
	ui.MutedMsg("\n%d upgrade(s) pending", len(upgrades))
	return nil
}
