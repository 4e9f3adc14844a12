package cli

import (
	"context"

	"github.com/spf13/cobra"

	"yumbridge/internal/history"
	"yumbridge/internal/ui"
)

var upgradeRefresh bool

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade all installed packages",
	Long: `Run a full system upgrade. The reported changes cover version
bumps and any dependencies the upgrade pulled in.

Examples:
  yumbridge upgrade
  yumbridge upgrade --refresh    # Clean cached metadata first`,
	RunE: runUpgrade,
}

func init() {
	upgradeCmd.Flags().BoolVar(&upgradeRefresh, "refresh", false, "clean cached metadata first")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if !cfg.General.AutoConfirm && !cfg.General.DryRun {
		confirmed, err := ui.Confirm("Upgrade all installed packages?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	entry := history.NewEntry(history.OpUpgrade, nil)

	changes, err := mgr.Upgrade(ctx, upgradeRefresh || cfg.General.Refresh)
	if err != nil {
		entry.MarkFailed(err)
		recordHistory(entry)
		return err
	}

	entry.Changes = changes
	entry.MarkSuccess()
	recordHistory(entry)

	ui.PrintChanges(changes)
	return nil
}
