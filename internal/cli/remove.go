package cli

import (
	"context"

	"github.com/spf13/cobra"

	"yumbridge/internal/history"
	"yumbridge/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:     "remove [packages...]",
	Aliases: []string{"uninstall"},
	Short:   "Remove one or more packages",
	Long: `Remove packages and report which installed names disappeared.
Names that were not installed to begin with are silently skipped.

Examples:
  yumbridge remove vim
  yumbridge remove -y vim git`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

// yum keeps no configuration files apart from the rpm payload, so purge
// and remove are the same operation.
var purgeCmd = &cobra.Command{
	Use:   "purge [packages...]",
	Short: "Remove one or more packages (alias for remove)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ui.InfoMsg("Removing %d package(s)", len(args))
	for _, name := range args {
		ui.MutedMsg("  - %s", name)
	}

	if !cfg.General.AutoConfirm && !cfg.General.DryRun {
		confirmed, err := ui.Confirm("Proceed with removal?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	entry := history.NewEntry(history.OpRemove, args)

	removed, err := mgr.Remove(ctx, args...)
	if err != nil {
		entry.MarkFailed(err)
		recordHistory(entry)
		return err
	}

	entry.Removed = removed
	entry.MarkSuccess()
	recordHistory(entry)

	ui.PrintRemoved(removed)
	return nil
}
