package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"yumbridge/internal/history"
	"yumbridge/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show operation history",
	Long: `Display the journal of package operations performed by
yumbridge.

Examples:
  yumbridge history              # Show recent history
  yumbridge history -l 20        # Show last 20 operations
  yumbridge history clear        # Drop the journal`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all history entries",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "number of entries to show")
	historyCmd.AddCommand(historyClearCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		ui.MutedMsg("No history entries found")
		return nil
	}

	ui.HeaderMsg("Operation History")

	for i, entry := range entries {
		status := ui.Green("success")
		if !entry.Success {
			status = ui.Red("failed")
		}

		fmt.Printf("%2d. %s %s %s%s (%s)\n",
			i+1,
			ui.Muted.Sprint(entry.FormatTime()),
			ui.Bold(string(entry.Operation)),
			formatTargets(entry.Targets),
			formatEffect(&entry),
			status,
		)

		if entry.Error != "" {
			ui.MutedMsg("    Error: %s", entry.Error)
		}
	}

	total, _ := store.Count()
	ui.MutedMsg("\nShowing %d of %d total entries", len(entries), total)

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	ui.SuccessMsg("History cleared")
	return nil
}

// formatTargets formats a target list for display.
func formatTargets(targets []string) string {
	if len(targets) == 0 {
		return ""
	}
	if len(targets) <= 3 {
		return strings.Join(targets, " ")
	}
	return fmt.Sprintf("%s (+%d more)", targets[0], len(targets)-1)
}

// formatEffect summarizes what an operation changed.
func formatEffect(entry *history.Entry) string {
	switch {
	case len(entry.Changes) > 0:
		return ui.Cyan(fmt.Sprintf(" [%d changed]", len(entry.Changes)))
	case len(entry.Removed) > 0:
		return ui.Cyan(fmt.Sprintf(" [%d removed]", len(entry.Removed)))
	}
	return ""
}

// recordHistory journals a completed operation. Journal failures are
// logged, never surfaced: the operation itself already happened.
func recordHistory(entry *history.Entry) {
	if cfg == nil || !cfg.History.Enabled || cfg.General.DryRun {
		return
	}

	store, err := history.Open()
	if err != nil {
		log.WithError(err).Debug("could not open history database")
		return
	}
	defer store.Close()

	if err := store.Record(entry); err != nil {
		log.WithError(err).Debug("could not record history entry")
		return
	}

	if _, err := store.Prune(cfg.History.Keep); err != nil {
		log.WithError(err).Debug("could not prune history")
	}
}
