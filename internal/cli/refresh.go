package cli

import (
	"context"

	"github.com/spf13/cobra"

	"yumbridge/internal/ui"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Clean cached repository metadata",
	Long: `Drop the tool's cached repository database. The cache is
re-populated on demand by the next operation.`,
	RunE: runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	return ui.WithSpinner("Cleaning cached metadata", func() error {
		return mgr.Refresh(ctx)
	})
}
