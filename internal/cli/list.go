package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"yumbridge/internal/ui"
	"yumbridge/pkg/pkgstate"
)

var listPattern string

var listCmd = &cobra.Command{
	Use:   "list [packages...]",
	Short: "List installed packages",
	Long: `List the installed package set from the rpm database. With
package names as arguments, only those packages are shown; a name that
is not installed renders with a dash.

Examples:
  yumbridge list                # All installed packages
  yumbridge list vim bash       # Installed versions of vim and bash
  yumbridge list -p kernel      # Packages whose name contains 'kernel'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listPattern, "pattern", "p", "", "filter by name substring")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) > 0 {
		versions, err := mgr.Versions(ctx, args...)
		if err != nil {
			return err
		}
		ui.PrintVersionMap(versions)
		return nil
	}

	snap, err := mgr.Installed(ctx)
	if err != nil {
		return err
	}

	if listPattern != "" {
		filtered := pkgstate.New()
		for name, versions := range snap {
			if strings.Contains(name, listPattern) {
				filtered[name] = versions
			}
		}
		snap = filtered
	}

	ui.PrintInstalled(snap, cfg.Output.VersionsAsList)
	ui.MutedMsg("\nTotal: %d packages", len(snap))
	return nil
}
