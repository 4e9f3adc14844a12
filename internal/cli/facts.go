package cli

import (
	"github.com/spf13/cobra"

	"yumbridge/internal/ui"
	"yumbridge/pkg/hostfacts"
)

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Show the detected host facts",
	Long: `Show the distribution, version and CPU architecture detected
for this host, and whether the host looks like a classic yum
distribution.`,
	RunE: runFacts,
}

func runFacts(cmd *cobra.Command, args []string) error {
	ui.PrintFacts(facts)

	if hostfacts.Applicable(facts) {
		ui.SuccessMsg("Host is a classic yum distribution")
	} else {
		ui.WarningMsg("Host does not look like a classic yum distribution")
	}
	return nil
}
