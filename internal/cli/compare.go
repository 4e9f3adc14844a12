package cli

import (
	"github.com/spf13/cobra"

	"yumbridge/internal/ui"
	"yumbridge/pkg/rpmver"
)

var compareCmd = &cobra.Command{
	Use:   "compare <version> [operator] <version>",
	Short: "Compare two rpm version strings",
	Long: `Compare two version strings under rpm ordering rules, including
epochs ("1:2.0-1") and tilde pre-releases ("1.0~rc1-1").

With two arguments the ordering is printed. With an operator between
them the command prints true or false.

Examples:
  yumbridge compare 1:1.0-1 2.0-1
  yumbridge compare 4.1.2-15.el6 '>=' 4.1.2-9.el6`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	if len(args) == 3 {
		ok, err := rpmver.Satisfies(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if ok {
			ui.SuccessMsg("%s %s %s is true", args[0], args[1], args[2])
		} else {
			ui.ErrorMsg("%s %s %s is false", args[0], args[1], args[2])
		}
		return nil
	}

	cmp, err := rpmver.Compare(args[0], args[1])
	if err != nil {
		return err
	}

	switch {
	case cmp < 0:
		ui.Println("%s < %s", args[0], args[1])
	case cmp > 0:
		ui.Println("%s > %s", args[0], args[1])
	default:
		ui.Println("%s == %s", args[0], args[1])
	}
	return nil
}
