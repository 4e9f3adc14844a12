package cli

import (
	"context"

	"github.com/spf13/cobra"

	"yumbridge/internal/history"
	"yumbridge/internal/ui"
	"yumbridge/pkg/yum"
)

var (
	installVersion    string
	installRefresh    bool
	installSkipVerify bool
	installRPMs       []string
)

var installCmd = &cobra.Command{
	Use:   "install [packages...]",
	Short: "Install packages or local rpm files",
	Long: `Install packages from the configured repositories, or rpm files
directly with --rpm.

A single package can be pinned to a version with --version. If the
pinned version is older than the installed one, the tool is asked to
downgrade instead of install. On x86_64 hosts a ".i686" suffix selects
the 32-bit compatibility package.

Examples:
  yumbridge install vim git curl
  yumbridge install bash --version 4.1.2-15.el6
  yumbridge install glibc.i686
  yumbridge install --rpm /tmp/foo-1.0-1.x86_64.rpm
  yumbridge install vim --from-repo epel-testing --skip-verify`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installVersion, "version", "", "pin a single package to a version")
	installCmd.Flags().BoolVar(&installRefresh, "refresh", false, "clean cached metadata first")
	installCmd.Flags().BoolVar(&installSkipVerify, "skip-verify", false, "skip GPG signature verification")
	installCmd.Flags().StringArrayVar(&installRPMs, "rpm", nil, "install an rpm file (path or URL) directly")
	addRepoFlags(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(installRPMs) == 0 {
		return ErrNoPackages
	}

	ctx := context.Background()

	opts := yum.InstallOptions{
		Version:    installVersion,
		Sources:    installRPMs,
		Refresh:    installRefresh || cfg.General.Refresh,
		SkipVerify: installSkipVerify || cfg.Yum.SkipGPGCheck,
		Repos:      repoOptions(),
	}
	switch len(args) {
	case 0:
	case 1:
		opts.Name = args[0]
	default:
		targets := make([]yum.Target, 0, len(args))
		for _, name := range args {
			targets = append(targets, yum.Target{Name: name})
		}
		opts.Pkgs = targets
	}

	targets := append(append([]string{}, args...), installRPMs...)
	ui.InfoMsg("Installing %d target(s)", len(targets))
	for _, t := range targets {
		ui.MutedMsg("  - %s", t)
	}

	if !cfg.General.AutoConfirm && !cfg.General.DryRun {
		confirmed, err := ui.Confirm("Proceed with installation?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	entry := history.NewEntry(history.OpInstall, targets)

	changes, err := mgr.Install(ctx, opts)
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
