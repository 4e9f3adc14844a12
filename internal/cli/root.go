// Package cli implements the command-line interface for yumbridge.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"yumbridge/internal/config"
	"yumbridge/internal/executor"
	"yumbridge/internal/ui"
	"yumbridge/pkg/hostfacts"
	"yumbridge/pkg/yum"
)

var (
	// Global flags
	cfgFile string
	dryRun  bool
	yes     bool
	verbose bool
	noColor bool

	// Global state
	cfg   *config.Config
	exe   *executor.Executor
	facts hostfacts.Facts
	mgr   *yum.Manager
	log   = logrus.StandardLogger()
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "yumbridge",
	Short: "yum and rpm adapter for RPM-based hosts",
	Long: `Yumbridge drives yum and the rpm database on classic RPM-based
hosts. Mutating operations snapshot the installed set before and after
the tool runs, so the reported changes reflect what actually happened
rather than what the tool claimed.

Examples:
  yumbridge install vim git           # Install packages
  yumbridge install bash --version 4.1.2-15.el6
  yumbridge upgrade --refresh         # Refresh metadata, then upgrade
  yumbridge upgrades                  # List pending upgrades
  yumbridge latest vim --from-repo epel`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without executing")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(upgradesCmd)
	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.ErrorMsg("%v", err)
	}
	return err
}

// initializeApp sets up the application state.
func initializeApp() error {
	// Load configuration
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	// Initialize UI and logging
	ui.Init(cfg.ShouldUseColor())

	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.Output.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	exe = executor.New(cfg.General.DryRun)

	facts = hostfacts.Detect()
	if !hostfacts.Applicable(facts) {
		log.WithFields(logrus.Fields{
			"distro":  facts.ID,
			"version": facts.VersionID,
		}).Warn("host does not look like a classic yum distribution")
	}

	mgr = yum.New(exe, exe, facts)
	return nil
}

// Repo scoping flags, shared by the commands that talk to repositories.
var (
	flagFromRepo    string
	flagRepo        string
	flagEnableRepo  string
	flagDisableRepo string
)

func addRepoFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFromRepo, "from-repo", "", "restrict the operation to a single repository")
	cmd.Flags().StringVar(&flagRepo, "repo", "", "alias for --from-repo")
	cmd.Flags().StringVar(&flagEnableRepo, "enable-repo", "", "enable an otherwise disabled repository")
	cmd.Flags().StringVar(&flagDisableRepo, "disable-repo", "", "disable an otherwise enabled repository")
}

// repoOptions merges repo flags with configured defaults. Flags win.
func repoOptions() yum.RepoOptions {
	opts := yum.RepoOptions{
		FromRepo:    flagFromRepo,
		Repo:        flagRepo,
		EnableRepo:  flagEnableRepo,
		DisableRepo: flagDisableRepo,
	}
	if opts.FromRepo == "" && opts.Repo == "" {
		opts.FromRepo = cfg.Yum.FromRepo
	}
	if opts.EnableRepo == "" {
		opts.EnableRepo = cfg.Yum.EnableRepo
	}
	if opts.DisableRepo == "" {
		opts.DisableRepo = cfg.Yum.DisableRepo
	}
	return opts
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print yumbridge version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("yumbridge version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
