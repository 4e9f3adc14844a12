package yum

import "strings"

// RepoOptions scope which repositories yum consults for an operation.
type RepoOptions struct {
	// FromRepo restricts the operation to a single repository: all
	// repositories are disabled and only the named one enabled.
	FromRepo string

	// Repo is the legacy spelling of FromRepo; it applies only when
	// FromRepo is unset.
	Repo string

	// EnableRepo enables an otherwise disabled repository. Ignored when
	// FromRepo/Repo is set.
	EnableRepo string

	// DisableRepo disables an otherwise enabled repository. Ignored when
	// FromRepo/Repo is set.
	DisableRepo string
}

// fromRepo resolves the FromRepo/Repo precedence.
func (o RepoOptions) fromRepo() string {
	if o.FromRepo != "" {
		return o.FromRepo
	}
	return o.Repo
}

// repoArgs turns repo options into yum arguments. A from-repo
// restriction synthesizes a disable-everything plus enable-one pair and
// wins over the independent enable/disable flags; otherwise disable
// precedes enable. Malformed combinations are passed through untouched,
// yum is the authority on validity.
func (m *Manager) repoArgs(opts RepoOptions) []string {
	if from := opts.fromRepo(); from != "" {
		m.log.WithField("repo", from).Info("restricting operation to repo")
		return []string{"--disablerepo=*", "--enablerepo=" + from}
	}

	var args []string
	if opts.DisableRepo != "" {
		m.log.WithField("repo", opts.DisableRepo).Info("disabling repo")
		args = append(args, "--disablerepo="+opts.DisableRepo)
	}
	if opts.EnableRepo != "" {
		m.log.WithField("repo", opts.EnableRepo).Info("enabling repo")
		args = append(args, "--enablerepo="+opts.EnableRepo)
	}
	return args
}

// pinnedSpec renders a name+version target as the "name-version" string
// yum expects. On x86_64 hosts a ".i686" suffix names the 32-bit compat
// package; the suffix cannot sit between name and version in a pinned
// spec, so it is stripped from the name and re-attached after the
// version.
func (m *Manager) pinnedSpec(name, version string) string {
	arch := ""
	if m.facts.IsX86_64() && strings.HasSuffix(name, ".i686") {
		name = strings.TrimSuffix(name, ".i686")
		arch = ".i686"
	}
	return name + "-" + version + arch
}

// installArgs assembles the argument vector for an install or downgrade
// invocation: -y <repo args> [--nogpgcheck] <subcommand> <specs...>.
func installArgs(subcommand string, repoArgs []string, skipVerify bool, specs []string) []string {
	args := append([]string{"-y"}, repoArgs...)
	if skipVerify {
		args = append(args, "--nogpgcheck")
	}
	args = append(args, subcommand)
	return append(args, specs...)
}

// listArgs assembles the argument vector for a quiet listing query.
func listArgs(repoArgs []string, subcommand string, names []string) []string {
	args := append([]string{"-q"}, repoArgs...)
	args = append(args, strings.Fields(subcommand)...)
	return append(args, names...)
}
