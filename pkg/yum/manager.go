package yum

import (
	"context"

	"yumbridge/pkg/pkgstate"
	"yumbridge/pkg/rpmver"
)

// Target names one package to install, optionally pinned to a version.
// An empty Version accepts whatever yum resolves.
type Target struct {
	Name    string
	Version string
}

// InstallOptions carries everything an install call can specify. Exactly
// one of Name, Pkgs or Sources selects the targets; Sources wins over
// Pkgs, Pkgs over Name.
type InstallOptions struct {
	// Name is a single repository package. A ".i686" suffix on x86_64
	// hosts addresses the 32-bit compatibility package.
	Name string

	// Version pins Name to a specific version. Ignored, with a warning,
	// when Pkgs or Sources supply multiple targets.
	Version string

	// Pkgs lists repository packages, each optionally version-pinned.
	Pkgs []Target

	// Sources lists rpm files (paths or URLs) to install directly,
	// bypassing repository resolution.
	Sources []string

	// Refresh cleans the yum cache before the operation.
	Refresh bool

	// SkipVerify disables the GPG signature check (--nogpgcheck).
	SkipVerify bool

	// Repos scope which repositories the operation consults.
	Repos RepoOptions
}

// targetKind distinguishes repository targets, which are version-checked
// and bucketed, from source files, which are handed to yum verbatim.
type targetKind int

const (
	kindRepository targetKind = iota
	kindFile
)

// resolveTargets applies the Name/Pkgs/Sources precedence and the
// single-target version fold. A version pin alongside multiple targets
// is accepted but ignored; that gets a warning, not a failure.
func (m *Manager) resolveTargets(opts InstallOptions) ([]Target, targetKind) {
	switch {
	case len(opts.Sources) > 0:
		if opts.Version != "" {
			m.log.Warn("version pin ignored for source file targets")
		}
		targets := make([]Target, 0, len(opts.Sources))
		for _, src := range opts.Sources {
			targets = append(targets, Target{Name: src})
		}
		return targets, kindFile

	case len(opts.Pkgs) > 0:
		if opts.Version != "" {
			m.log.Warn("version pin ignored for multiple package targets")
		}
		return opts.Pkgs, kindRepository

	case opts.Name != "":
		return []Target{{Name: opts.Name, Version: opts.Version}}, kindRepository

	default:
		return nil, kindRepository
	}
}

// Install installs the requested targets and reports the resulting
// change set. Version-pinned repository targets are partitioned against
// the pre-operation snapshot: a pin at or above the installed version
// goes to the install bucket, a pin below it to the downgrade bucket,
// and each non-empty bucket is one tool invocation. The tool's exit
// status is not interpreted; a failed invocation surfaces as an empty
// diff.
func (m *Manager) Install(ctx context.Context, opts InstallOptions) (pkgstate.ChangeSet, error) {
	targets, kind := m.resolveTargets(opts)
	if len(targets) == 0 {
		return pkgstate.ChangeSet{}, nil
	}

	if opts.Refresh {
		m.Refresh(ctx)
	}

	repoArgs := m.repoArgs(opts.Repos)

	before, err := m.Installed(ctx)
	if err != nil {
		return nil, err
	}

	var install, downgrade []string
	if kind == kindFile {
		for _, t := range targets {
			install = append(install, t.Name)
		}
	} else {
		for _, t := range targets {
			if t.Version == "" {
				install = append(install, t.Name)
				continue
			}

			spec := m.pinnedSpec(t.Name, t.Version)
			current := before.Version(t.Name)
			if current == "" {
				install = append(install, spec)
				continue
			}

			atLeast, err := rpmver.Satisfies(t.Version, ">=", current)
			if err != nil {
				m.log.WithField("pkg", t.Name).WithError(err).
					Warn("could not order requested against installed version")
				install = append(install, spec)
				continue
			}
			if atLeast {
				install = append(install, spec)
			} else {
				downgrade = append(downgrade, spec)
			}
		}
	}

	if len(install) > 0 {
		m.runTool(ctx, installArgs("install", repoArgs, opts.SkipVerify, install))
	}
	if len(downgrade) > 0 {
		m.runTool(ctx, installArgs("downgrade", repoArgs, opts.SkipVerify, downgrade))
	}

	after, err := m.Installed(ctx)
	if err != nil {
		return nil, err
	}
	return pkgstate.Changes(before, after), nil
}

// Upgrade runs a blanket system upgrade and reports the change set,
// which covers version bumps and any dependencies the upgrade pulled in.
func (m *Manager) Upgrade(ctx context.Context, refresh bool) (pkgstate.ChangeSet, error) {
	if refresh {
		m.Refresh(ctx)
	}

	before, err := m.Installed(ctx)
	if err != nil {
		return nil, err
	}

	m.runTool(ctx, []string{"-q", "-y", "upgrade"})

	after, err := m.Installed(ctx)
	if err != nil {
		return nil, err
	}
	return pkgstate.Changes(before, after), nil
}

// Remove removes the named packages and reports which installed names
// disappeared. With no names it is a no-op returning an empty list.
func (m *Manager) Remove(ctx context.Context, names ...string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	before, err := m.Installed(ctx)
	if err != nil {
		return nil, err
	}

	m.runTool(ctx, append([]string{"-q", "-y", "remove"}, names...))

	after, err := m.Installed(ctx)
	if err != nil {
		return nil, err
	}
	return pkgstate.Removed(before, after), nil
}

// Purge is an alias for Remove; yum has no distinct purge semantics.
func (m *Manager) Purge(ctx context.Context, names ...string) ([]string, error) {
	return m.Remove(ctx, names...)
}

// ListUpgrades returns the packages with an upgrade pending, mapped to
// the available version. check-update exits non-zero when updates exist,
// so the exit status is deliberately not consulted.
func (m *Manager) ListUpgrades(ctx context.Context, refresh bool) (map[string]string, error) {
	if refresh {
		m.Refresh(ctx)
	}

	out, _ := m.yum.Output(ctx, yumBinary, "-q", "check-update")

	upgrades := make(map[string]string)
	for _, rec := range ParseListing(out) {
		upgrades[rec.Name] = rec.Version
	}
	return upgrades, nil
}

// LatestVersions returns the latest version available for upgrade or
// installation of each named package. A name whose latest version is
// already installed (or that no repository carries) maps to the empty
// string.
func (m *Manager) LatestVersions(ctx context.Context, repos RepoOptions, names ...string) (map[string]string, error) {
	latest := make(map[string]string, len(names))
	if len(names) == 0 {
		return latest, nil
	}
	for _, name := range names {
		latest[name] = ""
	}

	out, _ := m.yum.Output(ctx, yumBinary, listArgs(m.repoArgs(repos), "list available", names)...)
	for _, rec := range ParseListing(out) {
		latest[rec.Name] = rec.Version
	}
	return latest, nil
}

// LatestVersion is the single-name form of LatestVersions.
func (m *Manager) LatestVersion(ctx context.Context, name string) (string, error) {
	latest, err := m.LatestVersions(ctx, RepoOptions{}, name)
	if err != nil {
		return "", err
	}
	return latest[name], nil
}

// UpgradeAvailable reports whether the available listing has a row for
// the named package. Presence of a row is the whole signal; the
// available version is not additionally ordered against the installed
// one.
func (m *Manager) UpgradeAvailable(ctx context.Context, name string) (bool, error) {
	latest, err := m.LatestVersion(ctx, name)
	if err != nil {
		return false, err
	}
	return latest != "", nil
}

// Refresh cleans yum's cached database so the next operation starts from
// fresh metadata. yum re-populates the cache on demand, so this is a
// best-effort invalidation and always reports success.
func (m *Manager) Refresh(ctx context.Context) error {
	m.runTool(ctx, []string{"-q", "clean", "dbcache"})
	return nil
}

// runTool invokes yum with the assembled arguments. Exit status is
// logged, not returned: mutating operations report their effect through
// the before/after diff, and a failed invocation shows up as no change.
func (m *Manager) runTool(ctx context.Context, args []string) {
	m.log.WithField("args", args).Debug("invoking yum")
	if err := m.yum.RunSudo(ctx, yumBinary, args...); err != nil {
		m.log.WithError(err).Debug("yum invocation returned an error")
	}
}
