package yum

import (
	"context"
	"fmt"
	"strings"

	"yumbridge/pkg/pkgstate"
)

// rpmFieldSep is an unambiguous delimiter for rpm query output; it
// cannot occur in package names, versions or architecture strings.
const rpmFieldSep = "_|-"

// rpmQueryFormat emits one name/version/release/arch record per
// installed package.
const rpmQueryFormat = "%{NAME}" + rpmFieldSep + "%{VERSION}" + rpmFieldSep +
	"%{RELEASE}" + rpmFieldSep + "%{ARCH}\n"

// Installed snapshots the full installed-package set from the rpm
// database. On x86_64 hosts, i686 records are keyed "name.i686" so the
// 32-bit compatibility package never collides with its native 64-bit
// counterpart. Records that do not split into exactly four fields are
// skipped; with the fixed query format that should never trigger, but a
// damaged database must not take the whole snapshot down.
func (m *Manager) Installed(ctx context.Context) (pkgstate.Snapshot, error) {
	out, err := m.rpm.Output(ctx, rpmBinary, "-qa", "--queryformat", rpmQueryFormat)
	if err != nil {
		return nil, fmt.Errorf("querying rpm database: %w", err)
	}

	snap := pkgstate.New()
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(line, rpmFieldSep)
		if len(fields) != 4 {
			continue
		}
		name, version, release, arch := fields[0], fields[1], fields[2], fields[3]

		if m.facts.IsX86_64() && arch == "i686" {
			name += ".i686"
		}
		if release != "" {
			version += "-" + release
		}
		snap.Add(name, version)
	}
	snap.SortVersions()
	return snap, nil
}

// Versions reports the installed display version for each requested
// name; names that are not installed map to the empty string. A single
// name can be answered more cheaply via VersionOf.
func (m *Manager) Versions(ctx context.Context, names ...string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	snap, err := m.Installed(ctx)
	if err != nil {
		return nil, err
	}

	versions := make(map[string]string, len(names))
	for _, name := range names {
		versions[name] = snap.Version(name)
	}
	return versions, nil
}

// VersionOf returns the installed display version of a single package,
// or the empty string when it is not installed.
func (m *Manager) VersionOf(ctx context.Context, name string) (string, error) {
	versions, err := m.Versions(ctx, name)
	if err != nil {
		return "", err
	}
	return versions[name], nil
}
