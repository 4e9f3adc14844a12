// Package pkgstate models point-in-time sets of installed packages and
// the observable differences between them. Snapshots are built by querying
// the system package database before and after a mutating operation; they
// are never persisted and never mutated once a diff has been taken.
package pkgstate

import (
	"sort"
	"strings"
)

// Snapshot maps a package name to its installed version strings.
// A name normally carries a single version, but multi-version installs
// (kernel packages, 32-bit compat packages keyed with an arch suffix)
// accumulate in order of discovery.
type Snapshot map[string][]string

// New returns an empty snapshot.
func New() Snapshot {
	return make(Snapshot)
}

// Add records a version for a package, appending when the name already
// holds one or more versions.
func (s Snapshot) Add(name, version string) {
	s[name] = append(s[name], version)
}

// Has reports whether the snapshot contains the given package name.
func (s Snapshot) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Version returns the display version for a package: the sole version,
// or all installed versions joined with commas. Empty string when the
// package is not present.
func (s Snapshot) Version(name string) string {
	return strings.Join(s[name], ",")
}

// Versions returns the ordered version list for a package, or nil.
func (s Snapshot) Versions(name string) []string {
	return s[name]
}

// Names returns all package names in sorted order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortVersions sorts each package's version list lexically. Called once
// after a snapshot is fully populated so repeated queries produce
// identical display strings.
func (s Snapshot) SortVersions() {
	for _, versions := range s {
		sort.Strings(versions)
	}
}

// Flatten collapses the snapshot into a name -> display-version map,
// joining multi-version entries the same way Version does.
func (s Snapshot) Flatten() map[string]string {
	flat := make(map[string]string, len(s))
	for name := range s {
		flat[name] = s.Version(name)
	}
	return flat
}
