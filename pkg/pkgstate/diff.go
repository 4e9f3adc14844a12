package pkgstate

import "sort"

// Change records the before/after display versions of a single package.
// An empty Old means the package was freshly installed.
type Change struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ChangeSet maps package names to their version changes.
type ChangeSet map[string]Change

// IsEmpty reports whether the change set contains no changes.
func (c ChangeSet) IsEmpty() bool {
	return len(c) == 0
}

// Names returns the changed package names in sorted order.
func (c ChangeSet) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Changes compares two snapshots and reports, for every package present
// in after: nothing when the version is unchanged, {old, new} when the
// version differs, and {"", new} when the package is new. Packages
// present only in before are deliberately not reported here; removals
// are the province of Removed. Install and upgrade operations report
// additions and version changes, remove operations report removals, and
// the two views never mix.
func Changes(before, after Snapshot) ChangeSet {
	changes := make(ChangeSet)
	for name := range after {
		newVersion := after.Version(name)
		if !before.Has(name) {
			changes[name] = Change{Old: "", New: newVersion}
			continue
		}
		oldVersion := before.Version(name)
		if oldVersion != newVersion {
			changes[name] = Change{Old: oldVersion, New: newVersion}
		}
	}
	return changes
}

// Removed returns the names present in before whose key is absent from
// after, in sorted order.
func Removed(before, after Snapshot) []string {
	var removed []string
	for name := range before {
		if !after.Has(name) {
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	return removed
}
