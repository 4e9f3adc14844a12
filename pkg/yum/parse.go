package yum

import "strings"

// pluginNoticePrefix marks the cosmetic plugin chatter yum prints before
// its listings ("Loaded plugins: fastestmirror, ...").
const pluginNoticePrefix = "Loaded plugin"

// PackageRecord is one parsed line of yum listing output. Version and
// Status are opaque tool-defined strings; Name has the architecture tag
// stripped.
type PackageRecord struct {
	Name    string
	Version string
	Status  string
}

// ParseListing extracts package records from yum's plain-text listing
// output. The format is not machine-readable, so the parse is lenient by
// contract: plugin notices are dropped, and only lines that split into
// exactly three whitespace-separated tokens (name.arch, version, status)
// are accepted. Headers, blank lines and wrapped long lines all fail the
// token count and are skipped without error; partial results beat a
// failed operation. Tightening this grammar would change behavior
// against real tool output.
func ParseListing(out string) []PackageRecord {
	var records []PackageRecord
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, pluginNoticePrefix) {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) != 3 {
			continue
		}
		records = append(records, PackageRecord{
			Name:    stripArch(tokens[0]),
			Version: tokens[1],
			Status:  tokens[2],
		})
	}
	return records
}

// stripArch removes the trailing dot-delimited architecture tag from a
// "name.arch" token. A token without a dot is already a bare name.
func stripArch(nameArch string) string {
	idx := strings.LastIndex(nameArch, ".")
	if idx < 0 {
		return nameArch
	}
	return nameArch[:idx]
}
