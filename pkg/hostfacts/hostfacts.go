// Package hostfacts gathers the environment facts the yum adapter needs:
// which distribution the host runs and what the CPU architecture is.
// The facts are plain data; callers decide what to do with them.
package hostfacts

import (
	"runtime"
	"strconv"
	"strings"
)

// Facts describes the host operating system and architecture.
type Facts struct {
	// ID is the distribution identifier from os-release (e.g. "centos",
	// "fedora", "rhel").
	ID string

	// Family lists related distributions from ID_LIKE (e.g. "rhel fedora").
	Family []string

	// VersionID is the distribution release (e.g. "6.5", "39").
	VersionID string

	// CPUArch is the machine architecture in uname -m form
	// (x86_64, i686, aarch64).
	CPUArch string
}

// MajorVersion returns the leading numeric component of VersionID,
// or 0 when it cannot be parsed.
func (f Facts) MajorVersion() int {
	head, _, _ := strings.Cut(f.VersionID, ".")
	major, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return major
}

// MatchesDistro reports whether the host matches any of the given
// distribution identifiers, either directly or through its family.
func (f Facts) MatchesDistro(distros ...string) bool {
	for _, d := range distros {
		if strings.EqualFold(f.ID, d) {
			return true
		}
		for _, fam := range f.Family {
			if strings.EqualFold(fam, d) {
				return true
			}
		}
	}
	return false
}

// IsX86_64 reports whether the host runs a 64-bit x86 userland. The
// 32-bit compatibility keying rule only applies on such hosts.
func (f Facts) IsX86_64() bool {
	return f.CPUArch == "x86_64"
}

// Applicable reports whether this adapter's tool generation manages the
// host: Fedora releases before 11, and Red Hat family releases up to 5,
// still ship the classic yum this adapter drives. Newer releases answer
// to a different provider. The predicate is pure; the host agent calls
// it once when selecting a package provider.
func Applicable(f Facts) bool {
	if strings.EqualFold(f.ID, "fedora") {
		return f.MajorVersion() < 11
	}
	if f.MatchesDistro("rhel", "centos", "redhat") {
		major := f.MajorVersion()
		return major > 0 && major <= 5
	}
	return false
}

// goarchToUname maps Go's architecture names onto uname -m output.
var goarchToUname = map[string]string{
	"amd64": "x86_64",
	"386":   "i686",
	"arm64": "aarch64",
	"arm":   "armv7l",
}

// cpuArch returns the host architecture in uname -m form.
func cpuArch() string {
	if arch, ok := goarchToUname[runtime.GOARCH]; ok {
		return arch
	}
	return runtime.GOARCH
}

// Detect reads the host's os-release data and architecture. A host
// without os-release yields Facts with an empty ID rather than an error;
// the adapter still works, only the applicability gate and the i686
// keying rule lose their inputs.
func Detect() Facts {
	facts := Facts{CPUArch: cpuArch()}

	release, err := parseOSRelease(osReleasePath)
	if err != nil {
		return facts
	}

	facts.ID = release["ID"]
	facts.Family = strings.Fields(release["ID_LIKE"])
	facts.VersionID = release["VERSION_ID"]
	return facts
}
