package executor

import (
	"os"
	"os/exec"
)

func isRoot() bool {
	return os.Geteuid() == 0
}

func hasSudo() bool {
	_, err := exec.LookPath("sudo")
	return err == nil
}

// IsRoot reports whether the process runs as root.
func IsRoot() bool {
	return isRoot()
}

// CanElevate reports whether the process can obtain root, either by
// already being root or through sudo.
func CanElevate() bool {
	return isRoot() || hasSudo()
}

type errNoPrivileges struct{}

func (errNoPrivileges) Error() string {
	return "root privileges required, and sudo is not available"
}

// ErrNoPrivileges is returned when a mutating operation needs root and
// the process has no way to escalate.
var ErrNoPrivileges = errNoPrivileges{}
