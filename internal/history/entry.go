// Package history journals package operations in BoltDB.
package history

import (
	"fmt"
	"strings"
	"time"

	"yumbridge/pkg/pkgstate"
)

// Operation represents the type of package operation.
type Operation string

const (
	OpInstall Operation = "install"
	OpRemove  Operation = "remove"
	OpUpgrade Operation = "upgrade"
	OpRefresh Operation = "refresh"
)

// Entry represents a single operation in the journal. Mutating
// operations carry the observed effect: the change set for installs and
// upgrades, the removed names for removals.
type Entry struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Operation Operation          `json:"operation"`
	Targets   []string           `json:"targets,omitempty"`
	Changes   pkgstate.ChangeSet `json:"changes,omitempty"`
	Removed   []string           `json:"removed,omitempty"`
	Success   bool               `json:"success"`
	Error     string             `json:"error,omitempty"`
}

// NewEntry creates a journal entry for an operation about to run.
func NewEntry(op Operation, targets []string) *Entry {
	return &Entry{
		ID:        generateID(),
		Timestamp: time.Now(),
		Operation: op,
		Targets:   targets,
	}
}

// MarkSuccess marks the entry as successful.
func (e *Entry) MarkSuccess() {
	e.Success = true
}

// MarkFailed marks the entry as failed with an error message.
func (e *Entry) MarkFailed(err error) {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
}

func generateID() string {
	return time.Now().Format("20060102150405.000000")
}

// FormatTime returns a human-readable timestamp.
func (e *Entry) FormatTime() string {
	return e.Timestamp.Format("2006-01-02 15:04:05")
}

// Summary returns a brief summary of the operation.
func (e *Entry) Summary() string {
	status := "success"
	if !e.Success {
		status = "failed"
	}

	effect := ""
	switch {
	case len(e.Changes) > 0:
		effect = fmt.Sprintf(" %d changed", len(e.Changes))
	case len(e.Removed) > 0:
		effect = fmt.Sprintf(" %d removed", len(e.Removed))
	}

	targets := ""
	if len(e.Targets) > 0 {
		targets = " " + strings.Join(e.Targets, " ")
	}

	return e.FormatTime() + " " + string(e.Operation) + targets + effect + " (" + status + ")"
}
