// Package yum adapts the yum package tool and the rpm database for a
// configuration-management agent. It composes tool command lines, parses
// the tool's textual output, snapshots the installed-package set around
// mutating operations, and reports the observed effect as a change set.
//
// The package never talks to the system directly: a command runner for
// the tool, a query runner for the rpm database, and the host facts are
// all injected at construction.
package yum

import (
	"context"

	"github.com/sirupsen/logrus"

	"yumbridge/pkg/hostfacts"
)

const (
	yumBinary = "yum"
	rpmBinary = "rpm"
)

// Runner executes a command and captures what the adapter needs from it.
// Output is used for read-only queries; RunSudo for mutating operations
// that require root. Implementations block until the command completes.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
	RunSudo(ctx context.Context, name string, args ...string) error
}

// Manager orchestrates yum operations. Each method call is
// self-contained: it snapshots, runs the tool, snapshots again and diffs.
// No state is carried between calls, so a Manager may be reused freely;
// concurrent mutations are arbitrated by yum's own locking, not here.
type Manager struct {
	yum   Runner
	rpm   Runner
	facts hostfacts.Facts
	log   logrus.FieldLogger
}

// New builds a Manager around the given tool runner, rpm query runner
// and host facts.
func New(yumRunner, rpmRunner Runner, facts hostfacts.Facts) *Manager {
	return &Manager{
		yum:   yumRunner,
		rpm:   rpmRunner,
		facts: facts,
		log:   logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger used for observability events.
func (m *Manager) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		m.log = log
	}
}
