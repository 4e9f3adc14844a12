// Package executor runs external commands with optional privilege
// escalation. It is the only package that touches os/exec; everything
// above it works against the yum.Runner interface.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Executor executes commands, escalating with sudo when the caller asks
// for it and the process is not already root. Dry-run mode prints the
// command instead of running it.
type Executor struct {
	dryRun bool
	log    logrus.FieldLogger
}

// New creates an Executor.
func New(dryRun bool) *Executor {
	return &Executor{
		dryRun: dryRun,
		log:    logrus.StandardLogger(),
	}
}

// SetDryRun enables or disables dry-run mode.
func (e *Executor) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// SetLogger replaces the logger used for command tracing.
func (e *Executor) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		e.log = log
	}
}

// Run executes a command with the terminal attached.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	if e.dryRun {
		e.printDryRun(name, args)
		return nil
	}

	e.log.WithField("cmd", commandLine(name, args)).Debug("executing")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// RunSudo executes a command as root, prefixing sudo when the process
// is not already root. The terminal stays attached so sudo can prompt
// for a password and the tool's progress output remains visible.
func (e *Executor) RunSudo(ctx context.Context, name string, args ...string) error {
	if e.dryRun {
		e.printDryRunSudo(name, args)
		return nil
	}

	cmd, err := e.elevated(ctx, name, args)
	if err != nil {
		return err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output runs a command and returns its stdout. Stderr passes through
// to the terminal.
func (e *Executor) Output(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	e.log.WithField("cmd", commandLine(name, args)).Debug("executing")

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	return stdout.String(), err
}

// OutputQuiet runs a command and returns its stdout, discarding stderr.
func (e *Executor) OutputQuiet(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	e.log.WithField("cmd", commandLine(name, args)).Debug("executing")

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	return stdout.String(), err
}

// elevated builds the command with whatever escalation the process
// needs: none when already root, sudo otherwise.
func (e *Executor) elevated(ctx context.Context, name string, args []string) (*exec.Cmd, error) {
	switch {
	case isRoot():
		e.log.WithField("cmd", commandLine(name, args)).Debug("executing as root")
		return exec.CommandContext(ctx, name, args...), nil
	case hasSudo():
		e.log.WithField("cmd", commandLine(name, args)).Debug("executing with sudo")
		return exec.CommandContext(ctx, "sudo", append([]string{name}, args...)...), nil
	default:
		return nil, ErrNoPrivileges
	}
}

func (e *Executor) printDryRun(name string, args []string) {
	fmt.Printf("[dry-run] would execute: %s\n", commandLine(name, args))
}

func (e *Executor) printDryRunSudo(name string, args []string) {
	if isRoot() {
		fmt.Printf("[dry-run] would execute (as root): %s\n", commandLine(name, args))
	} else {
		fmt.Printf("[dry-run] would execute (with sudo): sudo %s\n", commandLine(name, args))
	}
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
