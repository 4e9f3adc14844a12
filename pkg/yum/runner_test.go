package yum

import (
	"context"
	"strings"
)

// fakeRunner scripts command output and records invocations. Output
// responses are consumed FIFO per command line, so a test can hand
// different snapshots to the before and after rpm queries.
type fakeRunner struct {
	outputs map[string][]string
	errs    map[string]error
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: make(map[string][]string),
		errs:    make(map[string]error),
	}
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// script queues an output for the given command line.
func (f *fakeRunner) script(cmdline, out string) {
	f.outputs[cmdline] = append(f.outputs[cmdline], out)
}

func (f *fakeRunner) fail(cmdline string, err error) {
	f.errs[cmdline] = err
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	cmdline := commandLine(name, args)
	f.calls = append(f.calls, cmdline)

	var out string
	if queue := f.outputs[cmdline]; len(queue) > 0 {
		out = queue[0]
		f.outputs[cmdline] = queue[1:]
	}
	return out, f.errs[cmdline]
}

func (f *fakeRunner) RunSudo(_ context.Context, name string, args ...string) error {
	cmdline := commandLine(name, args)
	f.calls = append(f.calls, cmdline)
	return f.errs[cmdline]
}

const rpmQueryCmd = "rpm -qa --queryformat " + rpmQueryFormat

// rpmLine renders one rpm query record.
func rpmLine(name, version, release, arch string) string {
	return name + rpmFieldSep + version + rpmFieldSep + release + rpmFieldSep + arch + "\n"
}
