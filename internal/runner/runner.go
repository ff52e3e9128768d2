// Package runner abstracts execution of the external tools the pipeline
// shells out to (formatter, notebook converter, linters, docs builder, git),
// so everything above it can be tested without spawning processes.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/samber/oops"
)

// Runner executes an external command described by argv.
type Runner interface {
	// Run space-expands each argv element before execution, so callers can
	// pass compact command strings like "mkdocs build --clean".
	Run(ctx context.Context, argv ...string) error
	// RunExact executes argv verbatim, for arguments that must keep their
	// spaces (commit messages).
	RunExact(ctx context.Context, argv ...string) error
}

// ExpandArgs splits every argv element on whitespace and flattens the result.
func ExpandArgs(argv []string) []string {
	expanded := make([]string, 0, len(argv))
	for _, arg := range argv {
		expanded = append(expanded, strings.Fields(arg)...)
	}

	return expanded
}

// Exec is the real Runner. It echoes each command line before running it and
// inherits the process's stdio, so tool output streams through.
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExec returns an Exec wired to the process's stdout and stderr.
func NewExec() *Exec {
	return &Exec{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e *Exec) Run(ctx context.Context, argv ...string) error {
	return e.execute(ctx, ExpandArgs(argv))
}

func (e *Exec) RunExact(ctx context.Context, argv ...string) error {
	return e.execute(ctx, argv)
}

// execute runs argv, folding captured stderr into the returned error so
// failures carry the tool's own message.
func (e *Exec) execute(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return oops.
			Code("COMMAND_FAILED").
			Errorf("empty command")
	}

	fmt.Fprintf(e.Stdout, "\n%s\n", strings.Join(argv, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = io.MultiWriter(e.Stderr, &stderr)

	if err := cmd.Run(); err != nil {
		errBuilder := oops.
			Code("COMMAND_FAILED").
			With("command", strings.Join(argv, " "))

		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return errBuilder.Wrapf(err, "%s failed: %s", argv[0], msg)
		}

		return errBuilder.Wrapf(err, "running %s", argv[0])
	}

	return nil
}

// Recorder is a Runner for tests: it records every executed argv (after
// expansion where Run is used) and returns the queued errors in order.
type Recorder struct {
	Calls [][]string
	Errs  []error
}

func (r *Recorder) Run(_ context.Context, argv ...string) error {
	return r.record(ExpandArgs(argv))
}

func (r *Recorder) RunExact(_ context.Context, argv ...string) error {
	return r.record(argv)
}

func (r *Recorder) record(argv []string) error {
	r.Calls = append(r.Calls, argv)
	if len(r.Errs) == 0 {
		return nil
	}

	err := r.Errs[0]
	r.Errs = r.Errs[1:]

	return err
}
