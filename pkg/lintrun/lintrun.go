// Package lintrun invokes an external linter on a single file and reports
// its exit status and output.
package lintrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

//go:generate mockgen -destination=mock/runner.go -package=mock github.com/dkoosis/lintgate/pkg/lintrun Runner

// DefaultArgs makes golint report findings through its exit status.
var DefaultArgs = []string{"-set_exit_status"}

// waitDelay bounds how long Wait blocks on output pipes after the linter is
// killed.
const waitDelay = time.Second

// ErrTimeout is returned when a single lint invocation exceeds its timeout.
var ErrTimeout = errors.New("lint timed out")

// ErrTerminated is returned when the linter is killed by a signal instead of
// exiting.
var ErrTerminated = errors.New("linter terminated by signal")

// Result is the outcome of linting one file.
type Result struct {
	File     string
	ExitCode int
	Output   string
}

// Passed reports whether the linter found no violations.
func (r Result) Passed() bool {
	return r.ExitCode == 0
}

// Runner lints a single file.
//
// A non-zero exit status is a Result, not an error. Errors are reserved for
// failures to run the linter at all.
type Runner interface {
	Lint(ctx context.Context, file string) (Result, error)
}

// Func adapts a plain function to the Runner interface.
type Func func(ctx context.Context, file string) (Result, error)

// Lint calls f.
func (f Func) Lint(ctx context.Context, file string) (Result, error) {
	return f(ctx, file)
}

// Exec runs the linter as a subprocess. The filename is always passed as a
// discrete argument; no shell is involved.
type Exec struct {
	Binary  string
	Args    []string
	Dir     string
	Timeout time.Duration
}

// Option configures an Exec runner.
type Option func(*Exec)

// WithArgs replaces the arguments placed before the filename.
func WithArgs(args ...string) Option {
	return func(e *Exec) {
		e.Args = append([]string(nil), args...)
	}
}

// WithDir sets the working directory of the linter process.
func WithDir(dir string) Option {
	return func(e *Exec) {
		e.Dir = dir
	}
}

// WithTimeout bounds each invocation. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Exec) {
		e.Timeout = d
	}
}

// New creates an Exec runner for binary with DefaultArgs.
func New(binary string, opts ...Option) *Exec {
	e := &Exec{
		Binary: binary,
		Args:   append([]string(nil), DefaultArgs...),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lint runs the linter on file and waits for it to exit.
func (e *Exec) Lint(ctx context.Context, file string) (Result, error) {
	if e.Binary == "" {
		return Result{}, errors.New("no linter binary configured")
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(e.Args)+1)
	args = append(args, e.Args...)
	args = append(args, file)

	cmd := exec.CommandContext(ctx, e.Binary, args...) //nolint:gosec // binary comes from gate config
	cmd.Dir = e.Dir
	cmd.WaitDelay = waitDelay

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	err := cmd.Run()
	res := Result{File: file, Output: strings.TrimRight(combined.String(), "\n")}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && e.Timeout > 0 {
			return res, fmt.Errorf("%s %s: %w after %s", e.Binary, file, ErrTimeout, e.Timeout)
		}
		return res, fmt.Errorf("%s %s: %w", e.Binary, file, ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ExitCode is -1 when a signal ended the process. That is a
			// crashed linter, not a report of violations.
			if exitErr.ExitCode() < 0 {
				return res, fmt.Errorf("%s %s: %w: %v", e.Binary, file, ErrTerminated, exitErr)
			}
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("run %s: %w", e.Binary, err)
	}

	return res, nil
}

// Recorder wraps a Runner and remembers every file it was asked to lint.
type Recorder struct {
	Runner Runner
	calls  []string
}

// Lint records file and delegates to the wrapped Runner.
func (r *Recorder) Lint(ctx context.Context, file string) (Result, error) {
	r.calls = append(r.calls, file)
	return r.Runner.Lint(ctx, file)
}

// Calls returns the linted files in invocation order.
func (r *Recorder) Calls() []string {
	return append([]string(nil), r.calls...)
}
