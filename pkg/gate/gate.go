// Package gate keeps a directory lint-clean while tolerating a tracked list
// of known-dirty files.
//
// Two lists drive it. Clean files are expected to pass the linter; dirty
// files are known to fail and are exempt from gating until fixed. The lists
// must be disjoint, and every dirty file must still fail, so that a fixed
// file cannot keep its exemption. After both checks pass, every directory
// entry outside the dirty list is linted and the first failure ends the run.
package gate

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dkoosis/lintgate/pkg/lintrun"
)

// State is a step of a Checker run.
type State int

// States in the order a successful run passes through them.
const (
	StateInit State = iota
	StateValidatedConfig
	StateScanning
	StatePassed
	StateFailed
)

// String returns the lower-case state name used in logs.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateValidatedConfig:
		return "validated-config"
	case StateScanning:
		return "scanning"
	case StatePassed:
		return "passed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ValidateNoOverlap fails with *DuplicateEntriesError when a file is in both
// sets.
func ValidateNoOverlap(clean, dirty FileSet) error {
	if common := clean.Intersect(dirty); len(common) > 0 {
		return &DuplicateEntriesError{Files: common}
	}
	return nil
}

// ValidateDirtyStillFails lints each dirty file in sorted order and fails
// with *StaleExemptionError on the first one that passes.
func ValidateDirtyStillFails(ctx context.Context, dirty FileSet, runner lintrun.Runner) error {
	for _, file := range dirty.Names() {
		res, err := runner.Lint(ctx, file)
		if err != nil {
			return fmt.Errorf("lint dirty file %s: %w", file, err)
		}
		if res.Passed() {
			return &StaleExemptionError{File: file}
		}
	}
	return nil
}

// Scan lints every entry of dir that is not in dirty, in lexical order, and
// stops at the first failure with *LintFailure. Subdirectories are handed to
// the runner like files; there is no recursion.
func Scan(ctx context.Context, dir string, dirty FileSet, runner lintrun.Runner, rep Reporter) error {
	if rep == nil {
		rep = NopReporter{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read target dir: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		if dirty.Contains(name) {
			rep.Skipped(name)
			continue
		}

		rep.Checking(name)
		res, err := runner.Lint(ctx, name)
		if err != nil {
			return fmt.Errorf("lint %s: %w", name, err)
		}
		if !res.Passed() {
			rep.Failed(res)
			return &LintFailure{File: name, Output: res.Output}
		}
		rep.Passed(res)
	}

	return nil
}

// Checker runs the validation steps and the scan as one state machine.
type Checker struct {
	cfg      Config
	runner   lintrun.Runner
	reporter Reporter
	logger   *slog.Logger
	state    State
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithReporter sets the scan progress reporter.
func WithReporter(rep Reporter) CheckerOption {
	return func(c *Checker) {
		c.reporter = rep
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(logger *slog.Logger) CheckerOption {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker creates a Checker in StateInit. The runner must resolve file
// names relative to cfg.Dir.
func NewChecker(cfg Config, runner lintrun.Runner, opts ...CheckerOption) *Checker {
	c := &Checker{
		cfg:      cfg,
		runner:   runner,
		reporter: NopReporter{},
		logger:   slog.Default(),
		state:    StateInit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Checker) State() State {
	return c.state
}

// Run validates the configuration and scans the target directory. It ends in
// StatePassed when it returns nil and in StateFailed otherwise.
func (c *Checker) Run(ctx context.Context) error {
	if c.state != StateInit {
		return ErrAlreadyRun
	}

	if err := ValidateNoOverlap(c.cfg.Clean, c.cfg.Dirty); err != nil {
		return c.fail(err)
	}
	c.logger.Debug("checking dirty files still fail", "count", c.cfg.Dirty.Len())
	if err := ValidateDirtyStillFails(ctx, c.cfg.Dirty, c.runner); err != nil {
		return c.fail(err)
	}
	c.transition(StateValidatedConfig)

	c.transition(StateScanning)
	if err := Scan(ctx, c.cfg.Dir, c.cfg.Dirty, c.runner, c.reporter); err != nil {
		return c.fail(err)
	}
	c.transition(StatePassed)

	return nil
}

func (c *Checker) transition(to State) {
	c.logger.Debug("gate state", "from", c.state, "to", to)
	c.state = to
}

func (c *Checker) fail(err error) error {
	c.transition(StateFailed)
	c.logger.Debug("gate failed", "error", err)
	return err
}
