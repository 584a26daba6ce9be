package gate

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dkoosis/lintgate/pkg/lintrun"
	"github.com/dkoosis/lintgate/pkg/sarif"
)

// SARIF rule IDs, one per gate verdict.
const (
	RuleDuplicateEntry = "lintgate-duplicate-entry"
	RuleStaleExemption = "lintgate-stale-exemption"
	RuleLintFailure    = "lintgate-lint-failure"
)

// Reporter observes the main scan.
type Reporter interface {
	Checking(file string)
	Passed(res lintrun.Result)
	Skipped(file string)
	Failed(res lintrun.Result)
}

// NopReporter discards all progress.
type NopReporter struct{}

// Checking does nothing.
func (NopReporter) Checking(string) {}

// Passed does nothing.
func (NopReporter) Passed(lintrun.Result) {}

// Skipped does nothing.
func (NopReporter) Skipped(string) {}

// Failed does nothing.
func (NopReporter) Failed(lintrun.Result) {}

// TextReporter prints per-file progress for a CI log.
type TextReporter struct {
	w     io.Writer
	label string
}

// NewTextReporter writes progress to w, naming the linter in each line.
func NewTextReporter(w io.Writer, linter string) *TextReporter {
	return &TextReporter{w: w, label: filepath.Base(linter)}
}

// Checking announces the file about to be linted.
func (r *TextReporter) Checking(file string) {
	fmt.Fprintf(r.w, "Running %s for file %s\n", r.label, file)
}

// Passed prints the linter output and an OK line.
func (r *TextReporter) Passed(res lintrun.Result) {
	if res.Output != "" {
		fmt.Fprintln(r.w, res.Output)
	}
	fmt.Fprintf(r.w, "%s OK! for %s\n", strings.ToUpper(r.label), res.File)
	fmt.Fprintln(r.w, strings.Repeat("*", 50))
}

// Skipped notes a known-dirty file left out of the scan.
func (r *TextReporter) Skipped(file string) {
	fmt.Fprintf(r.w, "Skipping known-dirty file %s\n", file)
}

// Failed prints the linter output inside a failure banner.
func (r *TextReporter) Failed(res lintrun.Result) {
	if res.Output != "" {
		fmt.Fprintln(r.w, res.Output)
	}
	banner := strings.Repeat("+", 30)
	fmt.Fprintln(r.w, banner)
	fmt.Fprintf(r.w, "%s FAILED for %s\n", strings.ToUpper(r.label), res.File)
	fmt.Fprintln(r.w, banner)
}

// BuildSARIF converts the outcome of a run into a SARIF log. A passing run
// and errors that are not gate verdicts both produce a run with no results.
// Artifact URIs are dir joined with the entry name, so they resolve from the
// directory the gate was run in.
func BuildSARIF(runErr error, dir, version string) *sarif.Log {
	uri := func(file string) string {
		return filepath.ToSlash(filepath.Join(dir, file))
	}

	log := sarif.NewLog()
	run := sarif.NewRun("lintgate", version)

	var (
		dup   *DuplicateEntriesError
		stale *StaleExemptionError
		lint  *LintFailure
	)
	switch {
	case errors.As(runErr, &dup):
		for _, f := range dup.Files {
			run.Results = append(run.Results, sarif.FileResult(RuleDuplicateEntry, sarif.LevelError, uri(f),
				fmt.Sprintf("%s is listed as both clean and dirty", f)))
		}
	case errors.As(runErr, &stale):
		run.Results = append(run.Results, sarif.FileResult(RuleStaleExemption, sarif.LevelError, uri(stale.File),
			fmt.Sprintf("%s is exempted as dirty but passes lint", stale.File)))
	case errors.As(runErr, &lint):
		text := fmt.Sprintf("%s failed lint", lint.File)
		if lint.Output != "" {
			text += ":\n" + lint.Output
		}
		run.Results = append(run.Results, sarif.FileResult(RuleLintFailure, sarif.LevelError, uri(lint.File), text))
	}

	log.Runs = append(log.Runs, run)
	return log
}
