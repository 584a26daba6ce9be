package gate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfig matches every error caused by inconsistent clean/dirty lists.
var ErrConfig = errors.New("invalid gate configuration")

// ErrAlreadyRun is returned when a Checker is run twice.
var ErrAlreadyRun = errors.New("checker already run")

// DuplicateEntriesError reports files listed as both clean and dirty.
type DuplicateEntriesError struct {
	Files []string
}

// Error lists the duplicated names.
func (e *DuplicateEntriesError) Error() string {
	return fmt.Sprintf("duplicate entries in clean and dirty lists: %s", strings.Join(e.Files, ", "))
}

// Is makes errors.Is(err, ErrConfig) hold.
func (e *DuplicateEntriesError) Is(target error) bool {
	return target == ErrConfig
}

// StaleExemptionError reports a dirty file that no longer fails lint. It must
// be moved to the clean list.
type StaleExemptionError struct {
	File string
}

// Error names the file whose exemption is stale.
func (e *StaleExemptionError) Error() string {
	return fmt.Sprintf("stale exemption: %s passes lint, move it to the clean list", e.File)
}

// Is makes errors.Is(err, ErrConfig) hold.
func (e *StaleExemptionError) Is(target error) bool {
	return target == ErrConfig
}

// LintFailure reports a non-exempt file that failed lint.
type LintFailure struct {
	File   string
	Output string
}

// Error names the failing file. The linter output is in Output.
func (e *LintFailure) Error() string {
	return fmt.Sprintf("lint failed for %s", e.File)
}

// IsGateFailure reports whether err is one of the gate's own verdicts rather
// than a failure to run the gate.
func IsGateFailure(err error) bool {
	var lf *LintFailure
	return errors.Is(err, ErrConfig) || errors.As(err, &lf)
}
