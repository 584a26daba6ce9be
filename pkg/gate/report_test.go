package gate_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/lintgate/pkg/gate"
	"github.com/dkoosis/lintgate/pkg/lintrun"
	"github.com/dkoosis/lintgate/pkg/sarif"
)

func TestTextReporter_PrintsProgress_When_FilesChecked(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	rep := gate.NewTextReporter(&out, "/usr/bin/golint")

	rep.Checking("a.go")
	rep.Passed(lintrun.Result{File: "a.go"})
	rep.Skipped("b.go")
	rep.Checking("c.go")
	rep.Failed(lintrun.Result{File: "c.go", ExitCode: 1, Output: "c.go:3:1: comment on exported function"})

	want := "Running golint for file a.go\n" +
		"GOLINT OK! for a.go\n" +
		"**************************************************\n" +
		"Skipping known-dirty file b.go\n" +
		"Running golint for file c.go\n" +
		"c.go:3:1: comment on exported function\n" +
		"++++++++++++++++++++++++++++++\n" +
		"GOLINT FAILED for c.go\n" +
		"++++++++++++++++++++++++++++++\n"
	assert.Equal(t, want, out.String())
}

func TestBuildSARIF_MapsVerdicts_When_RunEnds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantRules []string
		wantURIs  []string
	}{
		{name: "success: passing run has no results"},
		{name: "success: runtime error is not a verdict", err: errors.New("exec: golint not found")},
		{
			name:      "error: duplicates produce one result per file",
			err:       &gate.DuplicateEntriesError{Files: []string{"a.go", "b.go"}},
			wantRules: []string{gate.RuleDuplicateEntry, gate.RuleDuplicateEntry},
			wantURIs:  []string{"libvirt/a.go", "libvirt/b.go"},
		},
		{
			name:      "error: stale exemption",
			err:       &gate.StaleExemptionError{File: "stream.go"},
			wantRules: []string{gate.RuleStaleExemption},
			wantURIs:  []string{"libvirt/stream.go"},
		},
		{
			name:      "error: lint failure",
			err:       &gate.LintFailure{File: "utils.go", Output: "utils.go:1:1: bad"},
			wantRules: []string{gate.RuleLintFailure},
			wantURIs:  []string{"libvirt/utils.go"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			log := gate.BuildSARIF(tc.err, "libvirt", "test")

			require.Len(t, log.Runs, 1)
			run := log.Runs[0]
			assert.Equal(t, "lintgate", run.Tool.Driver.Name)
			require.Len(t, run.Results, len(tc.wantRules))
			for i, res := range run.Results {
				assert.Equal(t, tc.wantRules[i], res.RuleID)
				assert.Equal(t, sarif.LevelError, res.Level)
				assert.Equal(t, tc.wantURIs[i], res.Locations[0].PhysicalLocation.ArtifactLocation.URI)
			}
		})
	}
}

func TestBuildSARIF_IncludesLinterOutput_When_LintFails(t *testing.T) {
	t.Parallel()

	log := gate.BuildSARIF(&gate.LintFailure{File: "utils.go", Output: "utils.go:1:1: bad"}, "libvirt", "test")

	assert.Equal(t, "utils.go failed lint:\nutils.go:1:1: bad", log.Runs[0].Results[0].Message.Text)
}

func TestBuildSARIF_JoinsTargetDir_When_DirIsNestedOrCurrent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dir  string
		want string
	}{
		{name: "success: nested relative dir", dir: "src/libvirt", want: "src/libvirt/c.go"},
		{name: "success: dir with trailing slash", dir: "libvirt/", want: "libvirt/c.go"},
		{name: "success: current dir", dir: ".", want: "c.go"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			log := gate.BuildSARIF(&gate.LintFailure{File: "c.go"}, filepath.FromSlash(tc.dir), "test")

			uri := log.Runs[0].Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI
			assert.Equal(t, tc.want, uri)
		})
	}
}
