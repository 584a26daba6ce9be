//go:build mage

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateArgs_RequiresTarget_When_DefaultDirMissing(t *testing.T) {
	t.Parallel()

	missing := func(string) bool { return false }
	present := func(string) bool { return true }

	tests := []struct {
		name    string
		flags   string
		exists  func(string) bool
		want    []string
		wantErr string
	}{
		{
			name:    "error: no flags and no libvirt dir",
			exists:  missing,
			wantErr: "LINTGATE_FLAGS",
		},
		{
			name:    "error: unrelated flags only",
			flags:   "--quiet --timeout 1m",
			exists:  missing,
			wantErr: "./libvirt not found",
		},
		{
			name:   "success: default dir present",
			exists: present,
			want:   []string{"--sarif", "bin/lintgate.sarif"},
		},
		{
			name:   "success: explicit dir",
			flags:  "--dir ../provider/libvirt --quiet",
			exists: missing,
			want:   []string{"--sarif", "bin/lintgate.sarif", "--dir", "../provider/libvirt", "--quiet"},
		},
		{
			name:   "success: config with equals form",
			flags:  "--config=gate.yml",
			exists: missing,
			want:   []string{"--sarif", "bin/lintgate.sarif", "--config=gate.yml"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			args, err := gateArgs(tc.flags, tc.exists)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, args)
		})
	}
}
