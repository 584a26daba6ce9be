package gate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_AppliesDefaults_When_FieldsOmitted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gate.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
clean:
  - b.go
  - a.go
  - a.go
dirty:
  - c.go
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultDir, cfg.Dir)
	assert.Equal(t, DefaultLinter, cfg.Linter)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, []string{"a.go", "b.go"}, cfg.Clean.Names())
	assert.Equal(t, []string{"c.go"}, cfg.Dirty.Names())
}

func TestParseConfig_HandlesInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
		inspect func(t *testing.T, cfg Config)
	}{
		{
			name: "success: all fields set",
			yaml: "dir: src\nlinter: /usr/local/bin/golint\ntimeout: 90s\nclean: [a.go]\ndirty: [b.go]\n",
			inspect: func(t *testing.T, cfg Config) {
				assert.Equal(t, "src", cfg.Dir)
				assert.Equal(t, "/usr/local/bin/golint", cfg.Linter)
				assert.Equal(t, 90*time.Second, cfg.Timeout)
			},
		},
		{
			name: "success: empty document yields defaults",
			yaml: "",
			inspect: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultDir, cfg.Dir)
				assert.Zero(t, cfg.Clean.Len())
				assert.Zero(t, cfg.Dirty.Len())
			},
		},
		{
			name: "success: overlap is left for ValidateNoOverlap",
			yaml: "clean: [a.go]\ndirty: [a.go]\n",
			inspect: func(t *testing.T, cfg Config) {
				assert.Error(t, ValidateNoOverlap(cfg.Clean, cfg.Dirty))
			},
		},
		{name: "error: unknown key", yaml: "clean: [a.go]\nblacklist: [b.go]\n", wantErr: "blacklist"},
		{name: "error: bad timeout", yaml: "timeout: soon\n", wantErr: "timeout"},
		{name: "error: negative timeout", yaml: "timeout: -1s\n", wantErr: "must not be negative"},
		{name: "error: empty name", yaml: "clean: ['']\n", wantErr: "clean[0]: empty file name"},
		{name: "error: path instead of name", yaml: "dirty: [a.go, sub/b.go]\n", wantErr: "dirty[1]"},
		{name: "error: parent pseudo-entry", yaml: "clean: ['..']\n", wantErr: "not a file name"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig([]byte(tc.yaml))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.inspect != nil {
				tc.inspect(t, cfg)
			}
		})
	}
}

func TestDefaultConfig_IsConsistent(t *testing.T) {
	t.Parallel()

	cfg, err := DefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, "libvirt", cfg.Dir)
	assert.Equal(t, "golint", cfg.Linter)
	assert.True(t, cfg.Clean.Contains("domain_def.go"))
	assert.True(t, cfg.Dirty.Contains("stream.go"))
	assert.NoError(t, ValidateNoOverlap(cfg.Clean, cfg.Dirty))
}

func TestLoadConfig_ReturnsError_When_FileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestFileSet_Operations(t *testing.T) {
	t.Parallel()

	s := NewFileSet("c.go", "a.go", "c.go", "b.go")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a.go", "b.go", "c.go"}, s.Names())
	assert.True(t, s.Contains("b.go"))
	assert.False(t, s.Contains("d.go"))
	assert.Equal(t, []string{"b.go", "c.go"}, s.Intersect(NewFileSet("c.go", "b.go", "z.go")))
	assert.Empty(t, s.Intersect(NewFileSet()))

	names := s.Names()
	names[0] = "mutated"
	assert.True(t, s.Contains("a.go"), "Names must return a copy")
}
