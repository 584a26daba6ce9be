package gate

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDir is the target directory, relative to the working directory.
	DefaultDir = "libvirt"
	// DefaultLinter is the linter binary looked up on PATH.
	DefaultLinter = "golint"
)

//go:embed default.yml
var defaultConfig []byte

// Config is the immutable input of a gate run.
type Config struct {
	Clean   FileSet
	Dirty   FileSet
	Dir     string
	Linter  string
	Timeout time.Duration
}

// fileConfig mirrors the on-disk structure.
type fileConfig struct {
	Dir     string   `yaml:"dir"`
	Linter  string   `yaml:"linter"`
	Timeout string   `yaml:"timeout"`
	Clean   []string `yaml:"clean"`
	Dirty   []string `yaml:"dirty"`
}

// DefaultConfig returns the configuration bundled with the binary.
func DefaultConfig() (Config, error) {
	cfg, err := ParseConfig(defaultConfig)
	if err != nil {
		return Config{}, fmt.Errorf("bundled config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file from disk.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML and applies defaults. Unknown keys are rejected.
// Overlap between the lists is not checked here; ValidateNoOverlap does that.
func ParseConfig(data []byte) (Config, error) {
	var raw fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := Config{
		Dir:    raw.Dir,
		Linter: raw.Linter,
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.Linter == "" {
		cfg.Linter = DefaultLinter
	}

	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("timeout must not be negative: %s", raw.Timeout)
		}
		cfg.Timeout = d
	}

	if err := checkNames("clean", raw.Clean); err != nil {
		return Config{}, err
	}
	if err := checkNames("dirty", raw.Dirty); err != nil {
		return Config{}, err
	}
	cfg.Clean = NewFileSet(raw.Clean...)
	cfg.Dirty = NewFileSet(raw.Dirty...)

	return cfg, nil
}

// checkNames rejects entries that cannot name a direct child of the target
// directory.
func checkNames(list string, names []string) error {
	for i, name := range names {
		switch {
		case strings.TrimSpace(name) == "":
			return fmt.Errorf("%s[%d]: empty file name", list, i)
		case name == "." || name == "..":
			return fmt.Errorf("%s[%d]: %q is not a file name", list, i, name)
		case strings.ContainsAny(name, `/\`):
			return fmt.Errorf("%s[%d]: %q must be a base name without a path", list, i, name)
		}
	}
	return nil
}
