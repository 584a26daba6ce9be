package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkoosis/lintgate/pkg/gate"
	"github.com/dkoosis/lintgate/pkg/lintrun"
	"github.com/dkoosis/lintgate/pkg/sarif"
)

var version = "dev"

type options struct {
	configPath string
	dir        string
	linter     string
	timeout    time.Duration
	sarifPath  string
	quiet      bool
	debug      bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lintgate",
		Short: "Gate a directory on golint with a tracked list of known-dirty files",
		Long: `lintgate lints every file in the target directory and fails on the first
violation. Files in the dirty list are exempt, but each of them must still
fail the linter; a dirty file that passes must be moved to the clean list.

Without --config the bundled lists are used and the target directory is
"libvirt" relative to the working directory.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGate(cmd, opts, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML file with clean and dirty lists (default: bundled lists)")
	flags.StringVar(&opts.dir, "dir", "", "target directory (overrides config)")
	flags.StringVar(&opts.linter, "linter", "", "linter binary (overrides config)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-file lint timeout, 0 for none (overrides config)")
	flags.StringVar(&opts.sarifPath, "sarif", "", "write the gate verdict as SARIF to this file")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-file progress")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return cmd
}

func runGate(cmd *cobra.Command, opts *options, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"dir", cfg.Dir,
		"linter", cfg.Linter,
		"timeout", cfg.Timeout,
		"clean", cfg.Clean.Len(),
		"dirty", cfg.Dirty.Len(),
	)

	runner := lintrun.New(cfg.Linter, lintrun.WithDir(cfg.Dir), lintrun.WithTimeout(cfg.Timeout))

	var reporter gate.Reporter = gate.NewTextReporter(stdout, cfg.Linter)
	if opts.quiet {
		reporter = gate.NopReporter{}
	}

	checker := gate.NewChecker(cfg, runner, gate.WithReporter(reporter), gate.WithLogger(logger))
	runErr := checker.Run(cmd.Context())

	// A requested SARIF file that cannot be written fails the run; a gate
	// verdict still takes precedence for the exit code.
	if opts.sarifPath != "" && (runErr == nil || gate.IsGateFailure(runErr)) {
		if err := writeSARIF(opts.sarifPath, gate.BuildSARIF(runErr, cfg.Dir, version)); err != nil {
			return errors.Join(runErr, fmt.Errorf("write sarif %s: %w", opts.sarifPath, err))
		}
	}

	return runErr
}

// loadConfig reads the bundled or given config and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (gate.Config, error) {
	var (
		cfg gate.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = gate.LoadConfig(opts.configPath)
	} else {
		cfg, err = gate.DefaultConfig()
	}
	if err != nil {
		return gate.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = opts.dir
	}
	if flags.Changed("linter") {
		cfg.Linter = opts.linter
	}
	if flags.Changed("timeout") {
		if opts.timeout < 0 {
			return gate.Config{}, fmt.Errorf("--timeout must not be negative")
		}
		cfg.Timeout = opts.timeout
	}

	// The linter runs inside cfg.Dir, so a relative path to the binary must
	// be anchored to the current directory first.
	if strings.ContainsRune(cfg.Linter, filepath.Separator) && !filepath.IsAbs(cfg.Linter) {
		abs, err := filepath.Abs(cfg.Linter)
		if err != nil {
			return gate.Config{}, fmt.Errorf("resolve linter path: %w", err)
		}
		cfg.Linter = abs
	}

	return cfg, nil
}

func writeSARIF(path string, log *sarif.Log) error {
	f, err := os.Create(path) //nolint:gosec // path from command line
	if err != nil {
		return err
	}
	if err := sarif.NewEncoder(f).Encode(log); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
