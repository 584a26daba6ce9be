// Command lintgate fails a CI build when a file outside the known-dirty list
// fails golint, or when the clean and dirty lists have drifted.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkoosis/lintgate/pkg/gate"
)

// Exit codes
const (
	ExitPassed = 0 // every non-exempt file passed
	ExitFailed = 1 // duplicate entry, stale exemption, or lint failure
	ExitError  = 2 // usage or runtime error
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitPassed
	}

	fmt.Fprintf(stderr, "lintgate: %v\n", err)
	if gate.IsGateFailure(err) {
		return ExitFailed
	}
	return ExitError
}
