// Command stampmatch parses timestamps and finds files whose names embed the
// same instant across a directory tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/stampmatch/internal/cli"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl-C stops a running scan between directory entries.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, version+" ("+commit+")", os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrIncomparable):
		return 2
	default:
		fmt.Fprintf(os.Stderr, "stampmatch: %v\n", err)
		return 1
	}
}
