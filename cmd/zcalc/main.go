package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/zcalc/internal/cli"
	"github.com/five82/zcalc/internal/render/window"
	"github.com/five82/zcalc/internal/state"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := cli.NewRootCommand(version, commit, date, openWindow)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "zcalc: %v\n", err)
		return 1
	}
	return 0
}

func openWindow(ctx context.Context, store *state.Store, opts cli.ViewerOptions) error {
	return window.Run(ctx, store, window.Options{Title: opts.Title, AxisSize: opts.AxisSize})
}
