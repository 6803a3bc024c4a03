// Command monotone is the CLI front-end of the counting library: count,
// classify, verify, and bench. All behavior lives in internal/cli; this
// entry point only owns the process context and the exit code.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/monotone/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "monotone:", err)
		os.Exit(1)
	}
}
