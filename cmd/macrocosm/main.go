// Command macrocosm generates error and query response code from
// descriptor files.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.As(err, new(reportedError)) {
			report(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
