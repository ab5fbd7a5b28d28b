// Package main is the entry point for the rpg-sheet terminal character sheet
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))
		stop()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
