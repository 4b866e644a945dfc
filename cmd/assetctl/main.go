package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"assethub/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		cli.NewPrinter(os.Stderr).Error("assetctl", err)
		stop()
		os.Exit(1)
	}
}
