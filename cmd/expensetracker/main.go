package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"expensetracker/internal/cli"
)

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cli.CmdParams{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
