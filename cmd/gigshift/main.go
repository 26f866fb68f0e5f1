package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gigshift/gigshift/cmd/gigshift/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := commands.Execute(ctx, os.Args); err != nil {
		commands.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}
