// Package main is the entry point for the timetrack CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/timetrack/internal/app"
	"github.com/runoshun/timetrack/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := app.DefaultDataDir()
	if err != nil {
		return err
	}

	container, err := app.New(dataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(ctx)
}
