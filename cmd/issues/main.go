// Package main is the entry point for the issue-browser CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/issue-browser/internal/app"
	"github.com/runoshun/issue-browser/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(newContainer, version)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// newContainer builds the container for the current working directory.
func newContainer(opts app.Options) (*app.Container, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return container, nil
}
