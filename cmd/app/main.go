// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	commands := getSystemCommands(version)
	commands = append(commands, getKeyCommands()...)

	cmd := &cli.Command{
		Name:     "app",
		Usage:    "Setlistify credential broker and catalog proxy",
		Version:  version,
		Commands: commands,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
