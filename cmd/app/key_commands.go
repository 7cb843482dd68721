package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/setlistify/setlistify/cmd/app/commands"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-cookie-key",
			Usage: "Generate a new 32-byte cookie encryption key",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateCookieKey(commands.DefaultIO().Writer)
			},
		},
	}
}
