package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/poketrade/pokecards/cmd/app/commands"
	"github.com/poketrade/pokecards/internal/app"
	"github.com/poketrade/pokecards/internal/config"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Register a new user account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "email",
					Aliases: []string{"e"},
					Usage:   "User email address (omit for interactive mode)",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "User password (omit for interactive mode)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
