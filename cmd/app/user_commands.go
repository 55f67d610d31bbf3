package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/moviecatalog/cmd/app/commands"
	"github.com/allisson/moviecatalog/internal/app"
	"github.com/allisson/moviecatalog/internal/config"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-admin",
			Usage: "Create an admin user, or promote an existing one",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Admin username",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Admin password",
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

				users, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateAdmin(
					ctx,
					users,
					container.Logger(),
					cmd.String("username"),
					cmd.String("password"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
