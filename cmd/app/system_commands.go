package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/moviecatalog/cmd/app/commands"
	"github.com/allisson/moviecatalog/internal/app"
	"github.com/allisson/moviecatalog/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Install the database schema for the configured driver",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "path",
					Aliases: []string{"p"},
					Value:   "migrations",
					Usage:   "Directory holding the postgresql, mysql and sqlite3 migration sets",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(
					container.Logger(),
					cfg.DBDriver,
					cfg.DBConnectionString,
					cmd.String("path"),
				)
			},
		},
	}
}
