package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/kebab-dev/kebab/shared/logger"
)

func main() {
	app := &cli.Command{
		Name:  "kebab-api",
		Usage: "Kanban board REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config_folder",
				Usage: "path to folder with public.yaml and private.yaml",
				Value: "config",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
			resetCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Log.Error("application error", "error", err)
		os.Exit(1)
	}
}
