// Package main implements parky-server, the parks and trails REST API.
//
// Commands:
//
//	parky-server [serve] [--migrate]   run the API (default command)
//	parky-server migrate up|down|status|version|reset
//	parky-server migrate create <name>
//
// Configuration comes from config.yaml (or --config) and PARKY_*
// environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := buildApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "parky-server: %v\n", err)
		os.Exit(1)
	}
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = "parky-server"
	app.Usage = "parks and trails REST API"
	app.HideVersion = true

	// These are global options shared by every command.
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to a config file (defaults to ./config.yaml when present)",
		},
		migrateFlag,
	}

	app.Commands = []cli.Command{
		serveCommand(),
		migrateCommand(),
	}

	// Running without a command serves the API.
	app.Action = runServe
	return app
}

func serveCommand() cli.Command {
	return cli.Command{
		Name:   "serve",
		Usage:  "run the HTTP API",
		Flags:  []cli.Flag{migrateFlag},
		Action: runServe,
	}
}

var migrateFlag = cli.BoolFlag{
	Name:  "migrate",
	Usage: "apply pending migrations before serving",
}
