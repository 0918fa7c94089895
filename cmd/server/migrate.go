package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/parky-api/internal/ciutil"
	"github.com/phrazzld/parky-api/internal/platform/database"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/urfave/cli"
)

func migrateCommand() cli.Command {
	return cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Subcommands: []cli.Command{
			migrateSubcommand("up", "apply all pending migrations"),
			migrateSubcommand("down", "roll back the most recent migration"),
			migrateSubcommand("status", "show the state of every migration"),
			migrateSubcommand("version", "print the current schema version"),
			migrateSubcommand("reset", "roll back all migrations"),
			{
				Name:      "create",
				Usage:     "create a new SQL migration for the configured driver",
				ArgsUsage: "<name>",
				Action:    runMigrateCreate,
			},
		},
	}
}

func migrateSubcommand(name, usage string) cli.Command {
	return cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(c *cli.Context) error {
			return runMigrate(c, name)
		},
	}
}

// runMigrate executes a migration command against the configured database.
func runMigrate(c *cli.Context, command string) error {
	ctx := context.Background()

	cfg, l, db, err := bootstrap(ctx, c)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			l.Error("Error closing database connection", "error", err)
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}

	slog.Info("Executing migrations", "command", command, "driver", cfg.Database.Driver)
	if err := database.Migrate(ctx, sqlDB, cfg.Database.Driver, command); err != nil {
		return err
	}

	if command == "version" || command == "up" || command == "down" {
		version, err := database.CurrentVersion(ctx, sqlDB, cfg.Database.Driver)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		fmt.Fprintf(c.App.Writer, "schema version: %d\n", version)
	}
	return nil
}

// runMigrateCreate writes a new migration file without touching the
// database.
func runMigrateCreate(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("migration name is required: parky-server migrate create <name>")
	}

	cfg, err := loadAppConfig(c)
	if err != nil {
		return err
	}
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	dir, err := ciutil.FindMigrationsDir(database.MigrationsSourceDir(cfg.Database.Driver), l)
	if err != nil {
		return err
	}

	return database.Migrate(context.Background(), nil, cfg.Database.Driver, "create", name, dir)
}
