package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the table goose records applied versions in.
const MigrationTableName = "schema_migrations"

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// goose keeps its dialect, table name and base filesystem in package state.
var gooseMu sync.Mutex

// MigrationCommands lists the commands accepted by Migrate.
var MigrationCommands = []string{"up", "down", "reset", "status", "version", "create"}

// MigrationsDir returns the embedded migrations directory for driver.
func MigrationsDir(driver string) string {
	return "migrations/" + driver
}

// MigrationsSourceDir returns the on-disk migrations directory for driver,
// relative to the repository root. New migrations are created there.
func MigrationsSourceDir(driver string) string {
	return filepath.Join("internal", "platform", "database", "migrations", driver)
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate runs a goose migration command against db using the embedded
// migrations for driver. The create command takes the migration name as its
// first argument and an optional target directory as its second; it writes
// a new SQL file to MigrationsSourceDir by default and ignores db.
func Migrate(ctx context.Context, db *sql.DB, driver, command string, args ...string) error {
	correlationID := uuid.New().String()
	log := slog.Default().With(
		"correlation_id", correlationID,
		"component", "migrations",
		"command", command,
		"driver", driver,
	)

	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(&slogGooseLogger{logger: log})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect(dialect); err != nil {
		log.Error("failed to set dialect", "error", err)
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	startTime := time.Now()
	log.Info("starting migration operation", "operation", fmt.Sprintf("goose %s", command), "args", args)

	dir := MigrationsDir(driver)
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	switch command {
	case "up":
		log.Info("applying pending migrations")
		err = goose.UpContext(ctx, db, dir)
	case "down":
		log.Info("rolling back one migration version")
		err = goose.DownContext(ctx, db, dir)
	case "reset":
		log.Info("resetting all migrations (roll back to zero)")
		err = goose.ResetContext(ctx, db, dir)
	case "status":
		log.Info("checking migration status")
		err = goose.StatusContext(ctx, db, dir)
	case "version":
		log.Info("retrieving current migration version")
		err = goose.VersionContext(ctx, db, dir)
	case "create":
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			log.Error("migration create command requires a name parameter")
			return fmt.Errorf("migration name is required for 'create' command")
		}
		sourceDir := MigrationsSourceDir(driver)
		if len(args) > 1 && args[1] != "" {
			sourceDir = args[1]
		}
		log.Info("creating new migration", "name", args[0], "type", "sql", "directory", sourceDir)
		goose.SetBaseFS(nil)
		goose.SetSequential(true)
		err = goose.Create(db, sourceDir, args[0], "sql")
	default:
		log.Error("unknown migration command",
			"command", command,
			"valid_commands", MigrationCommands)
		return fmt.Errorf(
			"unknown migration command: %s (expected %s)",
			command,
			strings.Join(MigrationCommands, ", "),
		)
	}

	duration := time.Since(startTime)
	if err != nil {
		log.Error("migration command failed",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
			"duration_ms", duration.Milliseconds())
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	log.Info("migration command executed successfully", "duration_ms", duration.Milliseconds())
	return nil
}

// CurrentVersion returns the highest applied migration version, or 0 on a
// database that has never been migrated.
func CurrentVersion(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return 0, err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("failed to set dialect: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db)
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to Info.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding messages to Error.
// It does NOT exit; the error is returned to the caller by goose.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
