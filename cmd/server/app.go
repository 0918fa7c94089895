package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/parky-api/internal/config"
	"github.com/phrazzld/parky-api/internal/platform/database"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/store"
	"github.com/urfave/cli"
	"gorm.io/gorm"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *gorm.DB

	parkStore  store.ParkStore
	trailStore store.TrailStore
}

// newApplication wires the stores on top of an established database
// connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB) (*application, error) {
	if cfg == nil || logger == nil || db == nil {
		return nil, fmt.Errorf("config, logger and database are required")
	}

	gateway := database.NewGateway(db, logger)

	app := &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		parkStore:  database.NewGormParkStore(gateway, logger),
		trailStore: database.NewGormTrailStore(gateway, logger),
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := database.Close(app.db); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

// loadAppConfig loads the configuration named by the --config flag, or the
// default sources when the flag is empty.
func loadAppConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadFile(c.GlobalString("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// bootstrap loads configuration, installs the logger and opens the database.
func bootstrap(ctx context.Context, c *cli.Context) (*config.Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := loadAppConfig(c)
	if err != nil {
		return nil, nil, nil, err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	db, err := database.Open(ctx, cfg.Database, l)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, l, db, nil
}

// runServe is the action of the serve command.
func runServe(c *cli.Context) error {
	ctx := context.Background()

	cfg, l, db, err := bootstrap(ctx, c)
	if err != nil {
		return err
	}

	if c.Bool("migrate") || c.GlobalBool("migrate") {
		sqlDB, err := db.DB()
		if err != nil {
			_ = database.Close(db)
			return fmt.Errorf("failed to access connection pool: %w", err)
		}
		if err := database.Migrate(ctx, sqlDB, cfg.Database.Driver, "up"); err != nil {
			_ = database.Close(db)
			return err
		}
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = database.Close(db)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
