package testdb

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/parky-api/internal/config"
	"github.com/phrazzld/parky-api/internal/platform/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestDatabaseURLEnv names the environment variable that selects a
// PostgreSQL database for tests.
const TestDatabaseURLEnv = "PARKY_TEST_DB_URL"

// TestTimeout bounds connection setup and migrations.
const TestTimeout = 30 * time.Second

// GetTestDatabaseURL returns the PostgreSQL URL configured for tests, or an
// empty string when tests should use SQLite.
func GetTestDatabaseURL() string {
	return strings.TrimSpace(os.Getenv(TestDatabaseURLEnv))
}

// UsingPostgres reports whether tests run against PostgreSQL.
func UsingPostgres() bool {
	return GetTestDatabaseURL() != ""
}

// Open returns a migrated database for the test, closed automatically when
// the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	if dbURL := GetTestDatabaseURL(); dbURL != "" {
		return open(t, config.DatabaseConfig{
			Driver:       database.DriverPostgres,
			URL:          dbURL,
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		})
	}
	return OpenSQLite(t)
}

// OpenSQLite returns a migrated SQLite database stored in t.TempDir().
func OpenSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	return open(t, config.DatabaseConfig{
		Driver:       database.DriverSQLite,
		URL:          filepath.Join(t.TempDir(), "parky.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	})
}

func open(t *testing.T, cfg config.DatabaseConfig) *gorm.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := database.Open(ctx, cfg, nil)
	require.NoError(t, err, "Failed to open %s test database %s", cfg.Driver, MaskDatabaseURL(cfg.URL))

	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, sqlDB, cfg.Driver, "up"), "Failed to apply migrations")

	if cfg.Driver == database.DriverPostgres {
		Truncate(t, db)
	}

	t.Cleanup(func() {
		if cfg.Driver == database.DriverPostgres {
			Truncate(t, db)
		}
		CleanupDB(t, db)
	})

	return db
}

// Truncate removes every park and trail.
func Truncate(t *testing.T, db *gorm.DB) {
	t.Helper()

	if db.Dialector.Name() == "postgres" {
		require.NoError(t, db.Exec("TRUNCATE trails, parks RESTART IDENTITY CASCADE").Error)
		return
	}
	require.NoError(t, db.Exec("DELETE FROM trails").Error)
	require.NoError(t, db.Exec("DELETE FROM parks").Error)
}

// CleanupDB closes the connection pool behind db, logging any error.
func CleanupDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	if db == nil {
		return
	}

	if err := database.Close(db); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}

// MaskDatabaseURL hides the password of a connection URL for logging.
func MaskDatabaseURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil || parsed.User == nil {
		return dbURL
	}
	if _, hasPassword := parsed.User.Password(); hasPassword {
		parsed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
	}
	return parsed.String()
}
