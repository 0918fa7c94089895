package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/parky-api/internal/config"
	"github.com/phrazzld/parky-api/internal/platform/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, config.DatabaseConfig{
		Driver:       database.DriverSQLite,
		URL:          filepath.Join(t.TempDir(), "migrate.db"),
		MaxOpenConns: 2,
		MaxIdleConns: 2,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, sqlDB, database.DriverSQLite, "up"))
	version, err := database.CurrentVersion(ctx, sqlDB, database.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	assert.True(t, db.Migrator().HasTable("trails"))

	require.NoError(t, database.Migrate(ctx, sqlDB, database.DriverSQLite, "status"))

	require.NoError(t, database.Migrate(ctx, sqlDB, database.DriverSQLite, "down"))
	version, err = database.CurrentVersion(ctx, sqlDB, database.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.False(t, db.Migrator().HasTable("trails"))

	require.NoError(t, database.Migrate(ctx, sqlDB, database.DriverSQLite, "reset"))
	assert.False(t, db.Migrator().HasTable("parks"))
}

func TestMigrateRejectsBadInput(t *testing.T) {
	ctx := context.Background()

	err := database.Migrate(ctx, nil, "mysql", "up")
	assert.ErrorContains(t, err, "unsupported database driver")

	err = database.Migrate(ctx, nil, database.DriverSQLite, "sideways")
	assert.ErrorContains(t, err, "unknown migration command")

	err = database.Migrate(ctx, nil, database.DriverSQLite, "create")
	assert.ErrorContains(t, err, "migration name is required")
}

func TestMigrateCreateWritesSequentialFile(t *testing.T) {
	dir := t.TempDir()

	err := database.Migrate(context.Background(), nil, database.DriverSQLite, "create", "add_visitor_centers", dir)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Regexp(t, `^0+1_add_visitor_centers\.sql$`, filepath.Base(files[0]))
}
