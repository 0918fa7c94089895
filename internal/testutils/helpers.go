// Package testutils provides fixture helpers shared by tests across the
// codebase.
//
// Helper functions follow these naming conventions:
// - Create*: Create entities in memory
// - MustInsert*: Insert entities into the database, failing the test on error
// - Count*: Count stored entities
package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/platform/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateTestPark creates a new valid park for testing.
// It does not save the park to the database.
func CreateTestPark(t *testing.T, name string) *domain.Park {
	t.Helper()
	established := time.Date(1919, time.November, 19, 0, 0, 0, 0, time.UTC)
	park, err := domain.NewPark(name, "UT", established, []byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err, "Failed to create test park")
	return park
}

// CreateTestTrail creates a new valid trail in the given park for testing.
// It does not save the trail to the database.
func CreateTestTrail(t *testing.T, name string, parkID int64) *domain.Trail {
	t.Helper()
	trail := &domain.Trail{
		Name:       name,
		Distance:   5.4,
		Elevation:  1488,
		Difficulty: domain.DifficultyDifficult,
		CreatedAt:  time.Now().UTC(),
		ParkID:     parkID,
	}
	require.NoError(t, trail.Validate(), "Failed to create test trail")
	return trail
}

// MustInsertPark inserts a park with the given name and returns its id.
// The function will fail the test if the insert operation fails.
func MustInsertPark(ctx context.Context, t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()

	park := CreateTestPark(t, name)
	parks := database.NewGormParkStore(database.NewGateway(db, nil), nil)
	require.True(t, parks.Create(ctx, park), "Failed to insert test park %q", name)
	return park.ID
}

// MustInsertTrail inserts a trail with the given name into the park and
// returns its id. The function will fail the test if the insert operation fails.
func MustInsertTrail(ctx context.Context, t *testing.T, db *gorm.DB, name string, parkID int64) int64 {
	t.Helper()

	trail := CreateTestTrail(t, name, parkID)
	trails := database.NewGormTrailStore(database.NewGateway(db, nil), nil)
	require.True(t, trails.Create(ctx, trail), "Failed to insert test trail %q", name)
	return trail.ID
}

// CountParks returns the number of stored parks.
func CountParks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	return count(t, db, "parks")
}

// CountTrails returns the number of stored trails.
func CountTrails(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	return count(t, db, "trails")
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error, "Failed to count %s", table)
	return n
}
