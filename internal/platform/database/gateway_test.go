package database_test

import (
	"context"
	"testing"

	"github.com/phrazzld/parky-api/internal/platform/database"
	"github.com/phrazzld/parky-api/internal/store"
	"github.com/phrazzld/parky-api/internal/testdb"
	"github.com/phrazzld/parky-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGatewaySave(t *testing.T) {
	db := testdb.Open(t)
	gw := database.NewGateway(db, nil)
	ctx := context.Background()

	parkID := testutils.MustInsertPark(ctx, t, db, "Zion")

	t.Run("affected rows commit", func(t *testing.T) {
		ok, err := gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
			return tx.Table("parks").Where("id = ?", parkID).Update("state", "Utah")
		})
		require.NoError(t, err)
		assert.True(t, ok)

		var state string
		require.NoError(t, gw.Parks(ctx).Where("id = ?", parkID).Pluck("state", &state).Error)
		assert.Equal(t, "Utah", state)
	})

	t.Run("no affected rows is a failure", func(t *testing.T) {
		ok, err := gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
			return tx.Table("parks").Where("id = ?", parkID+1).Update("state", "Nevada")
		})
		assert.False(t, ok)
		assert.ErrorIs(t, err, store.ErrNoRowsAffected)
	})

	t.Run("constraint violation is mapped", func(t *testing.T) {
		ok, err := gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
			return tx.Exec("INSERT INTO trails (name, name_key, distance, elevation, difficulty, park_id) VALUES (?, ?, 1, 1, 'easy', ?)",
				"Orphan", "orphan", parkID+99)
		})
		assert.False(t, ok)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestNewGatewayPanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() { database.NewGateway(nil, nil) })
}
