package testdb

import (
	"testing"

	"gorm.io/gorm"
)

// WithTx runs fn inside a transaction that is rolled back when fn returns,
// so its writes are never visible to other tests.
func WithTx(t *testing.T, db *gorm.DB, fn func(t *testing.T, tx *gorm.DB)) {
	t.Helper()

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("Failed to begin transaction: %v", tx.Error)
	}

	defer func() {
		if err := tx.Rollback().Error; err != nil {
			t.Logf("Warning: failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
