package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/parky-api/internal/platform/logger"
	"gorm.io/gorm"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *gorm.DB) error

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// Otherwise, the transaction is committed.
// A panic inside fn rolls the transaction back and is then re-raised.
func RunInTransaction(ctx context.Context, db *gorm.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("failed to begin transaction",
			slog.String("error", tx.Error.Error()))
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback().Error; txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", txErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic",
					slog.Any("panic", p))
			}
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rollbackErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rollbackErr,
				err,
			)
		}
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug("transaction committed successfully")
	return nil
}
