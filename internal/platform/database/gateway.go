package database

import (
	"context"
	"log/slog"

	"github.com/phrazzld/parky-api/internal/store"
	"gorm.io/gorm"
)

// Change is one pending mutation. It receives the transaction handle and
// returns the executed statement so its error and affected row count can be
// inspected.
type Change func(tx *gorm.DB) *gorm.DB

// Gateway mediates every read and write against the park and trail tables.
type Gateway struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGateway wraps an open GORM connection. It panics if db is nil.
func NewGateway(db *gorm.DB, logger *slog.Logger) *Gateway {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		db:     db,
		logger: logger.With(slog.String("component", "gateway")),
	}
}

// DB returns the underlying connection.
func (g *Gateway) DB() *gorm.DB {
	return g.db
}

// Parks returns a query over the parks table bound to ctx.
func (g *Gateway) Parks(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Model(&parkRecord{})
}

// Trails returns a query over the trails table bound to ctx.
func (g *Gateway) Trails(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Model(&trailRecord{})
}

// Save runs change in its own transaction and commits it. It reports true
// when the change affected at least one row; otherwise the transaction is
// rolled back and the error explains why.
func (g *Gateway) Save(ctx context.Context, change Change) (bool, error) {
	err := store.RunInTransaction(ctx, g.db, func(ctx context.Context, tx *gorm.DB) error {
		result := change(tx)
		if result.Error != nil {
			return MapError(result.Error)
		}
		if result.RowsAffected < 1 {
			return store.ErrNoRowsAffected
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
