package database

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/redact"
	"github.com/phrazzld/parky-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTrailStore implements the store.TrailStore interface on top of the
// persistence gateway. Every read preloads the owning park.
type GormTrailStore struct {
	gw     *Gateway
	logger *slog.Logger
}

// NewGormTrailStore creates a trail repository over gw.
// If logger is nil, a default logger will be used.
func NewGormTrailStore(gw *Gateway, logger *slog.Logger) *GormTrailStore {
	if gw == nil {
		panic("gateway cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GormTrailStore{
		gw:     gw,
		logger: logger.With(slog.String("component", "trail_store")),
	}
}

// Ensure GormTrailStore implements store.TrailStore interface
var _ store.TrailStore = (*GormTrailStore)(nil)

// List implements store.TrailStore.List
func (s *GormTrailStore) List(ctx context.Context) ([]*domain.Trail, error) {
	return s.find(ctx, s.gw.Trails(ctx), "list")
}

// ListByPark implements store.TrailStore.ListByPark
func (s *GormTrailStore) ListByPark(ctx context.Context, parkID int64) ([]*domain.Trail, error) {
	return s.find(ctx, s.gw.Trails(ctx).Where("park_id = ?", parkID), "list by park")
}

func (s *GormTrailStore) find(ctx context.Context, query *gorm.DB, op string) ([]*domain.Trail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var records []trailRecord
	if err := query.Preload("Park").Order("name ASC").Find(&records).Error; err != nil {
		log.Error("failed to query trails",
			slog.String("operation", op),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("trail", op, "query failed", MapError(err))
	}

	trails := make([]*domain.Trail, 0, len(records))
	for i := range records {
		trails = append(trails, records[i].toDomain())
	}

	log.Debug("queried trails", slog.String("operation", op), slog.Int("count", len(trails)))
	return trails, nil
}

// Get implements store.TrailStore.Get
func (s *GormTrailStore) Get(ctx context.Context, id int64) (*domain.Trail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var record trailRecord
	err := s.gw.Trails(ctx).Preload("Park").Where("id = ?", id).Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("trail not found", slog.Int64("trail_id", id))
			return nil, nil
		}
		log.Error("failed to get trail",
			slog.String("error", redact.Error(err)),
			slog.Int64("trail_id", id))
		return nil, store.NewStoreError("trail", "get", "query failed", MapError(err))
	}

	return record.toDomain(), nil
}

// Exists implements store.TrailStore.Exists
func (s *GormTrailStore) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.gw.Trails(ctx).Where("id = ?", id).Count(&count).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check trail existence",
			slog.String("error", redact.Error(err)),
			slog.Int64("trail_id", id))
		return false, store.NewStoreError("trail", "exists", "query failed", MapError(err))
	}
	return count > 0, nil
}

// ExistsByName implements store.TrailStore.ExistsByName
func (s *GormTrailStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.gw.Trails(ctx).
		Where("name_key = ?", domain.NormalizeName(name)).
		Count(&count).Error
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check trail name",
			slog.String("error", redact.Error(err)))
		return false, store.NewStoreError("trail", "exists by name", "query failed", MapError(err))
	}
	return count > 0, nil
}

// Create implements store.TrailStore.Create
func (s *GormTrailStore) Create(ctx context.Context, trail *domain.Trail) bool {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if trail.CreatedAt.IsZero() {
		trail.CreatedAt = time.Now().UTC()
	}
	record := newTrailRecord(trail)
	record.ID = 0

	ok, err := s.gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Omit(clause.Associations).Create(&record)
	})
	if !ok {
		level := slog.LevelError
		if IsUniqueViolation(err) || IsForeignKeyViolation(err) {
			level = slog.LevelWarn
		}
		log.Log(ctx, level, "failed to create trail",
			slog.String("error", redact.Error(err)),
			slog.String("name", trail.Name),
			slog.Int64("park_id", trail.ParkID))
		return false
	}

	trail.ID = record.ID
	log.Info("trail created",
		slog.Int64("trail_id", trail.ID),
		slog.Int64("park_id", trail.ParkID))
	return true
}

// Update implements store.TrailStore.Update
func (s *GormTrailStore) Update(ctx context.Context, trail *domain.Trail) bool {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ok, err := s.gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&trailRecord{}).
			Where("id = ?", trail.ID).
			Updates(map[string]interface{}{
				"name":       trail.Name,
				"name_key":   domain.NormalizeName(trail.Name),
				"distance":   trail.Distance,
				"elevation":  trail.Elevation,
				"difficulty": string(trail.Difficulty),
				"park_id":    trail.ParkID,
			})
	})
	if !ok {
		log.Error("failed to update trail",
			slog.String("error", redact.Error(err)),
			slog.Int64("trail_id", trail.ID))
		return false
	}

	log.Info("trail updated", slog.Int64("trail_id", trail.ID))
	return true
}

// Delete implements store.TrailStore.Delete
func (s *GormTrailStore) Delete(ctx context.Context, trail *domain.Trail) bool {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ok, err := s.gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", trail.ID).Delete(&trailRecord{})
	})
	if !ok {
		log.Error("failed to delete trail",
			slog.String("error", redact.Error(err)),
			slog.Int64("trail_id", trail.ID))
		return false
	}

	log.Info("trail deleted", slog.Int64("trail_id", trail.ID))
	return true
}
