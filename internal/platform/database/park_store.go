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

// GormParkStore implements the store.ParkStore interface on top of the
// persistence gateway.
type GormParkStore struct {
	gw     *Gateway
	logger *slog.Logger
}

// NewGormParkStore creates a park repository over gw.
// If logger is nil, a default logger will be used.
func NewGormParkStore(gw *Gateway, logger *slog.Logger) *GormParkStore {
	if gw == nil {
		panic("gateway cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GormParkStore{
		gw:     gw,
		logger: logger.With(slog.String("component", "park_store")),
	}
}

// Ensure GormParkStore implements store.ParkStore interface
var _ store.ParkStore = (*GormParkStore)(nil)

// List implements store.ParkStore.List
func (s *GormParkStore) List(ctx context.Context) ([]*domain.Park, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var records []parkRecord
	if err := s.gw.Parks(ctx).Order("name ASC").Find(&records).Error; err != nil {
		log.Error("failed to list parks", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("park", "list", "query failed", MapError(err))
	}

	parks := make([]*domain.Park, 0, len(records))
	for i := range records {
		parks = append(parks, records[i].toDomain())
	}

	log.Debug("listed parks", slog.Int("count", len(parks)))
	return parks, nil
}

// First implements store.ParkStore.First
func (s *GormParkStore) First(ctx context.Context) (*domain.Park, error) {
	var record parkRecord
	err := s.gw.Parks(ctx).Order("name ASC").Limit(1).Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get first park",
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("park", "first", "query failed", MapError(err))
	}

	return record.toDomain(), nil
}

// Get implements store.ParkStore.Get
func (s *GormParkStore) Get(ctx context.Context, id int64) (*domain.Park, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var record parkRecord
	err := s.gw.Parks(ctx).Where("id = ?", id).Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("park not found", slog.Int64("park_id", id))
			return nil, nil
		}
		log.Error("failed to get park",
			slog.String("error", redact.Error(err)),
			slog.Int64("park_id", id))
		return nil, store.NewStoreError("park", "get", "query failed", MapError(err))
	}

	return record.toDomain(), nil
}

// Exists implements store.ParkStore.Exists
func (s *GormParkStore) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.gw.Parks(ctx).Where("id = ?", id).Count(&count).Error; err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check park existence",
			slog.String("error", redact.Error(err)),
			slog.Int64("park_id", id))
		return false, store.NewStoreError("park", "exists", "query failed", MapError(err))
	}
	return count > 0, nil
}

// ExistsByName implements store.ParkStore.ExistsByName
func (s *GormParkStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.gw.Parks(ctx).
		Where("name_key = ?", domain.NormalizeName(name)).
		Count(&count).Error
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check park name",
			slog.String("error", redact.Error(err)))
		return false, store.NewStoreError("park", "exists by name", "query failed", MapError(err))
	}
	return count > 0, nil
}

// Create implements store.ParkStore.Create
func (s *GormParkStore) Create(ctx context.Context, park *domain.Park) bool {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if park.CreatedAt.IsZero() {
		park.CreatedAt = time.Now().UTC()
	}
	record := newParkRecord(park)
	record.ID = 0

	ok, err := s.gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Omit(clause.Associations).Create(&record)
	})
	if !ok {
		level := slog.LevelError
		if IsUniqueViolation(err) {
			level = slog.LevelWarn
		}
		log.Log(ctx, level, "failed to create park",
			slog.String("error", redact.Error(err)),
			slog.String("name", park.Name))
		return false
	}

	park.ID = record.ID
	log.Info("park created", slog.Int64("park_id", park.ID))
	return true
}

// Update implements store.ParkStore.Update
func (s *GormParkStore) Update(ctx context.Context, park *domain.Park) bool {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ok, err := s.gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&parkRecord{}).
			Where("id = ?", park.ID).
			Updates(map[string]interface{}{
				"name":        park.Name,
				"name_key":    domain.NormalizeName(park.Name),
				"state":       park.State,
				"picture":     park.Picture,
				"established": park.Established,
			})
	})
	if !ok {
		log.Error("failed to update park",
			slog.String("error", redact.Error(err)),
			slog.Int64("park_id", park.ID))
		return false
	}

	log.Info("park updated", slog.Int64("park_id", park.ID))
	return true
}

// Delete implements store.ParkStore.Delete
func (s *GormParkStore) Delete(ctx context.Context, park *domain.Park) bool {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ok, err := s.gw.Save(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", park.ID).Delete(&parkRecord{})
	})
	if !ok {
		log.Error("failed to delete park",
			slog.String("error", redact.Error(err)),
			slog.Int64("park_id", park.ID))
		return false
	}

	log.Info("park deleted", slog.Int64("park_id", park.ID))
	return true
}
