package database

import (
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
)

// parkRecord is the persisted form of a park. NameKey is the normalized
// name the uniqueness index is built on.
type parkRecord struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	NameKey     string
	State       string
	Picture     []byte
	CreatedAt   time.Time
	Established time.Time
}

func (parkRecord) TableName() string { return "parks" }

// trailRecord is the persisted form of a trail. Park is filled only when the
// query preloads it.
type trailRecord struct {
	ID         int64 `gorm:"primaryKey"`
	Name       string
	NameKey    string
	Distance   float64
	Elevation  float64
	Difficulty string
	CreatedAt  time.Time
	ParkID     int64
	Park       *parkRecord `gorm:"foreignKey:ParkID"`
}

func (trailRecord) TableName() string { return "trails" }

func newParkRecord(p *domain.Park) parkRecord {
	return parkRecord{
		ID:          p.ID,
		Name:        p.Name,
		NameKey:     domain.NormalizeName(p.Name),
		State:       p.State,
		Picture:     p.Picture,
		CreatedAt:   p.CreatedAt,
		Established: p.Established,
	}
}

func (r *parkRecord) toDomain() *domain.Park {
	return &domain.Park{
		ID:          r.ID,
		Name:        r.Name,
		State:       r.State,
		Picture:     r.Picture,
		CreatedAt:   r.CreatedAt.UTC(),
		Established: r.Established.UTC(),
	}
}

func newTrailRecord(t *domain.Trail) trailRecord {
	return trailRecord{
		ID:         t.ID,
		Name:       t.Name,
		NameKey:    domain.NormalizeName(t.Name),
		Distance:   t.Distance,
		Elevation:  t.Elevation,
		Difficulty: string(t.Difficulty),
		CreatedAt:  t.CreatedAt,
		ParkID:     t.ParkID,
	}
}

func (r *trailRecord) toDomain() *domain.Trail {
	trail := &domain.Trail{
		ID:         r.ID,
		Name:       r.Name,
		Distance:   r.Distance,
		Elevation:  r.Elevation,
		Difficulty: domain.Difficulty(r.Difficulty),
		CreatedAt:  r.CreatedAt.UTC(),
		ParkID:     r.ParkID,
	}
	if r.Park != nil {
		trail.Park = r.Park.toDomain()
	}
	return trail
}
