package dto

import (
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
)

// Trail is the read shape of a trail, embedding its owning park when loaded.
type Trail struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Distance   float64   `json:"distance"`
	Elevation  float64   `json:"elevation"`
	Difficulty string    `json:"difficulty"`
	Created    time.Time `json:"created"`
	ParkID     int64     `json:"park_id"`
	Park       *Park     `json:"park,omitempty"`
}

// TrailCreate is the payload of the create trail endpoint.
type TrailCreate struct {
	Name       string     `json:"name"       validate:"required,max=200"`
	Distance   float64    `json:"distance"   validate:"gte=0"`
	Elevation  float64    `json:"elevation"  validate:"gte=0"`
	Difficulty string     `json:"difficulty" validate:"required,oneof=easy moderate difficult expert"`
	Created    *time.Time `json:"created,omitempty"`
	ParkID     int64      `json:"park_id"    validate:"required,gt=0"`
}

// TrailUpdate is the payload of the update trail endpoint. ID must equal
// the id in the request path.
type TrailUpdate struct {
	ID         int64   `json:"id"         validate:"required,gt=0"`
	Name       string  `json:"name"       validate:"required,max=200"`
	Distance   float64 `json:"distance"   validate:"gte=0"`
	Elevation  float64 `json:"elevation"  validate:"gte=0"`
	Difficulty string  `json:"difficulty" validate:"required,oneof=easy moderate difficult expert"`
	ParkID     int64   `json:"park_id"    validate:"required,gt=0"`
}

// NewTrail maps a domain trail to its read shape.
func NewTrail(t *domain.Trail) Trail {
	out := Trail{
		ID:         t.ID,
		Name:       t.Name,
		Distance:   t.Distance,
		Elevation:  t.Elevation,
		Difficulty: string(t.Difficulty),
		Created:    t.CreatedAt,
		ParkID:     t.ParkID,
	}
	if t.Park != nil {
		park := NewPark(t.Park)
		out.Park = &park
	}
	return out
}

// NewTrails maps a list of domain trails. The result is never nil.
func NewTrails(trails []*domain.Trail) []Trail {
	out := make([]Trail, 0, len(trails))
	for _, t := range trails {
		out = append(out, NewTrail(t))
	}
	return out
}

// ToDomain builds the trail to insert. now stamps the creation time when the
// payload carries none.
func (c TrailCreate) ToDomain(now time.Time) *domain.Trail {
	created := now.UTC()
	if c.Created != nil && !c.Created.IsZero() {
		created = c.Created.UTC()
	}
	return &domain.Trail{
		Name:       c.Name,
		Distance:   c.Distance,
		Elevation:  c.Elevation,
		Difficulty: domain.Difficulty(c.Difficulty),
		CreatedAt:  created,
		ParkID:     c.ParkID,
	}
}

// ToDomain builds the replacement trail record.
func (u TrailUpdate) ToDomain() *domain.Trail {
	return &domain.Trail{
		ID:         u.ID,
		Name:       u.Name,
		Distance:   u.Distance,
		Elevation:  u.Elevation,
		Difficulty: domain.Difficulty(u.Difficulty),
		ParkID:     u.ParkID,
	}
}

// CreateFromTrail converts a read shape into the create payload.
func CreateFromTrail(t Trail) TrailCreate {
	c := TrailCreate{
		Name:       t.Name,
		Distance:   t.Distance,
		Elevation:  t.Elevation,
		Difficulty: t.Difficulty,
		ParkID:     t.ParkID,
	}
	if !t.Created.IsZero() {
		created := t.Created
		c.Created = &created
	}
	return c
}

// UpdateFromTrail converts a read shape into the update payload.
func UpdateFromTrail(t Trail) TrailUpdate {
	return TrailUpdate{
		ID:         t.ID,
		Name:       t.Name,
		Distance:   t.Distance,
		Elevation:  t.Elevation,
		Difficulty: t.Difficulty,
		ParkID:     t.ParkID,
	}
}
