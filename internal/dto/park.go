package dto

import (
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
)

// Park is the read shape of a park. The picture is base64 encoded in JSON.
type Park struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Picture     []byte    `json:"picture,omitempty"`
	Created     time.Time `json:"created"`
	Established time.Time `json:"established"`
}

// ParkCreate is the payload of the create park endpoint.
// Created defaults to the time of the request when omitted.
type ParkCreate struct {
	Name        string     `json:"name"        validate:"required,max=200"`
	State       string     `json:"state"       validate:"required,max=100"`
	Picture     []byte     `json:"picture,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Established time.Time  `json:"established"`
}

// ParkUpdate is the payload of the update park endpoint. ID must equal the
// id in the request path.
type ParkUpdate struct {
	ID          int64     `json:"id"          validate:"required,gt=0"`
	Name        string    `json:"name"        validate:"required,max=200"`
	State       string    `json:"state"       validate:"required,max=100"`
	Picture     []byte    `json:"picture,omitempty"`
	Established time.Time `json:"established"`
}

// NewPark maps a domain park to its read shape.
func NewPark(p *domain.Park) Park {
	return Park{
		ID:          p.ID,
		Name:        p.Name,
		State:       p.State,
		Picture:     p.Picture,
		Created:     p.CreatedAt,
		Established: p.Established,
	}
}

// NewParks maps a list of domain parks. The result is never nil.
func NewParks(parks []*domain.Park) []Park {
	out := make([]Park, 0, len(parks))
	for _, p := range parks {
		out = append(out, NewPark(p))
	}
	return out
}

// ToDomain builds the park to insert. now stamps the creation time when the
// payload carries none.
func (c ParkCreate) ToDomain(now time.Time) *domain.Park {
	created := now.UTC()
	if c.Created != nil && !c.Created.IsZero() {
		created = c.Created.UTC()
	}
	return &domain.Park{
		Name:        c.Name,
		State:       c.State,
		Picture:     c.Picture,
		CreatedAt:   created,
		Established: c.Established.UTC(),
	}
}

// ToDomain builds the replacement park record.
func (u ParkUpdate) ToDomain() *domain.Park {
	return &domain.Park{
		ID:          u.ID,
		Name:        u.Name,
		State:       u.State,
		Picture:     u.Picture,
		Established: u.Established.UTC(),
	}
}

// CreateFromPark converts a read shape into the create payload.
func CreateFromPark(p Park) ParkCreate {
	c := ParkCreate{
		Name:        p.Name,
		State:       p.State,
		Picture:     p.Picture,
		Established: p.Established,
	}
	if !p.Created.IsZero() {
		created := p.Created
		c.Created = &created
	}
	return c
}

// UpdateFromPark converts a read shape into the update payload.
func UpdateFromPark(p Park) ParkUpdate {
	return ParkUpdate{
		ID:          p.ID,
		Name:        p.Name,
		State:       p.State,
		Picture:     p.Picture,
		Established: p.Established,
	}
}
