package domain

import (
	"strings"
	"time"
)

// Park is a national park. Its name is unique among parks, compared
// case-insensitively with surrounding whitespace ignored.
type Park struct {
	ID          int64
	Name        string
	State       string
	Picture     []byte
	CreatedAt   time.Time
	Established time.Time
}

// NewPark creates a Park stamped with the current UTC time as its creation date.
// Returns an error if validation fails.
func NewPark(name, state string, established time.Time, picture []byte) (*Park, error) {
	park := &Park{
		Name:        name,
		State:       state,
		Picture:     picture,
		CreatedAt:   time.Now().UTC(),
		Established: established,
	}

	if err := park.Validate(); err != nil {
		return nil, err
	}

	return park, nil
}

// Validate checks if the Park has valid data.
func (p *Park) Validate() error {
	if p.ID < 0 {
		return NewValidationError("id", "cannot be negative", ErrInvalidID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if strings.TrimSpace(p.State) == "" {
		return NewValidationError("state", "cannot be empty", nil)
	}
	return nil
}

// NormalizeName returns the form of a park or trail name used for uniqueness
// comparisons: lower-cased with surrounding whitespace removed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
