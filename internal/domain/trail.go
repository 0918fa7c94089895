package domain

import (
	"strings"
	"time"
)

// Difficulty classifies how demanding a trail is.
type Difficulty string

// Known trail difficulties, from least to most demanding.
const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyModerate  Difficulty = "moderate"
	DifficultyDifficult Difficulty = "difficult"
	DifficultyExpert    Difficulty = "expert"
)

// Difficulties lists every valid Difficulty in ascending order.
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyModerate,
	DifficultyDifficult,
	DifficultyExpert,
}

// ParseDifficulty converts s (case-insensitive) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", NewValidationError("difficulty", "must be one of easy, moderate, difficult, expert", ErrInvalidDifficulty)
	}
	return d, nil
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyDifficult, DifficultyExpert:
		return true
	default:
		return false
	}
}

// Trail is a trail inside exactly one national park.
type Trail struct {
	ID         int64
	Name       string
	Distance   float64
	Elevation  float64
	Difficulty Difficulty
	CreatedAt  time.Time
	ParkID     int64

	// Park is the owning park when loaded alongside the trail; nil otherwise.
	Park *Park
}

// Validate checks if the Trail has valid data.
func (t *Trail) Validate() error {
	if t.ID < 0 {
		return NewValidationError("id", "cannot be negative", ErrInvalidID)
	}
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if t.Distance < 0 {
		return NewValidationError("distance", "cannot be negative", nil)
	}
	if t.Elevation < 0 {
		return NewValidationError("elevation", "cannot be negative", nil)
	}
	if !t.Difficulty.Valid() {
		return NewValidationError("difficulty", "must be one of easy, moderate, difficult, expert", ErrInvalidDifficulty)
	}
	if t.ParkID <= 0 {
		return NewValidationError("park_id", "is required", ErrInvalidID)
	}
	return nil
}
