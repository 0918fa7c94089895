package store

import (
	"context"

	"github.com/phrazzld/parky-api/internal/domain"
)

// ParkStore defines the interface for park data persistence.
type ParkStore interface {
	// List returns every park ordered by name ascending.
	List(ctx context.Context) ([]*domain.Park, error)

	// First returns the park that sorts first by name, or nil with no error
	// when there are none.
	First(ctx context.Context) (*domain.Park, error)

	// Get returns the park with the given id, or nil with no error when no
	// such park exists.
	Get(ctx context.Context, id int64) (*domain.Park, error)

	// Exists reports whether a park with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ExistsByName reports whether a park with the given name exists,
	// ignoring case and surrounding whitespace.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create inserts the park and commits. On success the generated id is
	// written back to park.ID.
	Create(ctx context.Context, park *domain.Park) bool

	// Update overwrites the stored park with the same id and commits.
	// The creation timestamp is left unchanged.
	Update(ctx context.Context, park *domain.Park) bool

	// Delete removes the stored park with the same id, together with its
	// trails, and commits.
	Delete(ctx context.Context, park *domain.Park) bool
}
