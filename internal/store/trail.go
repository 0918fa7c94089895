package store

import (
	"context"

	"github.com/phrazzld/parky-api/internal/domain"
)

// TrailStore defines the interface for trail data persistence.
// Trails returned by reads carry their owning park in Trail.Park.
type TrailStore interface {
	// List returns every trail ordered by name ascending.
	List(ctx context.Context) ([]*domain.Trail, error)

	// ListByPark returns the trails of one park ordered by name ascending.
	// The result is empty, not nil, when the park has no trails.
	ListByPark(ctx context.Context, parkID int64) ([]*domain.Trail, error)

	// Get returns the trail with the given id, or nil with no error when no
	// such trail exists.
	Get(ctx context.Context, id int64) (*domain.Trail, error)

	// Exists reports whether a trail with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ExistsByName reports whether a trail with the given name exists,
	// ignoring case and surrounding whitespace.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create inserts the trail and commits. On success the generated id is
	// written back to trail.ID.
	Create(ctx context.Context, trail *domain.Trail) bool

	// Update overwrites the stored trail with the same id and commits.
	Update(ctx context.Context, trail *domain.Trail) bool

	// Delete removes the stored trail with the same id and commits.
	Delete(ctx context.Context, trail *domain.Trail) bool
}
