package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// MockTrailStore implements store.TrailStore for testing. When Parks is
// set, reads attach the owning park the way the real store preloads it.
type MockTrailStore struct {
	Parks *MockParkStore

	// Custom behavior functions
	ListFn         func(ctx context.Context) ([]*domain.Trail, error)
	ListByParkFn   func(ctx context.Context, parkID int64) ([]*domain.Trail, error)
	GetFn          func(ctx context.Context, id int64) (*domain.Trail, error)
	ExistsFn       func(ctx context.Context, id int64) (bool, error)
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	CreateFn       func(ctx context.Context, trail *domain.Trail) bool
	UpdateFn       func(ctx context.Context, trail *domain.Trail) bool
	DeleteFn       func(ctx context.Context, trail *domain.Trail) bool

	mu     sync.Mutex
	trails map[int64]domain.Trail
	nextID int64
	calls  map[string]int
}

var _ store.TrailStore = (*MockTrailStore)(nil)

// NewMockTrailStore returns an in-memory trail store seeded with trails.
func NewMockTrailStore(parks *MockParkStore, trails ...*domain.Trail) *MockTrailStore {
	m := &MockTrailStore{Parks: parks, trails: map[int64]domain.Trail{}, calls: map[string]int{}}
	for _, t := range trails {
		m.put(t)
	}
	return m
}

func (m *MockTrailStore) put(t *domain.Trail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.trails == nil {
		m.trails = map[int64]domain.Trail{}
	}
	if t.ID == 0 {
		m.nextID++
		t.ID = m.nextID
	} else if t.ID > m.nextID {
		m.nextID = t.ID
	}
	stored := *t
	stored.Park = nil
	m.trails[t.ID] = stored
}

func (m *MockTrailStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockTrailStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Len returns the number of stored trails.
func (m *MockTrailStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.trails)
}

func (m *MockTrailStore) withPark(t domain.Trail) *domain.Trail {
	if m.Parks != nil {
		t.Park = m.Parks.Snapshot(t.ParkID)
	}
	return &t
}

func (m *MockTrailStore) sorted(keep func(domain.Trail) bool) []*domain.Trail {
	m.mu.Lock()
	snapshot := make([]domain.Trail, 0, len(m.trails))
	for _, t := range m.trails {
		if keep(t) {
			snapshot = append(snapshot, t)
		}
	}
	m.mu.Unlock()

	out := make([]*domain.Trail, 0, len(snapshot))
	for _, t := range snapshot {
		out = append(out, m.withPark(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// List implements store.TrailStore.
func (m *MockTrailStore) List(ctx context.Context) ([]*domain.Trail, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.sorted(func(domain.Trail) bool { return true }), nil
}

// ListByPark implements store.TrailStore.
func (m *MockTrailStore) ListByPark(ctx context.Context, parkID int64) ([]*domain.Trail, error) {
	m.record("ListByPark")
	if m.ListByParkFn != nil {
		return m.ListByParkFn(ctx, parkID)
	}
	return m.sorted(func(t domain.Trail) bool { return t.ParkID == parkID }), nil
}

// Get implements store.TrailStore.
func (m *MockTrailStore) Get(ctx context.Context, id int64) (*domain.Trail, error) {
	m.record("Get")
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	m.mu.Lock()
	t, ok := m.trails[id]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return m.withPark(t), nil
}

// Exists implements store.TrailStore.
func (m *MockTrailStore) Exists(ctx context.Context, id int64) (bool, error) {
	m.record("Exists")
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.trails[id]
	return ok, nil
}

// ExistsByName implements store.TrailStore.
func (m *MockTrailStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	m.record("ExistsByName")
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trails {
		if domain.NormalizeName(t.Name) == domain.NormalizeName(name) {
			return true, nil
		}
	}
	return false, nil
}

// Create implements store.TrailStore. Without Parks every park id is
// accepted; with it, an unknown park fails like a foreign key violation.
func (m *MockTrailStore) Create(ctx context.Context, trail *domain.Trail) bool {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, trail)
	}
	if m.Parks != nil && m.Parks.Snapshot(trail.ParkID) == nil {
		return false
	}
	trail.ID = 0
	m.put(trail)
	return true
}

// Update implements store.TrailStore.
func (m *MockTrailStore) Update(ctx context.Context, trail *domain.Trail) bool {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, trail)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.trails[trail.ID]
	if !ok {
		return false
	}
	updated := *trail
	updated.Park = nil
	updated.CreatedAt = existing.CreatedAt
	m.trails[trail.ID] = updated
	return true
}

// Delete implements store.TrailStore.
func (m *MockTrailStore) Delete(ctx context.Context, trail *domain.Trail) bool {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, trail)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trails[trail.ID]; !ok {
		return false
	}
	delete(m.trails, trail.ID)
	return true
}
