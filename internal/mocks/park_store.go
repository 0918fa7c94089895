package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// MockParkStore implements store.ParkStore for testing.
type MockParkStore struct {
	// Custom behavior functions
	ListFn         func(ctx context.Context) ([]*domain.Park, error)
	FirstFn        func(ctx context.Context) (*domain.Park, error)
	GetFn          func(ctx context.Context, id int64) (*domain.Park, error)
	ExistsFn       func(ctx context.Context, id int64) (bool, error)
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	CreateFn       func(ctx context.Context, park *domain.Park) bool
	UpdateFn       func(ctx context.Context, park *domain.Park) bool
	DeleteFn       func(ctx context.Context, park *domain.Park) bool

	mu     sync.Mutex
	parks  map[int64]domain.Park
	nextID int64
	calls  map[string]int
}

var _ store.ParkStore = (*MockParkStore)(nil)

// NewMockParkStore returns an in-memory park store seeded with parks.
// Seeded parks keep their ids.
func NewMockParkStore(parks ...*domain.Park) *MockParkStore {
	m := &MockParkStore{parks: map[int64]domain.Park{}, calls: map[string]int{}}
	for _, p := range parks {
		m.put(p)
	}
	return m
}

func (m *MockParkStore) put(p *domain.Park) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.parks == nil {
		m.parks = map[int64]domain.Park{}
	}
	if p.ID == 0 {
		m.nextID++
		p.ID = m.nextID
	} else if p.ID > m.nextID {
		m.nextID = p.ID
	}
	m.parks[p.ID] = *p
}

func (m *MockParkStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockParkStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Snapshot returns a copy of the stored park with id, or nil.
func (m *MockParkStore) Snapshot(id int64) *domain.Park {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parks[id]
	if !ok {
		return nil
	}
	return &p
}

// Len returns the number of stored parks.
func (m *MockParkStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.parks)
}

// List implements store.ParkStore.
func (m *MockParkStore) List(ctx context.Context) ([]*domain.Park, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Park, 0, len(m.parks))
	for _, p := range m.parks {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// First implements store.ParkStore. Without FirstFn it returns the head of
// List, so a ListFn override also drives it.
func (m *MockParkStore) First(ctx context.Context) (*domain.Park, error) {
	m.record("First")
	if m.FirstFn != nil {
		return m.FirstFn(ctx)
	}

	parks, err := m.List(ctx)
	if err != nil || len(parks) == 0 {
		return nil, err
	}
	return parks[0], nil
}

// Get implements store.ParkStore.
func (m *MockParkStore) Get(ctx context.Context, id int64) (*domain.Park, error) {
	m.record("Get")
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Snapshot(id), nil
}

// Exists implements store.ParkStore.
func (m *MockParkStore) Exists(ctx context.Context, id int64) (bool, error) {
	m.record("Exists")
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	return m.Snapshot(id) != nil, nil
}

// ExistsByName implements store.ParkStore.
func (m *MockParkStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	m.record("ExistsByName")
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.parks {
		if domain.NormalizeName(p.Name) == domain.NormalizeName(name) {
			return true, nil
		}
	}
	return false, nil
}

// Create implements store.ParkStore.
func (m *MockParkStore) Create(ctx context.Context, park *domain.Park) bool {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, park)
	}
	park.ID = 0
	m.put(park)
	return true
}

// Update implements store.ParkStore.
func (m *MockParkStore) Update(ctx context.Context, park *domain.Park) bool {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, park)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.parks[park.ID]
	if !ok {
		return false
	}
	updated := *park
	updated.CreatedAt = existing.CreatedAt
	m.parks[park.ID] = updated
	return true
}

// Delete implements store.ParkStore.
func (m *MockParkStore) Delete(ctx context.Context, park *domain.Park) bool {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, park)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.parks[park.ID]; !ok {
		return false
	}
	delete(m.parks, park.ID)
	return true
}
