package store

import (
	"context"
	"sort"
	"sync"

	"github.com/hasbyte1/go-vectors/vector"
)

// MemoryStore keeps collections in memory; useful for tests
type MemoryStore struct {
	collections map[string][]vector.Vector
	mu          sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]vector.Vector),
	}
}

// Save stores a copy of c under name
func (m *MemoryStore) Save(ctx context.Context, name string, c *vector.Collection) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.collections[name] = c.All()
	return nil
}

// Load returns a copy of the collection stored under name
func (m *MemoryStore) Load(ctx context.Context, name string) (*vector.Collection, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items, ok := m.collections[name]
	if !ok {
		return nil, notFound(name)
	}
	return vector.NewCollection(items...), nil
}

// Delete removes the collection stored under name
func (m *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[name]; !ok {
		return notFound(name)
	}
	delete(m.collections, name)
	return nil
}

// List returns the stored names in ascending order
func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op
func (m *MemoryStore) Close() error { return nil }
