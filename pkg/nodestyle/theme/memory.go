package theme

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory theme store.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	themes map[string]storedTheme
	closed bool
}

type storedTheme struct {
	doc      []byte
	revision string
	updated  time.Time
}

// NewMemoryStore creates a new in-memory theme store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		themes: make(map[string]storedTheme),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(name string, doc []byte) (Info, error) {
	if name == "" {
		return Info{}, ErrInvalidName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Info{}, ErrStoreClosed
	}

	// Copy data to avoid retaining caller's slice
	stored := make([]byte, len(doc))
	copy(stored, doc)

	t := storedTheme{
		doc:      stored,
		revision: uuid.New().String(),
		updated:  time.Now().UTC(),
	}
	m.themes[name] = t
	return t.info(name), nil
}

// Load implements Store.
func (m *MemoryStore) Load(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	t, ok := m.themes[name]
	if !ok {
		return nil, ErrNotFound
	}

	result := make([]byte, len(t.doc))
	copy(result, t.doc)
	return result, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.themes))
	for name, t := range m.themes {
		infos = append(infos, t.info(name))
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.themes, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.themes = nil
	return nil
}

// Len returns the number of stored themes.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.themes)
}

func (t storedTheme) info(name string) Info {
	return Info{
		Name:     name,
		Revision: t.revision,
		Updated:  t.updated,
		Size:     int64(len(t.doc)),
	}
}
