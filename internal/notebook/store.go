package notebook

import "sync"

// Store is the hook a Notebook uses to load its initial notes and to hand
// off the full collection after every change.
type Store interface {
	Load() ([]Note, error)
	Save(notes []Note) error
}

// MemoryStore keeps notes for the lifetime of the process only.
type MemoryStore struct {
	mu    sync.Mutex
	notes []Note
	saves int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored notes.
func (s *MemoryStore) Load() ([]Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Note(nil), s.notes...), nil
}

// Save replaces the stored notes with a copy of notes.
func (s *MemoryStore) Save(notes []Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]Note(nil), notes...)
	s.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
