package history

import (
	"sync"

	"github.com/thatboisuss/ytmp3/internal/model"
)

// Store holds completed download entries, newest first
type Store struct {
	entries []*model.HistoryEntry
	mutex   sync.RWMutex
	onsave  func() // callback for UI updates
}

// NewStore creates an empty history store
func NewStore() *Store {
	return &Store{}
}

// SetUpdateCallback sets the callback invoked after every mutation
func (s *Store) SetUpdateCallback(callback func()) {
	s.onsave = callback
}

// Prepend adds an entry at the head of the list
func (s *Store) Prepend(entry *model.HistoryEntry) {
	s.mutex.Lock()
	s.entries = append([]*model.HistoryEntry{entry}, s.entries...)
	s.mutex.Unlock()

	s.notifyUpdate()
}

// Clear removes all entries
func (s *Store) Clear() {
	s.mutex.Lock()
	s.entries = nil
	s.mutex.Unlock()

	s.notifyUpdate()
}

// Entries returns a copy of the list, newest first
func (s *Store) Entries() []*model.HistoryEntry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries := make([]*model.HistoryEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of stored entries
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.entries)
}

// notifyUpdate calls the update callback if set
func (s *Store) notifyUpdate() {
	if s.onsave != nil {
		s.onsave()
	}
}
