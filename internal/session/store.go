package session

import (
	"sync"
	"time"

	"copper_shop/internal/models"
)

// Record is the server-side state referenced by a session token: the
// serialized principal plus its inactivity deadline. Only the
// identifier and email are stored, never the password hash.
type Record struct {
	Principal models.Principal
	Deadline  time.Time
}

// Store abstracts session persistence so sessions can live in memory
// (default) or in a backing store shared across instances.
type Store interface {
	// Put creates or replaces the record for token.
	Put(token string, rec Record)
	// Get retrieves the record for token; false if absent.
	Get(token string) (Record, bool)
	// Delete removes the record for token. Deleting an absent token is a no-op.
	Delete(token string)
	// DeleteExpired removes every record whose deadline is at or before
	// now and returns how many were removed.
	DeleteExpired(now time.Time) int
}

// MemoryStore is an in-memory Store safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (s *MemoryStore) Put(token string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[token] = rec
}

func (s *MemoryStore) Get(token string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[token]
	return rec, ok
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
}

func (s *MemoryStore) DeleteExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, rec := range s.records {
		if !rec.Deadline.After(now) {
			delete(s.records, token)
			removed++
		}
	}
	return removed
}
