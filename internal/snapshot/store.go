package snapshot

import (
	"sync"

	"github-streak-viewer/internal/stats"
)

// Store keeps the latest StatsRecord per login. A new refresh replaces the
// prior record wholesale; records are never patched in place.
type Store struct {
	mu      sync.RWMutex
	records map[string]*stats.StatsRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]*stats.StatsRecord),
	}
}

// Put replaces the stored record for the record's login.
func (s *Store) Put(record *stats.StatsRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Login] = record
}

// Get returns the latest record for a login, if one exists.
func (s *Store) Get(login string) (*stats.StatsRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[login]
	return record, ok
}

// Logins lists the logins with a stored record.
func (s *Store) Logins() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logins := make([]string, 0, len(s.records))
	for login := range s.records {
		logins = append(logins, login)
	}
	return logins
}
