package feed

import (
	"sync"

	"machine_monitoring/internal/models"
)

// Store keeps the latest broker reading per machine. Only the listener's run
// goroutine writes to it; readers get copies.
type Store struct {
	mu     sync.RWMutex
	latest map[string]models.Reading
}

func NewStore() *Store {
	return &Store{latest: make(map[string]models.Reading)}
}

// put replaces the machine's entry entirely.
func (s *Store) put(r models.Reading) {
	s.mu.Lock()
	s.latest[r.MachineID] = r
	s.mu.Unlock()
}

func (s *Store) Latest(machineID string) (models.Reading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.latest[machineID]
	return r, ok
}

// All returns a snapshot of every machine's latest reading.
func (s *Store) All() map[string]models.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Reading, len(s.latest))
	for k, v := range s.latest {
		out[k] = v
	}
	return out
}
