package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/crew/internal/randomuser"
)

// Snapshot represents the outcome of the most recent fetch.
type Snapshot struct {
	Users     []randomuser.User
	Loaded    bool // a fetch has completed successfully
	Pending   bool // a fetch has started and not yet finished
	FetchedAt time.Time
	LastError error
}

// Failed reports whether the last fetch ended in an error.
func (s Snapshot) Failed() bool {
	return s.LastError != nil
}

// Store coordinates the fetch goroutine writing results and readers.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin marks a fetch as in flight.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Pending = true
}

// Update records a fetch outcome. A successful fetch replaces the users
// wholesale. When err is non-nil the previous users are kept but the error is
// recorded for visibility.
func (s *Store) Update(users []randomuser.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Pending = false
	s.snapshot.FetchedAt = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Users = cloneUsers(users)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Users = cloneUsers(s.snapshot.Users)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneUsers(users []randomuser.User) []randomuser.User {
	if len(users) == 0 {
		return nil
	}
	dup := make([]randomuser.User, len(users))
	copy(dup, users)
	return dup
}
