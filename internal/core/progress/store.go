package progress

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrInsufficientStars is returned when spending more stars than are held.
var ErrInsufficientStars = errors.New("not enough stars")

// Store owns the in-memory State and writes it through to a Backend after
// every mutation. Single writer, last write wins.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	state   State

	// OnChange is called after every successful mutation (for UI updates)
	OnChange func(State)
}

// Open creates a store over backend and loads the saved record.
func Open(backend Backend) *Store {
	s := &Store{backend: backend, state: NewState()}
	s.Load()
	return s
}

// Load replaces the in-memory state with the stored record. An absent or
// unreadable record yields the zero state; this is never reported as an error.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = NewState()
	data, err := s.backend.Read()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Warning: could not read saved progress, starting fresh: %v", err)
		}
		return
	}

	state, err := decode(data)
	if err != nil {
		log.Printf("Warning: saved progress is malformed, starting fresh: %v", err)
		return
	}
	s.state = state
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update applies fn to a copy of the state. If fn returns an error nothing
// changes. Otherwise the copy becomes current and is persisted wholesale.
// A persist failure is returned but the in-memory change is kept.
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	next.normalize()
	s.state = next
	persistErr := s.persistLocked()
	onChange := s.OnChange
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if onChange != nil {
		onChange(snapshot)
	}
	return persistErr
}

// Persist writes the current state to the backend.
func (s *Store) Persist() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	data, err := encode(s.state)
	if err != nil {
		return err
	}
	if err := s.backend.Write(data); err != nil {
		log.Printf("Warning: failed to save progress: %v", err)
		return fmt.Errorf("failed to persist progress: %w", err)
	}
	return nil
}

// --- Convenience mutations ---

// AddStars adds n stars.
func (s *Store) AddStars(n int) error {
	return s.Update(func(st *State) error {
		st.Stars += n
		return nil
	})
}

// SpendStar removes one star, or returns ErrInsufficientStars leaving state unchanged.
func (s *Store) SpendStar() error {
	return s.Update(func(st *State) error {
		if st.Stars < 1 {
			return ErrInsufficientStars
		}
		st.Stars--
		return nil
	})
}

// Unlock flags a body system as unlocked.
func (s *Store) Unlock(id string) error {
	return s.Update(func(st *State) error {
		st.Unlocked.Put(id)
		return nil
	})
}

// Repair flags a body system as repaired (and therefore unlocked).
func (s *Store) Repair(id string) error {
	return s.Update(func(st *State) error {
		st.Repaired.Put(id)
		st.Unlocked.Put(id)
		return nil
	})
}

// LearnFacts appends facts that are not yet known.
func (s *Store) LearnFacts(facts ...string) error {
	return s.Update(func(st *State) error {
		for _, f := range facts {
			st.LearnFact(f)
		}
		return nil
	})
}

// Reset clears all progress (for a new game).
func (s *Store) Reset() error {
	return s.Update(func(st *State) error {
		*st = NewState()
		return nil
	})
}
