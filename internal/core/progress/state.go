// Package progress holds the player's persistent progression (stars, unlocked
// and repaired body systems, learned facts) and keeps it saved.
package progress

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// State is the progression that survives across levels and sessions.
type State struct {
	// Stars is the spendable currency. Never negative.
	Stars int

	// Unlocked holds body systems open for play.
	Unlocked mapset.Set[string]

	// Repaired holds body systems the player has spent a star on.
	Repaired mapset.Set[string]

	// Facts are the learned facts, in the order they were learned, without duplicates.
	Facts []string
}

// NewState returns the zero progression.
func NewState() State {
	return State{
		Unlocked: mapset.New[string](),
		Repaired: mapset.New[string](),
		Facts:    []string{},
	}
}

// IsUnlocked reports whether a system has been unlocked.
func (s State) IsUnlocked(id string) bool { return s.Unlocked.Has(id) }

// IsRepaired reports whether a system has been repaired.
func (s State) IsRepaired(id string) bool { return s.Repaired.Has(id) }

// UnlockedIDs returns the unlocked system ids, sorted.
func (s State) UnlockedIDs() []string { return sortedKeys(s.Unlocked) }

// RepairedIDs returns the repaired system ids, sorted.
func (s State) RepairedIDs() []string { return sortedKeys(s.Repaired) }

// HasFact reports whether a fact has already been learned.
func (s State) HasFact(fact string) bool {
	for _, f := range s.Facts {
		if f == fact {
			return true
		}
	}
	return false
}

// LearnFact appends a fact unless it is already known. Returns true if it was new.
func (s *State) LearnFact(fact string) bool {
	if fact == "" || s.HasFact(fact) {
		return false
	}
	s.Facts = append(s.Facts, fact)
	return true
}

// Clone creates a deep copy of the state
func (s State) Clone() State {
	clone := NewState()
	clone.Stars = s.Stars
	s.Unlocked.Each(clone.Unlocked.Put)
	s.Repaired.Each(clone.Repaired.Put)
	clone.Facts = append(clone.Facts, s.Facts...)
	return clone
}

// normalize enforces the invariants after a load or a mutation.
func (s *State) normalize() {
	if s.Stars < 0 {
		s.Stars = 0
	}
	facts := s.Facts
	s.Facts = make([]string, 0, len(facts))
	for _, f := range facts {
		s.LearnFact(f)
	}
}

func sortedKeys(set mapset.Set[string]) []string {
	keys := make([]string, 0, set.Size())
	set.Each(func(k string) {
		keys = append(keys, k)
	})
	sort.Strings(keys)
	return keys
}
