// Package hub is the body map between levels: one entry per body system,
// repaired with stars and replayed at will.
package hub

import (
	"errors"
	"fmt"
	"log"
	"time"

	"chosenoffset.com/micromedics/internal/core/progress"
	"chosenoffset.com/micromedics/internal/notice"
	"chosenoffset.com/micromedics/internal/simulation"
)

// Advisory errors. None of them change progress.
var (
	ErrUnknownSystem     = errors.New("unknown body system")
	ErrLocked            = errors.New("body system is locked")
	ErrAlreadyRepaired   = errors.New("body system is already repaired")
	ErrInsufficientStars = progress.ErrInsufficientStars
	ErrIncomplete        = errors.New("not every body system is repaired")
)

// Status is the state of one body-map entry.
type Status int

const (
	Locked Status = iota
	NeedsRepair
	Repaired
)

func (s Status) String() string {
	switch s {
	case Locked:
		return "locked"
	case NeedsRepair:
		return "needs repair"
	case Repaired:
		return "repaired"
	default:
		return "unknown"
	}
}

// Entry is one body system as shown on the map.
type Entry struct {
	System simulation.SystemConfig
	Status Status
}

// Stats is the header line of the map.
type Stats struct {
	Stars    int
	Unlocked int
	Facts    int
	Elapsed  time.Duration
}

// Hub applies body-map actions to the progress store.
type Hub struct {
	systems []simulation.SystemConfig
	store   *progress.Store
	notices *notice.Board
	elapsed func() time.Duration
}

// New creates a hub over systems (in display order). elapsed reports the
// session play time; notices may be nil.
func New(systems []simulation.SystemConfig, store *progress.Store, notices *notice.Board, elapsed func() time.Duration) *Hub {
	if elapsed == nil {
		elapsed = func() time.Duration { return 0 }
	}
	return &Hub{systems: systems, store: store, notices: notices, elapsed: elapsed}
}

// Entries returns every system with its current status.
func (h *Hub) Entries() []Entry {
	state := h.store.Snapshot()
	entries := make([]Entry, 0, len(h.systems))
	for _, sys := range h.systems {
		entries = append(entries, Entry{System: sys, Status: statusOf(sys, state)})
	}
	return entries
}

// Entry returns a single system by id.
func (h *Hub) Entry(id string) (Entry, error) {
	sys, ok := h.system(id)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownSystem, id)
	}
	return Entry{System: sys, Status: statusOf(sys, h.store.Snapshot())}, nil
}

// Stats returns the stars, unlock and fact counts and elapsed session time.
func (h *Hub) Stats() Stats {
	state := h.store.Snapshot()
	return Stats{
		Stars:    state.Stars,
		Unlocked: state.Unlocked.Size(),
		Facts:    len(state.Facts),
		Elapsed:  h.elapsed(),
	}
}

// Repair spends one star on a system, marks it repaired and unlocks the
// systems that depend on it, all as one saved mutation.
func (h *Hub) Repair(id string) error {
	entry, err := h.Entry(id)
	if err != nil {
		return err
	}
	name := entry.System.Name
	switch entry.Status {
	case Locked:
		h.notify("%s is locked", name)
		return fmt.Errorf("repair %s: %w", id, ErrLocked)
	case Repaired:
		h.notify("%s is already repaired", name)
		return fmt.Errorf("repair %s: %w", id, ErrAlreadyRepaired)
	}

	err = h.store.Update(func(st *progress.State) error {
		if st.Stars < 1 {
			return ErrInsufficientStars
		}
		st.Stars--
		st.Repaired.Put(id)
		st.Unlocked.Put(id)
		for _, sys := range h.systems {
			if sys.Prerequisite == id {
				st.Unlocked.Put(sys.ID)
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, ErrInsufficientStars):
		h.notify("Not enough stars to repair %s", name)
		return fmt.Errorf("repair %s: %w", id, err)
	case err != nil:
		h.notify("Progress could not be saved")
		return fmt.Errorf("repair %s: %w", id, err)
	}

	log.Printf("Hub: repaired %s", id)
	h.notify("%s repaired!", name)
	return nil
}

// Play returns the level for a system that is not locked.
func (h *Hub) Play(id string) (string, error) {
	entry, err := h.Entry(id)
	if err != nil {
		return "", err
	}
	if entry.Status == Locked {
		h.notify("%s is locked", entry.System.Name)
		return "", fmt.Errorf("play %s: %w", id, ErrLocked)
	}
	return entry.System.Level, nil
}

// Proceed reports whether the player may leave the map: every system must be repaired.
func (h *Hub) Proceed() error {
	for _, e := range h.Entries() {
		if e.Status != Repaired {
			h.notify("Repair every system before moving on")
			return ErrIncomplete
		}
	}
	return nil
}

func (h *Hub) system(id string) (simulation.SystemConfig, bool) {
	for _, sys := range h.systems {
		if sys.ID == id {
			return sys, true
		}
	}
	return simulation.SystemConfig{}, false
}

func (h *Hub) notify(format string, args ...any) {
	if h.notices == nil {
		return
	}
	h.notices.Show(fmt.Sprintf(format, args...))
}

func statusOf(sys simulation.SystemConfig, state progress.State) Status {
	switch {
	case state.IsRepaired(sys.ID):
		return Repaired
	case sys.Prerequisite != "" && !state.IsUnlocked(sys.Prerequisite) && !state.IsUnlocked(sys.ID):
		return Locked
	default:
		return NeedsRepair
	}
}
