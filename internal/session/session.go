// Package session owns everything that lives for one play session: the
// progress store, the session clock and the HUD listeners.
package session

import (
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/micromedics/internal/core/progress"
	"chosenoffset.com/micromedics/internal/level"
	"chosenoffset.com/micromedics/internal/simulation"
)

// Snapshot is the read-only view pushed to the HUD.
type Snapshot struct {
	SessionID       string
	Score           int
	Health          int
	MaxHealth       int
	Energy          int
	EnergyGoal      int
	Level           string
	StarCount       int
	UnlockedSystems []string // sorted ids
	LearnedFacts    []string // in the order they were learned
	ElapsedSeconds  int
	PowerRemaining  time.Duration
	PowerFraction   float64
}

// Equal reports whether two snapshots show the same thing.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.SessionID == o.SessionID &&
		s.Score == o.Score &&
		s.Health == o.Health &&
		s.MaxHealth == o.MaxHealth &&
		s.Energy == o.Energy &&
		s.EnergyGoal == o.EnergyGoal &&
		s.Level == o.Level &&
		s.StarCount == o.StarCount &&
		s.ElapsedSeconds == o.ElapsedSeconds &&
		s.PowerRemaining == o.PowerRemaining &&
		s.PowerFraction == o.PowerFraction &&
		slices.Equal(s.UnlockedSystems, o.UnlockedSystems) &&
		slices.Equal(s.LearnedFacts, o.LearnedFacts)
}

// Listener receives snapshots. Listeners must not call back into the session.
type Listener func(Snapshot)

// Context is one play session. It is owned by the game manager and passed
// explicitly to whatever needs it.
type Context struct {
	ID    uuid.UUID
	Store *progress.Store

	// Now is the clock; tests replace it.
	Now func() time.Time

	started   time.Time
	listeners []Listener
	last      Snapshot
	published bool
}

// New starts a session over store.
func New(store *progress.Store) *Context {
	c := &Context{
		ID:    uuid.New(),
		Store: store,
		Now:   time.Now,
	}
	c.started = c.Now()
	log.Printf("Session %s started", c.ID)
	return c
}

// Elapsed returns the time since the session started.
func (c *Context) Elapsed() time.Duration {
	return c.Now().Sub(c.started)
}

// Subscribe registers a listener for snapshot pushes.
func (c *Context) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Snapshot builds the current snapshot from a run (zero Stats outside a level).
func (c *Context) Snapshot(run level.Stats) Snapshot {
	state := c.Store.Snapshot()
	snap := Snapshot{
		SessionID:       c.ID.String(),
		Score:           run.Score,
		Health:          run.Health,
		MaxHealth:       run.MaxHealth,
		Energy:          run.Energy,
		EnergyGoal:      run.EnergyGoal,
		Level:           run.Level,
		StarCount:       state.Stars,
		UnlockedSystems: state.UnlockedIDs(),
		LearnedFacts:    state.Facts,
		ElapsedSeconds:  int(c.Elapsed() / time.Second),
	}
	if run.PowerActive {
		snap.PowerRemaining = run.PowerRemaining
	}
	return snap
}

// Publish pushes a snapshot to every listener when it differs from the last
// one pushed. Returns the snapshot and whether it was pushed.
func (c *Context) Publish(run level.Stats, powerDuration time.Duration) (Snapshot, bool) {
	snap := c.Snapshot(run)
	if powerDuration > 0 {
		snap.PowerFraction = float64(snap.PowerRemaining) / float64(powerDuration)
	}
	if c.published && snap.Equal(c.last) {
		return snap, false
	}
	c.last = snap
	c.published = true
	for _, l := range c.listeners {
		l(snap)
	}
	return snap, true
}

// Last returns the most recently published snapshot.
func (c *Context) Last() Snapshot { return c.last }

// GrantReward applies a completed level's reward as one saved mutation:
// one star, the level's facts and its body system unlocked.
func (c *Context) GrantReward(lvl simulation.LevelConfig) error {
	err := c.Store.Update(func(st *progress.State) error {
		st.Stars++
		for _, f := range lvl.Facts {
			st.LearnFact(f)
		}
		if lvl.System != "" {
			st.Unlocked.Put(lvl.System)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("grant reward for %s: %w", lvl.ID, err)
	}
	log.Printf("Session %s: rewarded %s", c.ID, lvl.ID)
	return nil
}
