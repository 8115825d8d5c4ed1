package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/micromedics/internal/core/progress"
	"chosenoffset.com/micromedics/internal/level"
	"chosenoffset.com/micromedics/internal/simulation"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }

func newSession(t *testing.T) (*Context, *fakeClock, *progress.MemoryBackend) {
	t.Helper()
	backend := progress.NewMemoryBackend()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := New(progress.Open(backend))
	c.Now = clock.Now
	c.started = clock.t
	return c, clock, backend
}

func TestNewSessionHasID(t *testing.T) {
	c, _, _ := newSession(t)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestPublishOnlyOnChange(t *testing.T) {
	c, clock, _ := newSession(t)
	var got []Snapshot
	c.Subscribe(func(s Snapshot) { got = append(got, s) })

	run := level.Stats{Level: "Circulatory", Health: 100, MaxHealth: 100, EnergyGoal: 10}
	_, pushed := c.Publish(run, 6*time.Second)
	require.True(t, pushed)
	_, pushed = c.Publish(run, 6*time.Second)
	assert.False(t, pushed, "identical snapshot is not pushed again")

	run.Energy = 1
	run.Score = 10
	_, pushed = c.Publish(run, 6*time.Second)
	assert.True(t, pushed)

	clock.t = clock.t.Add(1500 * time.Millisecond)
	snap, pushed := c.Publish(run, 6*time.Second)
	assert.True(t, pushed, "elapsed seconds changed")
	assert.Equal(t, 1, snap.ElapsedSeconds)

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[2].Energy)
	assert.Equal(t, snap, c.Last())
}

func TestPublishPowerFraction(t *testing.T) {
	c, _, _ := newSession(t)
	snap, _ := c.Publish(level.Stats{PowerActive: true, PowerRemaining: 3 * time.Second}, 6*time.Second)
	assert.Equal(t, 3*time.Second, snap.PowerRemaining)
	assert.InDelta(t, 0.5, snap.PowerFraction, 1e-9)

	snap, _ = c.Publish(level.Stats{PowerRemaining: 3 * time.Second}, 6*time.Second)
	assert.Zero(t, snap.PowerRemaining, "inactive power shows nothing")
}

func TestGrantReward(t *testing.T) {
	c, _, backend := newSession(t)
	lvl, ok := simulation.DefaultConfig().Level("circulatory")
	require.True(t, ok)

	writes := backend.Writes()
	require.NoError(t, c.GrantReward(lvl))
	require.NoError(t, c.GrantReward(lvl))

	state := c.Store.Snapshot()
	assert.Equal(t, 2, state.Stars)
	assert.True(t, state.IsUnlocked("heart"))
	assert.Equal(t, lvl.Facts, state.Facts, "facts are not duplicated on replay")
	assert.Equal(t, writes+2, backend.Writes(), "each reward is a single save")

	snap := c.Snapshot(level.Stats{})
	assert.Equal(t, 2, snap.StarCount)
	assert.Equal(t, []string{"heart"}, snap.UnlockedSystems)
	assert.Equal(t, lvl.Facts, snap.LearnedFacts)
}

func TestPublishCarriesProgressLists(t *testing.T) {
	c, _, _ := newSession(t)
	var got []Snapshot
	c.Subscribe(func(s Snapshot) { got = append(got, s) })

	_, pushed := c.Publish(level.Stats{}, 6*time.Second)
	require.True(t, pushed)
	assert.Empty(t, got[0].LearnedFacts)

	require.NoError(t, c.Store.LearnFacts("Blood carries oxygen.", "The heart has four chambers."))
	require.NoError(t, c.Store.Unlock("lungs"))
	require.NoError(t, c.Store.Unlock("heart"))

	_, pushed = c.Publish(level.Stats{}, 6*time.Second)
	require.True(t, pushed, "new facts change the snapshot")
	_, pushed = c.Publish(level.Stats{}, 6*time.Second)
	assert.False(t, pushed)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"heart", "lungs"}, got[1].UnlockedSystems, "ids are sorted")
	assert.Equal(t, []string{"Blood carries oxygen.", "The heart has four chambers."}, got[1].LearnedFacts)
}
