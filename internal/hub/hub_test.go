package hub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/micromedics/internal/core/progress"
	"chosenoffset.com/micromedics/internal/notice"
	"chosenoffset.com/micromedics/internal/simulation"
)

func newTestHub(t *testing.T, stars int) (*Hub, *progress.Store, *progress.MemoryBackend, *notice.Board) {
	t.Helper()
	backend := progress.NewMemoryBackend()
	store := progress.Open(backend)
	if stars > 0 {
		require.NoError(t, store.AddStars(stars))
	}
	board := notice.NewBoard()
	h := New(simulation.DefaultConfig().Systems, store, board, func() time.Duration { return 90 * time.Second })
	return h, store, backend, board
}

func statuses(h *Hub) map[string]Status {
	out := make(map[string]Status)
	for _, e := range h.Entries() {
		out[e.System.ID] = e.Status
	}
	return out
}

func TestInitialEntries(t *testing.T) {
	h, _, _, _ := newTestHub(t, 0)
	assert.Equal(t, map[string]Status{"heart": NeedsRepair, "lungs": Locked}, statuses(h))

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "heart", entries[0].System.ID, "entries keep display order")
}

func TestRepairWithoutStarsChangesNothing(t *testing.T) {
	h, store, backend, board := newTestHub(t, 0)
	before := store.Snapshot()
	writes := backend.Writes()

	err := h.Repair("heart")
	require.ErrorIs(t, err, ErrInsufficientStars)

	assert.Equal(t, before, store.Snapshot())
	assert.Equal(t, writes, backend.Writes(), "nothing is saved")
	require.Len(t, board.Active(), 1)
	assert.Contains(t, board.Active()[0].Text, "Not enough stars")
}

func TestRepairSpendsStarAndUnlocksNext(t *testing.T) {
	h, store, backend, board := newTestHub(t, 2)
	writes := backend.Writes()

	require.NoError(t, h.Repair("heart"))

	snap := store.Snapshot()
	assert.Equal(t, 1, snap.Stars)
	assert.True(t, snap.IsRepaired("heart"))
	assert.True(t, snap.IsUnlocked("lungs"))
	assert.Equal(t, writes+1, backend.Writes(), "one mutation, one save")
	assert.Equal(t, map[string]Status{"heart": Repaired, "lungs": NeedsRepair}, statuses(h))
	assert.Contains(t, board.Active()[0].Text, "Heart repaired")
}

func TestRepairAdvisoryErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *Hub)
		id    string
		want  error
	}{
		{name: "unknown system", id: "spleen", want: ErrUnknownSystem},
		{name: "locked system", id: "lungs", want: ErrLocked},
		{
			name:  "already repaired",
			setup: func(h *Hub) { require.NoError(t, h.Repair("heart")) },
			id:    "heart",
			want:  ErrAlreadyRepaired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store, _, _ := newTestHub(t, 3)
			if tt.setup != nil {
				tt.setup(h)
			}
			before := store.Snapshot()

			assert.ErrorIs(t, h.Repair(tt.id), tt.want)
			assert.Equal(t, before, store.Snapshot())
		})
	}
}

func TestPlay(t *testing.T) {
	h, _, _, board := newTestHub(t, 0)

	level, err := h.Play("heart")
	require.NoError(t, err)
	assert.Equal(t, "circulatory", level)

	_, err = h.Play("lungs")
	assert.ErrorIs(t, err, ErrLocked)
	assert.Contains(t, board.Active()[0].Text, "Lungs is locked")

	_, err = h.Play("spleen")
	assert.ErrorIs(t, err, ErrUnknownSystem)
}

func TestUnlockedPrerequisiteOpensNextSystem(t *testing.T) {
	h, store, _, _ := newTestHub(t, 0)
	lvl, ok := simulation.DefaultConfig().Level("circulatory")
	require.True(t, ok)

	// Completing the circulatory level unlocks the heart without repairing it.
	require.NoError(t, store.Update(func(s *progress.State) error {
		s.Stars++
		s.Unlocked.Put(lvl.System)
		return nil
	}))
	assert.Equal(t, map[string]Status{"heart": NeedsRepair, "lungs": NeedsRepair}, statuses(h))

	level, err := h.Play("lungs")
	require.NoError(t, err)
	assert.Equal(t, "lungs", level)
}

func TestProceedNeedsEverySystemRepaired(t *testing.T) {
	h, _, _, _ := newTestHub(t, 2)
	assert.ErrorIs(t, h.Proceed(), ErrIncomplete)

	require.NoError(t, h.Repair("heart"))
	assert.ErrorIs(t, h.Proceed(), ErrIncomplete)

	require.NoError(t, h.Repair("lungs"))
	assert.NoError(t, h.Proceed())
}

func TestStats(t *testing.T) {
	h, store, _, _ := newTestHub(t, 2)
	require.NoError(t, store.LearnFacts("a", "b", "a"))
	require.NoError(t, h.Repair("heart"))

	stats := h.Stats()
	assert.Equal(t, 1, stats.Stars)
	assert.Equal(t, 2, stats.Unlocked)
	assert.Equal(t, 2, stats.Facts)
	assert.Equal(t, 90*time.Second, stats.Elapsed)
}
