package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWithoutRecordStartsEmpty(t *testing.T) {
	store := Open(NewMemoryBackend())
	snap := store.Snapshot()

	assert.Equal(t, 0, snap.Stars)
	assert.Equal(t, 0, snap.Unlocked.Size())
	assert.Empty(t, snap.Facts)
}

func TestOpenMalformedRecordFallsBackToDefaults(t *testing.T) {
	for _, raw := range []string{"{not json", `{"stars": "many"}`, "[]"} {
		t.Run(raw, func(t *testing.T) {
			backend := NewMemoryBackend()
			backend.Set([]byte(raw))

			snap := Open(backend).Snapshot()
			assert.Equal(t, 0, snap.Stars)
			assert.Equal(t, 0, snap.Unlocked.Size())
			assert.Empty(t, snap.Facts)
		})
	}
}

func TestLoadNormalizesRecord(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Set([]byte(`{"stars": -4, "systems": {"heart": true, "lungs": false}, "facts": ["a", "b", "a"]}`))

	snap := Open(backend).Snapshot()
	assert.Equal(t, 0, snap.Stars)
	assert.True(t, snap.IsUnlocked("heart"))
	assert.False(t, snap.IsUnlocked("lungs"))
	assert.Equal(t, []string{"a", "b"}, snap.Facts)
}

func TestPersistReloadRoundTrip(t *testing.T) {
	backend := NewFileBackend(filepath.Join(t.TempDir(), "save", "progress.json"))
	store := Open(backend)

	require.NoError(t, store.AddStars(3))
	require.NoError(t, store.Unlock("heart"))
	require.NoError(t, store.Unlock("lungs"))
	require.NoError(t, store.LearnFacts("fact one", "fact two", "fact one"))
	require.NoError(t, store.Update(func(st *State) error {
		st.Repaired.Put("heart")
		return nil
	}))

	before := store.Snapshot()
	reloaded := Open(backend).Snapshot()

	assert.Equal(t, before.Stars, reloaded.Stars)
	assert.Equal(t, before.UnlockedIDs(), reloaded.UnlockedIDs())
	assert.Equal(t, before.RepairedIDs(), reloaded.RepairedIDs())
	assert.Equal(t, before.Facts, reloaded.Facts)
	assert.Equal(t, []string{"fact one", "fact two"}, reloaded.Facts)
}

func TestRecordShape(t *testing.T) {
	backend := NewMemoryBackend()
	store := Open(backend)
	require.NoError(t, store.AddStars(1))
	require.NoError(t, store.Unlock("heart"))

	data, err := backend.Read()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(1), raw["stars"])
	assert.Equal(t, map[string]any{"heart": true}, raw["systems"])
	assert.Equal(t, []any{}, raw["facts"])
	assert.NotContains(t, raw, "repaired")
}

func TestSpendStarInsufficientLeavesStateUnchanged(t *testing.T) {
	backend := NewMemoryBackend()
	store := Open(backend)

	err := store.SpendStar()
	assert.ErrorIs(t, err, ErrInsufficientStars)
	assert.Equal(t, 0, store.Snapshot().Stars)
	assert.Equal(t, 0, backend.Writes(), "a rejected mutation must not be persisted")

	require.NoError(t, store.AddStars(1))
	require.NoError(t, store.SpendStar())
	assert.Equal(t, 0, store.Snapshot().Stars)
	assert.Equal(t, 2, backend.Writes())
}

func TestEveryMutationPersistsAndNotifies(t *testing.T) {
	backend := NewMemoryBackend()
	store := Open(backend)

	var seen []int
	store.OnChange = func(st State) { seen = append(seen, st.Stars) }

	require.NoError(t, store.AddStars(2))
	require.NoError(t, store.SpendStar())
	require.NoError(t, store.Reset())

	assert.Equal(t, 3, backend.Writes())
	assert.Equal(t, []int{2, 1, 0}, seen)
}

func TestSnapshotIsACopy(t *testing.T) {
	store := Open(NewMemoryBackend())
	require.NoError(t, store.LearnFacts("x"))

	snap := store.Snapshot()
	snap.Facts[0] = "mutated"
	snap.Unlocked.Put("kidneys")

	fresh := store.Snapshot()
	assert.Equal(t, []string{"x"}, fresh.Facts)
	assert.False(t, fresh.IsUnlocked("kidneys"))
}

func TestAtomicWriteFileReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "record.json")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0644))
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestRepairAlsoUnlocks(t *testing.T) {
	store := Open(NewMemoryBackend())
	require.NoError(t, store.Repair("heart"))

	snap := store.Snapshot()
	assert.True(t, snap.IsRepaired("heart"))
	assert.True(t, snap.IsUnlocked("heart"))
	assert.Equal(t, []string{"heart"}, snap.RepairedIDs())
}
