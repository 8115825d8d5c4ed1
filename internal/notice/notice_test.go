package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardExpiresAfterLifetime(t *testing.T) {
	b := NewBoard()
	b.Show("Not enough stars")
	require.Len(t, b.Active(), 1)

	b.Tick(2 * time.Second)
	require.Len(t, b.Active(), 1)
	assert.InDelta(t, 0.2, b.Active()[0].Alpha(), 1e-9)

	b.Tick(500 * time.Millisecond)
	assert.Empty(t, b.Active())
}

func TestBoardRefreshesDuplicate(t *testing.T) {
	b := NewBoard()
	b.Show("Locked")
	b.Tick(2 * time.Second)
	b.Show("Locked")

	require.Len(t, b.Active(), 1)
	assert.Equal(t, DefaultLifetime, b.Active()[0].TimeLeft)
}

func TestBoardLimit(t *testing.T) {
	b := NewBoard()
	b.Limit = 2
	b.Show("one")
	b.Show("two")
	b.Show("three")

	var texts []string
	for _, n := range b.Active() {
		texts = append(texts, n.Text)
	}
	assert.Equal(t, []string{"two", "three"}, texts)

	b.Clear()
	assert.Empty(t, b.Active())
}
