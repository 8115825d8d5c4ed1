package simulation

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 140*time.Millisecond, cfg.Rules.JumpBuffer)
	assert.Equal(t, 140*time.Millisecond, cfg.Rules.CoyoteTime)
	assert.Equal(t, 6*time.Second, cfg.Rules.PowerDuration)
	assert.Equal(t, 650*time.Millisecond, cfg.Rules.DamageCooldown)
	assert.Equal(t, 10, cfg.Rules.ContactDamage)
	assert.Equal(t, 100, cfg.Rules.MaxHealth)

	for _, name := range []string{"clinic", "cinematic", "express"} {
		_, err := cfg.Sequence(name)
		assert.NoError(t, err, name)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Rules, cfg.Rules)
	assert.Len(t, cfg.Levels, 2)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := `
rules:
  power_duration: 3s
  contact_damage: 20
default_sequence: express
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Rules.PowerDuration)
	assert.Equal(t, 20, cfg.Rules.ContactDamage)
	// Untouched fields keep their defaults
	assert.Equal(t, 140*time.Millisecond, cfg.Rules.JumpBuffer)
	assert.Equal(t, "express", cfg.DefaultSequence)
	// Sequences map is merged, not replaced
	assert.Len(t, cfg.Sequences, 3)
}

func TestParseConfigRejectsBadReferences(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown default sequence", "default_sequence: nowhere\n"},
		{"system with unknown level", `
systems:
  - id: heart
    level: missing
`},
		{"prerequisite listed after", `
systems:
  - id: lungs
    level: lungs
    prerequisite: heart
  - id: heart
    level: circulatory
`},
		{"threshold above orbs", `
levels:
  - id: tiny
    width: 100
    height: 100
    energy_threshold: 3
    energy: [{x: 1, y: 1}]
systems: []
sequences:
  only:
    start: a
    steps:
      - {id: a, kind: title}
default_sequence: only
`},
		{"unknown step kind", `
sequences:
  odd:
    start: a
    steps:
      - {id: a, kind: jukebox}
`},
		{"dangling next", `
sequences:
  odd:
    start: a
    steps:
      - {id: a, kind: title, next: b}
`},
		{"malformed yaml", "rules: [this is: not a map"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestConfigLookups(t *testing.T) {
	cfg := DefaultConfig()

	lvl, ok := cfg.Level("lungs")
	require.True(t, ok)
	assert.Equal(t, 12, lvl.EnergyThreshold)
	assert.Equal(t, 3200.0, lvl.Bounds().W)

	sys, ok := cfg.System("lungs")
	require.True(t, ok)
	assert.Equal(t, "heart", sys.Prerequisite)

	_, ok = cfg.Level("kidneys")
	assert.False(t, ok)

	seq, err := cfg.Sequence("")
	require.NoError(t, err)
	assert.Equal(t, "boot", seq.Start)

	_, err = cfg.Sequence("missing")
	assert.Error(t, err)
}

func TestShippedDataFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "data", "micromedics.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "clinic", cfg.DefaultSequence)
	assert.Equal(t, DefaultRules(), cfg.Rules, "the shipped tuning matches the defaults")

	lesson, err := cfg.Sequence("lesson")
	require.NoError(t, err)
	assert.Equal(t, "boot", lesson.Start)
	assert.Len(t, cfg.Sequences, 4)

	assert.Equal(t, "top-right", cfg.HUD.Position)
	assert.InDelta(t, 0.8, cfg.HUD.Opacity, 1e-9)
	assert.True(t, cfg.HUD.ShowScore)
}
