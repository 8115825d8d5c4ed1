// Package simulation provides configuration for the game rules, the level
// layouts, the body-map systems and the narrative sequences.
// Everything is loaded from a data file so the game can be re-tuned without
// a rebuild; built-in defaults cover anything the file leaves out.
package simulation

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/micromedics/internal/core/geom"
)

// Config holds all simulation rules and content for a game
type Config struct {
	Rules   Rules          `yaml:"rules"`
	Levels  []LevelConfig  `yaml:"levels"`
	Systems []SystemConfig `yaml:"systems"`
	HUD     HUDConfig      `yaml:"hud"`

	// Sequences are the narrative variants keyed by name.
	Sequences       map[string]SequenceConfig `yaml:"sequences"`
	DefaultSequence string                    `yaml:"default_sequence"`
}

// HUDConfig defines what the in-level HUD shows
type HUDConfig struct {
	ShowScore   bool    `yaml:"show_score"`
	ShowSession bool    `yaml:"show_session"` // Elapsed time and learned facts
	Position    string  `yaml:"position"`     // "top-left", "top-right"
	Opacity     float64 `yaml:"opacity"`      // Background opacity (0-1)
}

// Rules defines the per-tick gameplay tuning shared by every level
type Rules struct {
	// Player movement (pixels, pixels/sec, pixels/sec²)
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	Gravity      float64 `yaml:"gravity"`
	Drag         float64 `yaml:"drag"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`

	// Jump forgiveness windows
	JumpBuffer time.Duration `yaml:"jump_buffer"`
	CoyoteTime time.Duration `yaml:"coyote_time"`

	// Power mode
	PowerDuration time.Duration `yaml:"power_duration"`

	// Enemies
	ChaseSpeed float64 `yaml:"chase_speed"`
	FleeSpeed  float64 `yaml:"flee_speed"`
	EnemySize  float64 `yaml:"enemy_size"`

	// Health and damage
	MaxHealth      int           `yaml:"max_health"`
	ContactDamage  int           `yaml:"contact_damage"`
	DamageCooldown time.Duration `yaml:"damage_cooldown"`

	// Pickups and scoring
	PickupSize  float64 `yaml:"pickup_size"`
	OrbScore    int     `yaml:"orb_score"`
	BonusScore  int     `yaml:"bonus_score"`
	DefeatScore int     `yaml:"defeat_score"`
}

// Point is a position in level coordinates
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the point to a geom.Vec.
func (p Point) Vec() geom.Vec { return geom.Vec{X: p.X, Y: p.Y} }

// Box is a rectangle in level coordinates
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Rect converts the box to a geom.Rect.
func (b Box) Rect() geom.Rect { return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// LevelConfig describes one platformer level
type LevelConfig struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	System          string   `yaml:"system"` // Body system flagged unlocked on completion
	Width           float64  `yaml:"width"`
	Height          float64  `yaml:"height"`
	EnergyThreshold int      `yaml:"energy_threshold"`
	Spawn           Point    `yaml:"spawn"`
	Platforms       []Box    `yaml:"platforms"`
	Energy          []Point  `yaml:"energy"`
	Bonus           []Point  `yaml:"bonus"`
	Enemies         []Point  `yaml:"enemies"`
	Facts           []string `yaml:"facts"` // Learned on completion
	Banner          string   `yaml:"banner"`
}

// Bounds returns the level's world rectangle.
func (l LevelConfig) Bounds() geom.Rect {
	return geom.Rect{W: l.Width, H: l.Height}
}

// SystemConfig describes one body-map entry
type SystemConfig struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Level        string `yaml:"level"`
	Prerequisite string `yaml:"prerequisite,omitempty"`
	Blurb        string `yaml:"blurb"`
}

// SequenceConfig is one narrative variant: an ordered list of steps
type SequenceConfig struct {
	Start string       `yaml:"start"`
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig is a single narrative beat
type StepConfig struct {
	ID    string   `yaml:"id"`
	Kind  string   `yaml:"kind"` // boot, title, dialog, cinematic, level, hub, debrief
	Title string   `yaml:"title,omitempty"`
	Lines []string `yaml:"lines,omitempty"`
	Level string   `yaml:"level,omitempty"`
	Next  string   `yaml:"next,omitempty"`
}

// Step kinds accepted in sequence data.
const (
	KindBoot      = "boot"
	KindTitle     = "title"
	KindDialog    = "dialog"
	KindCinematic = "cinematic"
	KindLevel     = "level"
	KindHub       = "hub"
	KindDebrief   = "debrief"
)

var validKinds = map[string]bool{
	KindBoot: true, KindTitle: true, KindDialog: true, KindCinematic: true,
	KindLevel: true, KindHub: true, KindDebrief: true,
}

// LoadConfig loads simulation config from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig overlays YAML data onto the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	return config, nil
}

// Validate checks cross references between levels, systems and sequences.
func (c *Config) Validate() error {
	if c.Rules.MaxHealth <= 0 {
		return fmt.Errorf("rules: max_health must be positive")
	}
	if c.Rules.PowerDuration <= 0 {
		return fmt.Errorf("rules: power_duration must be positive")
	}

	levels := make(map[string]bool, len(c.Levels))
	for _, l := range c.Levels {
		if l.ID == "" {
			return fmt.Errorf("level with empty id")
		}
		if levels[l.ID] {
			return fmt.Errorf("duplicate level %q", l.ID)
		}
		levels[l.ID] = true
		if l.EnergyThreshold <= 0 {
			return fmt.Errorf("level %q: energy_threshold must be positive", l.ID)
		}
		if len(l.Energy) < l.EnergyThreshold {
			return fmt.Errorf("level %q: %d energy orbs cannot reach threshold %d", l.ID, len(l.Energy), l.EnergyThreshold)
		}
		if l.Width <= 0 || l.Height <= 0 {
			return fmt.Errorf("level %q: invalid dimensions", l.ID)
		}
	}

	systems := make(map[string]bool, len(c.Systems))
	for _, s := range c.Systems {
		if systems[s.ID] {
			return fmt.Errorf("duplicate system %q", s.ID)
		}
		if !levels[s.Level] {
			return fmt.Errorf("system %q references unknown level %q", s.ID, s.Level)
		}
		if s.Prerequisite != "" && !systems[s.Prerequisite] {
			// Prerequisites must be listed first; this also rules out cycles
			return fmt.Errorf("system %q: prerequisite %q must be listed before it", s.ID, s.Prerequisite)
		}
		systems[s.ID] = true
	}

	for name, seq := range c.Sequences {
		steps := make(map[string]bool, len(seq.Steps))
		for _, st := range seq.Steps {
			if steps[st.ID] {
				return fmt.Errorf("sequence %q: duplicate step %q", name, st.ID)
			}
			steps[st.ID] = true
			if !validKinds[st.Kind] {
				return fmt.Errorf("sequence %q: step %q has unknown kind %q", name, st.ID, st.Kind)
			}
			if st.Kind == KindLevel && !levels[st.Level] {
				return fmt.Errorf("sequence %q: step %q references unknown level %q", name, st.ID, st.Level)
			}
		}
		if !steps[seq.Start] {
			return fmt.Errorf("sequence %q: unknown start step %q", name, seq.Start)
		}
		for _, st := range seq.Steps {
			if st.Next != "" && !steps[st.Next] {
				return fmt.Errorf("sequence %q: step %q points to unknown step %q", name, st.ID, st.Next)
			}
		}
	}
	if _, ok := c.Sequences[c.DefaultSequence]; !ok {
		return fmt.Errorf("default_sequence %q is not defined", c.DefaultSequence)
	}
	return nil
}

// Level returns the level with the given id.
func (c *Config) Level(id string) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// System returns the body system with the given id.
func (c *Config) System(id string) (SystemConfig, bool) {
	for _, s := range c.Systems {
		if s.ID == id {
			return s, true
		}
	}
	return SystemConfig{}, false
}

// Sequence returns the named narrative variant, falling back to the default
// when name is empty.
func (c *Config) Sequence(name string) (SequenceConfig, error) {
	if name == "" {
		name = c.DefaultSequence
	}
	seq, ok := c.Sequences[name]
	if !ok {
		return SequenceConfig{}, fmt.Errorf("unknown sequence %q", name)
	}
	return seq, nil
}
