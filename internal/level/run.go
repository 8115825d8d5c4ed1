package level

import "time"

// RunState is the per-attempt player state that is thrown away on restart.
type RunState struct {
	Health    int
	MaxHealth int
	Score     int

	cooldown   time.Duration
	lastHit    time.Duration
	hasBeenHit bool
}

// NewRunState creates a run at full health.
func NewRunState(maxHealth int, cooldown time.Duration) RunState {
	return RunState{Health: maxHealth, MaxHealth: maxHealth, cooldown: cooldown}
}

// Damage removes amount health at level time now, unless the player was hit
// less than the cooldown ago. Health is clamped to [0, MaxHealth].
// Returns true if the damage was applied.
func (r *RunState) Damage(now time.Duration, amount int) bool {
	if r.hasBeenHit && now-r.lastHit < r.cooldown {
		return false
	}
	r.lastHit = now
	r.hasBeenHit = true
	r.Health -= amount
	if r.Health < 0 {
		r.Health = 0
	}
	if r.Health > r.MaxHealth {
		r.Health = r.MaxHealth
	}
	return true
}

// Dead reports whether health has run out.
func (r *RunState) Dead() bool { return r.Health <= 0 }
