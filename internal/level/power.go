// Package level runs one attempt at a platformer level: player physics,
// enemies, pickups, the power-mode timer and the level objective.
package level

import "time"

// PowerTimer is the Normal/Empowered state machine. While empowered, enemies
// are vulnerable and flee from the player.
type PowerTimer struct {
	duration  time.Duration
	remaining time.Duration
	active    bool

	// OnChange is called with true on every activation and with false when
	// the timer runs out.
	OnChange func(active bool)
}

// NewPowerTimer creates a timer in the Normal state.
func NewPowerTimer(duration time.Duration) *PowerTimer {
	return &PowerTimer{duration: duration}
}

// Activate enters (or re-enters) the Empowered state with a full timer.
// Re-activation resets the timer; durations never stack.
func (p *PowerTimer) Activate() {
	p.remaining = p.duration
	p.active = true
	if p.OnChange != nil {
		p.OnChange(true)
	}
}

// Tick counts down by dt. Returns true on the tick the timer expires.
func (p *PowerTimer) Tick(dt time.Duration) bool {
	if !p.active {
		return false
	}
	p.remaining -= dt
	if p.remaining > 0 {
		return false
	}
	p.remaining = 0
	p.active = false
	if p.OnChange != nil {
		p.OnChange(false)
	}
	return true
}

// Reset returns to Normal without firing OnChange.
func (p *PowerTimer) Reset() {
	p.active = false
	p.remaining = 0
}

// Active reports whether power mode is on.
func (p *PowerTimer) Active() bool { return p.active }

// Remaining returns the time left in power mode.
func (p *PowerTimer) Remaining() time.Duration { return p.remaining }

// Duration returns the full power-mode duration.
func (p *PowerTimer) Duration() time.Duration { return p.duration }

// Fraction returns remaining/duration in [0, 1], used for the tint and the HUD bar.
func (p *PowerTimer) Fraction() float64 {
	if p.duration <= 0 || !p.active {
		return 0
	}
	return float64(p.remaining) / float64(p.duration)
}
