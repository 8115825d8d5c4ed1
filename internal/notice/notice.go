// Package notice keeps short-lived advisory messages ("Not enough stars")
// that the UI fades out over time.
package notice

import (
	"log"
	"time"
)

// DefaultLifetime is how long a notice stays on screen.
const DefaultLifetime = 2500 * time.Millisecond

// Notice is one on-screen message that fades over time.
type Notice struct {
	Text     string
	TimeLeft time.Duration
	MaxTime  time.Duration
}

// Alpha returns the remaining opacity in [0, 1].
func (n Notice) Alpha() float64 {
	if n.MaxTime <= 0 {
		return 0
	}
	return float64(n.TimeLeft) / float64(n.MaxTime)
}

// Board holds the active notices, oldest first.
type Board struct {
	Lifetime time.Duration
	// Limit caps how many notices are kept; older ones are dropped first. 0 means no cap.
	Limit int

	notices []Notice
}

// NewBoard creates a board with the default lifetime.
func NewBoard() *Board {
	return &Board{Lifetime: DefaultLifetime, Limit: 4}
}

// Show posts a new notice. Posting the same text as the newest notice
// refreshes it instead of stacking a duplicate.
func (b *Board) Show(text string) {
	if n := len(b.notices); n > 0 && b.notices[n-1].Text == text {
		b.notices[n-1].TimeLeft = b.Lifetime
		return
	}
	b.notices = append(b.notices, Notice{Text: text, TimeLeft: b.Lifetime, MaxTime: b.Lifetime})
	if b.Limit > 0 && len(b.notices) > b.Limit {
		b.notices = b.notices[len(b.notices)-b.Limit:]
	}
	log.Printf("Notice: %s", text)
}

// Tick ages every notice by dt and drops expired ones.
func (b *Board) Tick(dt time.Duration) {
	active := b.notices[:0]
	for _, n := range b.notices {
		n.TimeLeft -= dt
		if n.TimeLeft > 0 {
			active = append(active, n)
		}
	}
	b.notices = active
}

// Active returns the notices still on screen.
func (b *Board) Active() []Notice {
	return b.notices
}

// Clear removes every notice.
func (b *Board) Clear() {
	b.notices = nil
}
