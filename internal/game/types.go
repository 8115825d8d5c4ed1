package game

import "time"

// TPS is the fixed host tick rate.
const TPS = 60

// tickDuration is the simulated time per Update.
const tickDuration = time.Second / TPS

// outcomeDelay is how long a finished level stays frozen on screen before
// the story moves on.
const outcomeDelay = 1200 * time.Millisecond

// Camera tracks the viewport position for scrolling large levels.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}
