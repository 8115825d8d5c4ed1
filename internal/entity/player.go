package entity

import (
	"time"

	"chosenoffset.com/micromedics/internal/simulation"
)

// Input is the per-tick player intent.
type Input struct {
	Left  bool
	Right bool
	Jump  bool // Edge-triggered: true only on the tick the key went down
}

// Controller turns Input into player velocity. Jumps are buffered and allowed
// for a short grace period after walking off a ledge.
type Controller struct {
	Speed        float64
	JumpVelocity float64
	Drag         float64
	JumpBuffer   time.Duration
	CoyoteTime   time.Duration

	jumpRequestedAt time.Duration
	jumpRequested   bool
	groundedAt      time.Duration
	grounded        bool
}

// NewController creates a controller tuned by rules.
func NewController(rules simulation.Rules) *Controller {
	return &Controller{
		Speed:        rules.MoveSpeed,
		JumpVelocity: rules.JumpVelocity,
		Drag:         rules.Drag,
		JumpBuffer:   rules.JumpBuffer,
		CoyoteTime:   rules.CoyoteTime,
	}
}

// Reset forgets any buffered jump and ground contact.
func (c *Controller) Reset() {
	c.jumpRequested = false
	c.grounded = false
}

// Update sets body velocity for this tick. now is the level clock, dt the
// tick length. Returns true if a jump was executed.
func (c *Controller) Update(now time.Duration, in Input, body *Body, dt time.Duration) bool {
	if body.OnGround {
		c.groundedAt = now
		c.grounded = true
	}
	if in.Jump {
		c.jumpRequestedAt = now
		c.jumpRequested = true
	}

	switch {
	case in.Left && !in.Right:
		body.Vel.X = -c.Speed
	case in.Right && !in.Left:
		body.Vel.X = c.Speed
	default:
		body.Vel.X = approachZero(body.Vel.X, c.Drag*dt.Seconds())
	}

	if !c.canJump(now) {
		return false
	}
	body.Vel.Y = -c.JumpVelocity
	body.OnGround = false
	// One grounded moment buys one jump
	c.jumpRequested = false
	c.grounded = false
	return true
}

func (c *Controller) canJump(now time.Duration) bool {
	if !c.jumpRequested || !c.grounded {
		return false
	}
	return now-c.jumpRequestedAt <= c.JumpBuffer && now-c.groundedAt <= c.CoyoteTime
}

func approachZero(v, step float64) float64 {
	switch {
	case v > step:
		return v - step
	case v < -step:
		return v + step
	default:
		return 0
	}
}
