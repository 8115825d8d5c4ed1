package entity

import (
	"chosenoffset.com/micromedics/internal/core/geom"
)

// Enemy is a roaming germ. It floats (no gravity), chases the player in
// normal mode and flees while the player is empowered.
type Enemy struct {
	ID         int
	Body       Body
	Vulnerable bool
}

// NewEnemy spawns an enemy of the given size centered on pos.
func NewEnemy(id int, pos geom.Vec, size float64) *Enemy {
	return &Enemy{ID: id, Body: NewBody(pos, size, size)}
}

// Steer points the enemy's velocity at target (chase) or directly away from
// it (flee) at a fixed speed.
func (e *Enemy) Steer(target geom.Vec, flee bool, chaseSpeed, fleeSpeed float64) {
	dir := target.Sub(e.Body.Center()).Normalize()
	if flee {
		e.Body.Vel = dir.Scale(-fleeSpeed)
		return
	}
	e.Body.Vel = dir.Scale(chaseSpeed)
}

// Move advances the enemy by its velocity, staying inside bounds.
func (e *Enemy) Move(dt float64, bounds geom.Rect) {
	e.Body.Pos = e.Body.Pos.Add(e.Body.Vel.Scale(dt))
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	inner := geom.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W - e.Body.Size.X, H: bounds.H - e.Body.Size.Y}
	e.Body.Pos = inner.Clamp(e.Body.Pos)
}
