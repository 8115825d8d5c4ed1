// Package entity provides the moving things in a level: the player body and
// its controller, roaming enemies, and pickups.
package entity

import (
	"chosenoffset.com/micromedics/internal/core/geom"
)

// Body is an axis-aligned physics body. Pos is the top-left corner.
type Body struct {
	Pos      geom.Vec
	Vel      geom.Vec
	Size     geom.Vec
	OnGround bool
}

// NewBody creates a body of the given size centered on c.
func NewBody(c geom.Vec, w, h float64) Body {
	return Body{
		Pos:  geom.Vec{X: c.X - w/2, Y: c.Y - h/2},
		Size: geom.Vec{X: w, Y: h},
	}
}

// Rect returns the body's bounding box.
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Center returns the center of the body.
func (b *Body) Center() geom.Vec {
	return b.Rect().Center()
}

// Step integrates velocity under gravity and resolves collisions against
// static solids and the world bounds. Axes are resolved separately (X then Y)
// so the body slides along surfaces. Landing on a surface sets OnGround.
func (b *Body) Step(dt, gravity, maxFall float64, solids []geom.Rect, bounds geom.Rect) {
	b.Vel.Y += gravity * dt
	if maxFall > 0 && b.Vel.Y > maxFall {
		b.Vel.Y = maxFall
	}

	// Horizontal
	b.Pos.X += b.Vel.X * dt
	for _, s := range solids {
		if !b.Rect().Overlaps(s) {
			continue
		}
		if b.Vel.X > 0 {
			b.Pos.X = s.X - b.Size.X
		} else if b.Vel.X < 0 {
			b.Pos.X = s.X + s.W
		}
		b.Vel.X = 0
	}

	// Vertical
	b.OnGround = false
	b.Pos.Y += b.Vel.Y * dt
	for _, s := range solids {
		if !b.Rect().Overlaps(s) {
			continue
		}
		if b.Vel.Y > 0 {
			b.Pos.Y = s.Y - b.Size.Y
			b.OnGround = true
		} else if b.Vel.Y < 0 {
			b.Pos.Y = s.Y + s.H
		}
		b.Vel.Y = 0
	}

	b.keepInside(bounds)
}

// keepInside clamps the body to bounds. The bottom edge counts as ground.
func (b *Body) keepInside(bounds geom.Rect) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	if b.Pos.X < bounds.X {
		b.Pos.X = bounds.X
		b.Vel.X = 0
	}
	if b.Pos.X+b.Size.X > bounds.X+bounds.W {
		b.Pos.X = bounds.X + bounds.W - b.Size.X
		b.Vel.X = 0
	}
	if b.Pos.Y < bounds.Y {
		b.Pos.Y = bounds.Y
		b.Vel.Y = 0
	}
	if b.Pos.Y+b.Size.Y >= bounds.Y+bounds.H {
		b.Pos.Y = bounds.Y + bounds.H - b.Size.Y
		if b.Vel.Y > 0 {
			b.Vel.Y = 0
		}
		b.OnGround = true
	}
}
