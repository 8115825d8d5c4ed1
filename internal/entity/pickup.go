package entity

import (
	"chosenoffset.com/micromedics/internal/core/geom"
)

// PickupKind identifies what a pickup grants
type PickupKind int

const (
	PickupEnergy PickupKind = iota // Energy orb, counts toward the level threshold
	PickupBonus                    // Power capsule, starts power mode
)

func (k PickupKind) String() string {
	switch k {
	case PickupEnergy:
		return "energy"
	case PickupBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Pickup is a collectible. It is consumed on first contact.
type Pickup struct {
	Kind     PickupKind
	Pos      geom.Vec // Center
	Size     float64
	Consumed bool
}

// Rect returns the pickup's bounding box.
func (p *Pickup) Rect() geom.Rect {
	return geom.RectAround(p.Pos, p.Size, p.Size)
}
