package entity

import "math"

// PickupKind identifies what a pickup grants
type PickupKind int

const (
	PickupHeart PickupKind = iota // restores one health point
	PickupGold
)

// String returns the string representation of the pickup kind
func (k PickupKind) String() string {
	switch k {
	case PickupHeart:
		return "heart"
	case PickupGold:
		return "gold"
	default:
		return "unknown"
	}
}

// ParsePickupKind converts a config name into a PickupKind
func ParsePickupKind(name string) (PickupKind, bool) {
	switch name {
	case "heart":
		return PickupHeart, true
	case "gold":
		return PickupGold, true
	}
	return 0, false
}

const (
	pickupBobAmplitude = 4.0
	pickupBobSpeed     = 5.0 // radians per second
)

// Pickup is a collectible resting in the level. Exists turns false once the
// player consumes it; the owning collection removes it afterwards.
type Pickup struct {
	Base

	Kind   PickupKind
	Amount int
	Exists bool

	bobPhase float64
}

// NewPickup creates a pickup with its top-left corner at x, y
func NewPickup(kind PickupKind, x, y, w, h float64, amount int, dt, fixedDT float64) *Pickup {
	return &Pickup{
		Base:   NewBase(NewCollisionBox(x, y, w, h), dt, fixedDT),
		Kind:   kind,
		Amount: amount,
		Exists: true,
	}
}

// FixedUpdate is a no-op; pickups do not move
func (p *Pickup) FixedUpdate() {}

// Update advances the hover animation
func (p *Pickup) Update() {
	p.bobPhase += pickupBobSpeed * p.DT()
}

// Consume marks the pickup as taken
func (p *Pickup) Consume() {
	p.Exists = false
}

// HoverOffset returns the vertical draw offset of the hover animation.
// It never moves the collision box.
func (p *Pickup) HoverOffset() float64 {
	return math.Sin(p.bobPhase) * pickupBobAmplitude
}
