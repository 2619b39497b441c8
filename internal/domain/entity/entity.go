package entity

// Entity is a simulated object driven by the frame loop.
//
// FixedUpdate advances physics by one fixed step and may run zero or more
// times per rendered frame. Update advances presentation and input-reactive
// state once per rendered frame.
type Entity interface {
	FixedUpdate()
	Update()
	Box() CollisionBox
}

// Base holds the state every entity kind shares: its collision box and the
// two step durations, which never change after construction.
type Base struct {
	box     CollisionBox
	dt      float64
	fixedDT float64
}

// NewBase creates a Base with the variable and fixed step durations in seconds
func NewBase(box CollisionBox, dt, fixedDT float64) Base {
	return Base{box: box, dt: dt, fixedDT: fixedDT}
}

// Box returns a copy of the entity's collision box
func (b *Base) Box() CollisionBox {
	return b.box
}

// DT returns the variable step duration
func (b *Base) DT() float64 { return b.dt }

// FixedDT returns the fixed step duration
func (b *Base) FixedDT() float64 { return b.fixedDT }

// MutableBox returns the owned box for in-place updates by the concrete kind
func (b *Base) MutableBox() *CollisionBox {
	return &b.box
}
