package entity

// Platform is static solid geometry
type Platform struct {
	box CollisionBox
}

// NewPlatform creates a platform with its top-left corner at x, y
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{box: NewCollisionBox(x, y, w, h)}
}

// FixedUpdate is a no-op
func (p Platform) FixedUpdate() {}

// Update is a no-op
func (p Platform) Update() {}

// Box returns the platform's collision box
func (p Platform) Box() CollisionBox {
	return p.box
}
