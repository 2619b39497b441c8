package entity

import (
	"math"

	"github.com/jakecoffman/cp"
)

// CollisionBox is an axis-aligned box. Pos is the top-left corner in world
// pixels (Y grows downward) and Size is the full extent.
// Size components must be non-negative; callers own that precondition.
type CollisionBox struct {
	Pos  cp.Vector
	Size cp.Vector
}

// NewCollisionBox creates a box from its top-left corner and size
func NewCollisionBox(x, y, w, h float64) CollisionBox {
	return CollisionBox{
		Pos:  cp.Vector{X: x, Y: y},
		Size: cp.Vector{X: w, Y: h},
	}
}

// Left returns the X coordinate of the left edge
func (b CollisionBox) Left() float64 { return b.Pos.X }

// Right returns the X coordinate of the right edge
func (b CollisionBox) Right() float64 { return b.Pos.X + b.Size.X }

// Top returns the Y coordinate of the upper edge
func (b CollisionBox) Top() float64 { return b.Pos.Y }

// Bottom returns the Y coordinate of the lower edge
func (b CollisionBox) Bottom() float64 { return b.Pos.Y + b.Size.Y }

// Center returns the box center
func (b CollisionBox) Center() cp.Vector {
	return b.Pos.Add(b.Size.Mult(0.5))
}

// Bounds returns the box as a chipmunk bounding box.
// cp.BB is Y-up, so B holds the numerically smaller Y (our top edge).
func (b CollisionBox) Bounds() cp.BB {
	return cp.BB{L: b.Left(), B: b.Top(), R: b.Right(), T: b.Bottom()}
}

// CheckCollision reports whether b and other overlap on both axes.
// On overlap the returned vector is the minimum translation that, added to
// b.Pos, separates the boxes. It points from other toward b and lies on the
// axis of least penetration (Y wins ties). Without overlap it is the zero
// vector and must be ignored.
func (b CollisionBox) CheckCollision(other CollisionBox) (bool, cp.Vector) {
	// cp.BB.Intersects is inclusive, so touching edges still need the
	// penetration check below.
	if !b.Bounds().Intersects(other.Bounds()) {
		return false, cp.Vector{}
	}

	d := b.Center().Sub(other.Center())
	penX := (b.Size.X+other.Size.X)/2 - math.Abs(d.X)
	penY := (b.Size.Y+other.Size.Y)/2 - math.Abs(d.Y)
	if penX <= 0 || penY <= 0 {
		return false, cp.Vector{}
	}

	if penX < penY {
		return true, cp.Vector{X: math.Copysign(penX, d.X)}
	}
	return true, cp.Vector{Y: math.Copysign(penY, d.Y)}
}
