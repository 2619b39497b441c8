package player

import (
	"github.com/jakecoffman/cp"
	"github.com/younwookim/ledgegrab/internal/domain/animation"
	"github.com/younwookim/ledgegrab/internal/domain/entity"
)

// ResolvePlatforms pushes the player out of every overlapping platform in
// order. Each correction is applied before the next platform is tested, so a
// later platform can undo an earlier one.
func (c *Controller) ResolvePlatforms(platforms []entity.Platform) {
	c.grounded = false

	for _, p := range platforms {
		pb := p.Box()
		overlap, mtv := c.Box().CheckCollision(pb)
		if !overlap {
			continue
		}

		if mtv.Y < 0 && c.velocity.Y >= 0 {
			c.grounded = true
			c.wasGrounded = true
			c.velocity.Y = 0
		} else if mtv.Y > 0 && c.velocity.Y < 0 {
			// Head bump
			c.velocity.Y = 0
		}

		box := c.MutableBox()
		box.Pos = box.Pos.Add(mtv)
		c.syncSprite()

		if mtv.X != 0 && c.velocity.Y > 0 && c.input.Jump && c.moveable {
			c.tryGrab(pb)
		}
	}

	if c.velocity.Y > 0 {
		c.wasGrounded = false
	}
}

// tryGrab hangs the player on the edge of pb when its feet are still above
// the platform's underside
func (c *Controller) tryGrab(pb entity.CollisionBox) {
	box := c.MutableBox()
	if box.Bottom() >= pb.Bottom() {
		return
	}

	c.grabbing = true
	c.velocity = cp.Vector{}

	if box.Center().X > pb.Center().X {
		c.grabDir = -1
	} else {
		c.grabDir = 1
	}
	c.setFacing(c.grabDir)

	box.Pos.Y = pb.Top() - box.Size.Y
	c.syncSprite()
}

// ResolveProjectiles applies damage and knockback for the first overlapping
// active projectile. Nothing happens while the invulnerability window is
// open. It reports whether a fresh hit landed.
func (c *Controller) ResolveProjectiles(projectiles []*entity.Projectile) bool {
	fresh := false
	for _, p := range projectiles {
		if !p.Active || c.hit {
			continue
		}
		if overlap, _ := c.Box().CheckCollision(p.Box()); !overlap {
			continue
		}

		c.health.Change(true)
		c.hit = true
		c.hitCount = 0
		c.hitTimer = 0
		c.grabbing = false
		c.moveable = false
		c.acceleration = c.move.HitDamping

		dir := p.Dir.Sign()
		c.velocity = cp.Vector{X: dir * c.hitCfg.KnockbackX, Y: c.hitCfg.KnockbackY}
		c.anims.Get(animation.TakeDamage).SetFrame(0)
		c.setFacing(-dir)

		p.Deactivate()
		fresh = true
	}
	return fresh
}

// ResolvePickups collects overlapping pickups. Hearts are only consumed when
// they actually restore health.
func (c *Controller) ResolvePickups(pickups []*entity.Pickup) {
	for _, p := range pickups {
		if !p.Exists {
			continue
		}
		if overlap, _ := c.Box().CheckCollision(p.Box()); !overlap {
			continue
		}

		switch p.Kind {
		case entity.PickupHeart:
			if c.health.Value() < c.health.Max() {
				c.health.Change(false)
				p.Consume()
			}
		case entity.PickupGold:
			c.gold += p.Amount
			p.Consume()
		}
	}
}
