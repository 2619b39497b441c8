// Package player implements the player-controlled entity: fixed-step motion,
// collision response against level partners, and animation selection.
package player

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/ledgegrab/internal/application/system"
	"github.com/younwookim/ledgegrab/internal/domain/animation"
	"github.com/younwookim/ledgegrab/internal/domain/entity"
	"github.com/younwookim/ledgegrab/internal/infrastructure/config"
	"github.com/younwookim/ledgegrab/internal/infrastructure/render"
)

// HealthCounter is the health display the controller reports to.
// The counter clamps its own value; Change(true) is one point of damage,
// Change(false) one point of healing.
type HealthCounter interface {
	Value() int
	Max() int
	Change(damage bool)
}

// Bounds is the horizontal range the player box is kept inside
type Bounds struct {
	MinX float64
	MaxX float64
}

// Controller is the player entity
type Controller struct {
	entity.Base

	sprite *render.Sprite
	health HealthCounter
	anims  *animation.Set
	active animation.ID

	move   config.MovementConfig
	hitCfg config.HitConfig
	scale  float64
	frameW float64
	frameH float64
	pivotY float64
	bounds Bounds

	input system.InputState

	velocity     cp.Vector
	acceleration float64
	facing       float64 // +1 right, -1 left
	grabDir      float64 // side of the grabbed platform, +1 right, -1 left
	gold         int

	alive       bool
	grounded    bool
	wasGrounded bool
	grabbing    bool
	hit         bool
	moveable    bool

	hitCount int
	hitTimer float64
}

// New creates a player at the spawn box of cfg. It fails when cfg names an
// unknown clip or leaves one of the required clips undefined.
func New(sprite *render.Sprite, health HealthCounter, cfg *config.PlayerConfig, bounds Bounds, dt, fixedDT float64) (*Controller, error) {
	defs := make(map[animation.ID]animation.Def, len(cfg.Animations))
	for name, a := range cfg.Animations {
		id, ok := animation.ParseID(name)
		if !ok {
			return nil, fmt.Errorf("player: unknown animation %q", name)
		}
		defs[id] = animation.Def{
			Frames:        a.Frames,
			FrameDuration: a.FrameDuration,
			Layout: animation.Layout{
				FrameW:     cfg.Sprite.FrameWidth,
				FrameH:     cfg.Sprite.FrameHeight,
				Row:        a.Row,
				StartFrame: a.StartFrame,
			},
		}
	}

	anims, err := animation.NewSet(defs, sprite)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	scale := cfg.Sprite.Scale
	if scale == 0 {
		scale = 1
	}

	c := &Controller{
		Base:   entity.NewBase(entity.NewCollisionBox(cfg.Box.X, cfg.Box.Y, cfg.Box.Width, cfg.Box.Height), dt, fixedDT),
		sprite: sprite,
		health: health,
		anims:  anims,
		move:   cfg.Movement,
		hitCfg: cfg.Hit,
		scale:  scale,
		frameW: float64(cfg.Sprite.FrameWidth),
		frameH: float64(cfg.Sprite.FrameHeight),
		pivotY: cfg.Sprite.OriginY,
		bounds: bounds,
	}
	c.reset()
	return c, nil
}

// SetInput stores the input snapshot consumed by the next Update and
// platform pass
func (c *Controller) SetInput(in system.InputState) {
	c.input = in
}

// SetTuning swaps movement and hit tuning in place. Box size and clips are
// fixed at construction.
func (c *Controller) SetTuning(cfg *config.PlayerConfig) {
	baseline := c.acceleration == c.move.Damping
	c.move = cfg.Movement
	c.hitCfg = cfg.Hit
	if baseline {
		c.acceleration = c.move.Damping
	} else {
		c.acceleration = c.move.HitDamping
	}
}

// Respawn moves the box's top-left corner to x, y and clears all motion and
// state bits. Health is owned by the counter and left untouched.
func (c *Controller) Respawn(x, y float64) {
	c.MutableBox().Pos = cp.Vector{X: x, Y: y}
	c.reset()
}

func (c *Controller) reset() {
	c.velocity = cp.Vector{}
	c.acceleration = c.move.Damping
	c.alive = true
	c.grounded = false
	c.wasGrounded = false
	c.grabbing = false
	c.hit = false
	c.moveable = true
	c.hitCount = 0
	c.hitTimer = 0
	c.gold = 0

	for id := animation.ID(0); id < animation.NumIDs; id++ {
		c.anims.Get(id).SetFrame(0)
	}
	c.active = animation.Idle
	c.anims.Get(animation.Idle).Apply()

	c.sprite.SetAlpha(c.hitCfg.BlinkAlphaHigh)
	c.setFacing(1)
	c.syncSprite()
}

// FixedUpdate integrates one fixed physics step
func (c *Controller) FixedUpdate() {
	dt := c.FixedDT()

	if !c.grabbing {
		c.velocity.Y += c.move.Gravity * dt
	}
	c.velocity.X *= c.acceleration

	box := c.MutableBox()
	box.Pos = box.Pos.Add(c.velocity.Mult(dt))

	if math.Abs(c.velocity.X) < c.move.Deadband {
		c.velocity.X = 0
	}

	c.keepInBounds()
	c.syncSprite()
}

// Update runs the per-frame phase: animation, input, blink timer, liveness
func (c *Controller) Update() {
	c.animate()
	c.applyInput()
	c.updateHitTimer()

	if c.health.Value() <= 0 {
		c.alive = false
	}
}

func (c *Controller) animate() {
	dt := c.DT()

	if !c.moveable {
		// Control returns once the clip wraps off its last frame
		clip := c.play(animation.TakeDamage)
		last := clip.IsLast()
		clip.Update(dt)
		if last && clip.CurrentFrame() == 0 {
			c.moveable = true
			c.acceleration = c.move.Damping
		}
		return
	}

	switch {
	case c.velocity.Y == 0:
		if c.velocity.X != 0 {
			c.play(animation.Move).Update(dt)
		} else {
			c.play(animation.Idle).Update(dt)
		}
	case c.velocity.Y < 0:
		// Hold the last jump frame until the player starts falling
		if clip := c.play(animation.Jump); !clip.IsLast() {
			clip.Update(dt)
		}
	default:
		c.play(animation.Fall).Update(dt)
	}
}

// play makes id the shown clip and returns it
func (c *Controller) play(id animation.ID) *animation.Clip {
	clip := c.anims.Get(id)
	if c.active != id {
		c.active = id
		clip.Apply()
	}
	return clip
}

func (c *Controller) applyInput() {
	if !c.moveable {
		return
	}
	in := c.input

	if (c.grounded || c.grabbing) && in.JumpPressed {
		c.grounded = false
		c.grabbing = false
		c.velocity.Y = c.move.JumpVelocity
		c.anims.Get(animation.Jump).SetFrame(0)
	}

	// Pushing away from a grabbed ledge lets go; any other horizontal input is
	// ignored while hanging
	if c.grabbing {
		if !(in.Left && c.grabDir > 0) && !(in.Right && c.grabDir < 0) {
			return
		}
		c.grabbing = false
	}

	if in.Left {
		c.velocity.X = -c.move.MoveSpeed
		c.setFacing(-1)
	}
	if in.Right {
		c.velocity.X = c.move.MoveSpeed
		c.setFacing(1)
	}
}

func (c *Controller) updateHitTimer() {
	if !c.hit {
		return
	}

	if c.hitCount >= c.hitCfg.BlinkToggles {
		c.hitCount = 0
		c.hit = false
		c.sprite.SetAlpha(c.hitCfg.BlinkAlphaHigh)
		return
	}

	if c.hitCount%2 == 0 {
		c.sprite.SetAlpha(c.hitCfg.BlinkAlphaLow)
	} else {
		c.sprite.SetAlpha(c.hitCfg.BlinkAlphaHigh)
	}

	c.hitTimer += c.DT()
	if c.hitTimer > c.hitCfg.BlinkInterval {
		c.hitCount++
		c.hitTimer = 0
	}
}

func (c *Controller) keepInBounds() {
	box := c.MutableBox()
	maxX := c.bounds.MaxX - box.Size.X
	if box.Pos.X < c.bounds.MinX {
		box.Pos.X = c.bounds.MinX
	} else if box.Pos.X > maxX {
		box.Pos.X = maxX
	}
}

// syncSprite anchors the sprite pivot to the bottom center of the box
func (c *Controller) syncSprite() {
	box := c.Box()
	c.sprite.SetOrigin(c.frameW/2, c.frameH*c.pivotY)
	c.sprite.SetPosition(box.Pos.X+box.Size.X/2, box.Bottom())
}

func (c *Controller) setFacing(dir float64) {
	c.facing = dir
	c.sprite.SetScale(dir*c.scale, c.scale)
}

// IsAlive reports whether health is still above zero
func (c *Controller) IsAlive() bool { return c.alive }

// Grounded reports whether the last platform pass landed the player
func (c *Controller) Grounded() bool { return c.grounded }

// WasGrounded reports whether the player has landed since it last fell
func (c *Controller) WasGrounded() bool { return c.wasGrounded }

// Grabbing reports whether the player hangs on a ledge
func (c *Controller) Grabbing() bool { return c.grabbing }

// Hit reports whether the invulnerability window is active
func (c *Controller) Hit() bool { return c.hit }

// Moveable reports whether input is accepted (false while taking damage)
func (c *Controller) Moveable() bool { return c.moveable }

// Velocity returns the current velocity in pixels per second
func (c *Controller) Velocity() cp.Vector { return c.velocity }

// Acceleration returns the current horizontal damping factor
func (c *Controller) Acceleration() float64 { return c.acceleration }

// Facing returns +1 when facing right and -1 when facing left
func (c *Controller) Facing() float64 { return c.facing }

// Gold returns the collected gold
func (c *Controller) Gold() int { return c.gold }

// Animation returns the clip for id
func (c *Controller) Animation(id animation.ID) *animation.Clip { return c.anims.Get(id) }

// ActiveAnimation returns the clip currently shown
func (c *Controller) ActiveAnimation() animation.ID { return c.active }

// Sprite returns the owned render handle
func (c *Controller) Sprite() *render.Sprite { return c.sprite }
