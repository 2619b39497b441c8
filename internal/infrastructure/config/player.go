package config

import (
	"errors"
	"fmt"
)

// PlayerConfig is the root config for player.yaml
type PlayerConfig struct {
	Box        BoxConfig                  `yaml:"box"`
	Sprite     SpriteConfig               `yaml:"sprite"`
	Movement   MovementConfig             `yaml:"movement"`
	Hit        HitConfig                  `yaml:"hit"`
	Health     HealthConfig               `yaml:"health"`
	Animations map[string]AnimationConfig `yaml:"animations"`
}

// BoxConfig is the collision box at spawn (top-left corner and size)
type BoxConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteConfig struct {
	Sheet       string  `yaml:"sheet"`
	FrameWidth  int     `yaml:"frameWidth"`
	FrameHeight int     `yaml:"frameHeight"`
	Scale       float64 `yaml:"scale"`
	OriginY     float64 `yaml:"originY"` // pivot height as a fraction of the frame height
}

type MovementConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"moveSpeed"`
	JumpVelocity float64 `yaml:"jumpVelocity"` // negative is up
	Damping      float64 `yaml:"damping"`      // per-step horizontal velocity multiplier
	HitDamping   float64 `yaml:"hitDamping"`   // damping while knocked back
	Deadband     float64 `yaml:"deadband"`     // |vx| below this snaps to 0
}

type HitConfig struct {
	KnockbackX     float64 `yaml:"knockbackX"`
	KnockbackY     float64 `yaml:"knockbackY"`
	BlinkInterval  float64 `yaml:"blinkInterval"`
	BlinkToggles   int     `yaml:"blinkToggles"`
	BlinkAlphaLow  uint8   `yaml:"blinkAlphaLow"`
	BlinkAlphaHigh uint8   `yaml:"blinkAlphaHigh"`
}

type HealthConfig struct {
	Max int `yaml:"max"`
}

type AnimationConfig struct {
	Row           int     `yaml:"row"`
	StartFrame    int     `yaml:"startFrame"`
	Frames        int     `yaml:"frames"`
	FrameDuration float64 `yaml:"frameDuration"`
}

// Validate rejects tuning the simulation cannot run with
func (c *PlayerConfig) Validate() error {
	var errs []error
	if c.Box.Width < 0 || c.Box.Height < 0 {
		errs = append(errs, fmt.Errorf("box size must be non-negative, got %vx%v", c.Box.Width, c.Box.Height))
	}
	if c.Sprite.FrameWidth <= 0 || c.Sprite.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("sprite frame size must be positive, got %dx%d", c.Sprite.FrameWidth, c.Sprite.FrameHeight))
	}
	if c.Movement.Damping <= 0 || c.Movement.Damping > 1 {
		errs = append(errs, fmt.Errorf("movement.damping must be in (0, 1], got %v", c.Movement.Damping))
	}
	if c.Movement.HitDamping <= 0 || c.Movement.HitDamping > 1 {
		errs = append(errs, fmt.Errorf("movement.hitDamping must be in (0, 1], got %v", c.Movement.HitDamping))
	}
	if c.Hit.BlinkInterval <= 0 {
		errs = append(errs, errors.New("hit.blinkInterval must be positive"))
	}
	if c.Hit.BlinkToggles <= 0 {
		errs = append(errs, errors.New("hit.blinkToggles must be positive"))
	}
	if c.Health.Max <= 0 {
		errs = append(errs, errors.New("health.max must be positive"))
	}
	return errors.Join(errs...)
}
