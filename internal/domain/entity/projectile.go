package entity

// Direction is the horizontal travel direction of a projectile
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// Sign returns +1 for DirRight and -1 for DirLeft
func (d Direction) Sign() float64 {
	if d == DirLeft {
		return -1
	}
	return 1
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Projectile is a hostile bullet flying horizontally at constant speed
type Projectile struct {
	Base

	Dir      Direction
	Speed    float64 // pixels per second
	StartX   float64
	MaxRange float64 // 0 = unlimited
	Active   bool
}

// NewProjectile creates an active projectile with its top-left corner at x, y
func NewProjectile(x, y, w, h float64, dir Direction, speed, maxRange, dt, fixedDT float64) *Projectile {
	return &Projectile{
		Base:     NewBase(NewCollisionBox(x, y, w, h), dt, fixedDT),
		Dir:      dir,
		Speed:    speed,
		StartX:   x,
		MaxRange: maxRange,
		Active:   true,
	}
}

// FixedUpdate moves the projectile along its travel direction
func (p *Projectile) FixedUpdate() {
	if !p.Active {
		return
	}
	p.MutableBox().Pos.X += p.Dir.Sign() * p.Speed * p.FixedDT()
}

// Update expires the projectile once it has flown past its range
func (p *Projectile) Update() {
	if !p.Active || p.MaxRange <= 0 {
		return
	}
	traveled := p.Box().Pos.X - p.StartX
	if traveled < 0 {
		traveled = -traveled
	}
	if traveled > p.MaxRange {
		p.Active = false
	}
}

// Deactivate marks the projectile for removal by its owner
func (p *Projectile) Deactivate() {
	p.Active = false
}
