package system

import (
	"fmt"

	"github.com/younwookim/ledgegrab/internal/domain/entity"
	"github.com/younwookim/ledgegrab/internal/infrastructure/config"
)

// Resolver is the entity that collides against the combat partners
type Resolver interface {
	ResolveProjectiles(projectiles []*entity.Projectile) bool
	ResolvePickups(pickups []*entity.Pickup)
}

// Turret fires a projectile every Interval seconds after an initial Delay
type Turret struct {
	X, Y     float64
	Dir      entity.Direction
	Interval float64
	timer    float64
}

// CombatSystem owns the projectile and pickup collections and the turrets
// that feed them
type CombatSystem struct {
	config      *config.PhysicsConfig
	dt          float64
	fixedDT     float64
	turrets     []*Turret
	projectiles []*entity.Projectile
	pickups     []*entity.Pickup

	// Event callbacks
	OnPlayerHit func()
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.PhysicsConfig, dt, fixedDT float64) *CombatSystem {
	return &CombatSystem{
		config:      cfg,
		dt:          dt,
		fixedDT:     fixedDT,
		turrets:     make([]*Turret, 0, 8),
		projectiles: make([]*entity.Projectile, 0, 32),
		pickups:     make([]*entity.Pickup, 0, 16),
	}
}

// LoadSpawns adds the turrets and pickups a stage declares
func (s *CombatSystem) LoadSpawns(stage *config.StageConfig) error {
	for i, t := range stage.Turrets {
		dir, err := parseDirection(t.Direction)
		if err != nil {
			return fmt.Errorf("turret %d: %w", i, err)
		}
		s.SpawnTurret(float64(t.X), float64(t.Y), dir, t.Interval, t.Delay)
	}
	for i, p := range stage.Pickups {
		kind, ok := entity.ParsePickupKind(p.Type)
		if !ok {
			return fmt.Errorf("pickup %d: unknown type %q", i, p.Type)
		}
		s.SpawnPickup(kind, float64(p.X), float64(p.Y))
	}
	return nil
}

// SpawnTurret adds a turret whose first shot comes after delay seconds
func (s *CombatSystem) SpawnTurret(x, y float64, dir entity.Direction, interval, delay float64) {
	s.turrets = append(s.turrets, &Turret{
		X:        x,
		Y:        y,
		Dir:      dir,
		Interval: interval,
		timer:    delay,
	})
}

// SpawnProjectile fires a projectile from x, y
func (s *CombatSystem) SpawnProjectile(x, y float64, dir entity.Direction) *entity.Projectile {
	pc := s.config.Projectile
	proj := entity.NewProjectile(x, y, pc.Width, pc.Height, dir, pc.Speed, pc.MaxRange, s.dt, s.fixedDT)
	s.projectiles = append(s.projectiles, proj)
	return proj
}

// SpawnPickup places a pickup with its top-left corner at x, y
func (s *CombatSystem) SpawnPickup(kind entity.PickupKind, x, y float64) *entity.Pickup {
	pc := s.config.Pickup
	amount := 1
	if kind == entity.PickupGold {
		amount = pc.GoldAmount
	}
	pickup := entity.NewPickup(kind, x, y, pc.Width, pc.Height, amount, s.dt, s.fixedDT)
	s.pickups = append(s.pickups, pickup)
	return pickup
}

// FixedUpdate moves every projectile one physics step
func (s *CombatSystem) FixedUpdate() {
	for _, proj := range s.projectiles {
		proj.FixedUpdate()
	}
}

// Update ticks turrets, projectile ranges and pickup hover once per frame
func (s *CombatSystem) Update() {
	for _, t := range s.turrets {
		if t.Interval <= 0 {
			continue
		}
		t.timer -= s.dt
		if t.timer <= 0 {
			s.SpawnProjectile(t.X, t.Y, t.Dir)
			t.timer += t.Interval
		}
	}

	for _, proj := range s.projectiles {
		proj.Update()
	}
	for _, pickup := range s.pickups {
		pickup.Update()
	}
}

// Resolve lets r collide with every projectile and pickup, then drops the
// ones that were used up
func (s *CombatSystem) Resolve(r Resolver) {
	if r.ResolveProjectiles(s.projectiles) && s.OnPlayerHit != nil {
		s.OnPlayerHit()
	}
	r.ResolvePickups(s.pickups)
	s.prune()
}

func (s *CombatSystem) prune() {
	projectiles := s.projectiles[:0]
	for _, proj := range s.projectiles {
		if proj.Active {
			projectiles = append(projectiles, proj)
		}
	}
	clear(s.projectiles[len(projectiles):])
	s.projectiles = projectiles

	pickups := s.pickups[:0]
	for _, pickup := range s.pickups {
		if pickup.Exists {
			pickups = append(pickups, pickup)
		}
	}
	clear(s.pickups[len(pickups):])
	s.pickups = pickups
}

// GetProjectiles returns all live projectiles
func (s *CombatSystem) GetProjectiles() []*entity.Projectile {
	return s.projectiles
}

// GetPickups returns all pickups still in the level
func (s *CombatSystem) GetPickups() []*entity.Pickup {
	return s.pickups
}

// GetTurrets returns all turrets
func (s *CombatSystem) GetTurrets() []*Turret {
	return s.turrets
}

func parseDirection(name string) (entity.Direction, error) {
	switch name {
	case "right", "":
		return entity.DirRight, nil
	case "left":
		return entity.DirLeft, nil
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}
