package config

import (
	"errors"
	"fmt"
)

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Pickups     []PickupSpawnConfig          `json:"pickups"`
	Turrets     []TurretSpawnConfig          `json:"turrets"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
}

type PickupSpawnConfig struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// TurretSpawnConfig places a projectile emitter.
// Direction is "left" or "right".
type TurretSpawnConfig struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Direction string  `json:"direction"`
	Interval  float64 `json:"interval"`
	Delay     float64 `json:"delay"`
}

// Validate rejects stage geometry that cannot be turned into tiles
func (c *StageConfig) Validate() error {
	var errs []error
	if c.Size.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("size.tileSize must be positive, got %d", c.Size.TileSize))
	}
	if c.Size.Width < 0 || c.Size.Height < 0 {
		errs = append(errs, fmt.Errorf("size must be non-negative, got %dx%d", c.Size.Width, c.Size.Height))
	}
	if len(c.Layers.Collision) == 0 {
		errs = append(errs, errors.New("layers.collision is empty"))
	}
	return errors.Join(errs...)
}
