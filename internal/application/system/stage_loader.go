package system

import (
	"github.com/younwookim/ledgegrab/internal/domain/entity"
	"github.com/younwookim/ledgegrab/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			// Unmapped characters stay empty
			if mapping, ok := cfg.TileMapping[string(char)]; ok {
				tiles[y][x] = entity.Tile{Solid: mapping.Solid}
			}
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}

// BuildLevel derives the collision level from a stage. A zero MaxX in
// bounds falls back to the stage pixel width.
func BuildLevel(stage *entity.Stage, bounds config.LevelConfig) *entity.Level {
	maxX := bounds.MaxX
	if maxX == 0 {
		maxX = float64(stage.PixelWidth())
	}
	return &entity.Level{
		MinX:      bounds.MinX,
		MaxX:      maxX,
		Platforms: stage.Platforms(),
		SpawnX:    float64(stage.SpawnX),
		SpawnY:    float64(stage.SpawnY),
	}
}
