package entity

// Tile represents a single tile in the stage
type Tile struct {
	Solid bool
}

// Stage represents the current stage's tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// GetTile returns the tile at the given tile coordinates. Anything outside
// the stage reads as empty.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{}
	}
	return s.Tiles[ty][tx]
}

// PixelWidth returns the stage width in pixels
func (s *Stage) PixelWidth() int {
	return s.Width * s.TileSize
}

// Platforms merges horizontal runs of solid tiles into platforms, row by row
// from top to bottom and left to right.
func (s *Stage) Platforms() []Platform {
	var platforms []Platform
	ts := float64(s.TileSize)

	for ty := 0; ty < s.Height; ty++ {
		runStart := -1
		for tx := 0; tx <= s.Width; tx++ {
			solid := s.GetTile(tx, ty).Solid
			if solid && runStart < 0 {
				runStart = tx
				continue
			}
			if !solid && runStart >= 0 {
				platforms = append(platforms, NewPlatform(
					float64(runStart)*ts, float64(ty)*ts,
					float64(tx-runStart)*ts, ts,
				))
				runStart = -1
			}
		}
	}
	return platforms
}

// Level is the static world a scene simulates against
type Level struct {
	MinX, MaxX float64 // horizontal clamp range for the player
	Platforms  []Platform
	SpawnX     float64
	SpawnY     float64
}
