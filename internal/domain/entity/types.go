package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGround
	TileWall
)

// Tile represents a single tile in the stage.
// Landing on a Ground tile counts as ground contact; walls only block.
type Tile struct {
	Type  TileType
	Solid bool
}

// IsGround reports whether touching the tile lands the character
func (t Tile) IsGround() bool {
	return t.Type == TileGround && t.Solid
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

// GetTile returns the tile at the given tile coordinates.
// Anything outside the stage is a solid wall.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	tx := px / s.TileSize
	ty := py / s.TileSize
	return s.GetTile(tx, ty)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// PixelSize returns the stage size in pixels
func (s *Stage) PixelSize() (w, h int) {
	return s.Width * s.TileSize, s.Height * s.TileSize
}
