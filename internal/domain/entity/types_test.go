package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestStage() *Stage {
	// 3x3 stage: walls on the sides, ground along the bottom
	tiles := [][]Tile{
		{{Type: TileWall, Solid: true}, {Type: TileEmpty}, {Type: TileWall, Solid: true}},
		{{Type: TileWall, Solid: true}, {Type: TileEmpty}, {Type: TileWall, Solid: true}},
		{{Type: TileGround, Solid: true}, {Type: TileGround, Solid: true}, {Type: TileGround, Solid: true}},
	}

	return &Stage{
		Width:    3,
		Height:   3,
		TileSize: 16,
		Tiles:    tiles,
		SpawnX:   24,
		SpawnY:   24,
	}
}

func TestStage_GetTile(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name      string
		tx, ty    int
		wantType  TileType
		wantSolid bool
	}{
		{"top-left wall", 0, 0, TileWall, true},
		{"top-center empty", 1, 0, TileEmpty, false},
		{"bottom-center ground", 1, 2, TileGround, true},
		{"out of bounds left", -1, 1, TileWall, true},
		{"out of bounds below", 1, 3, TileWall, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, tt.wantType, tile.Type)
			assert.Equal(t, tt.wantSolid, tile.Solid)
		})
	}
}

func TestStage_IsSolidAt(t *testing.T) {
	stage := createTestStage()

	assert.True(t, stage.IsSolidAt(0, 0))
	assert.False(t, stage.IsSolidAt(20, 20))
	assert.True(t, stage.IsSolidAt(20, 40))
}

func TestTile_IsGround(t *testing.T) {
	assert.True(t, Tile{Type: TileGround, Solid: true}.IsGround())
	assert.False(t, Tile{Type: TileGround}.IsGround(), "non-solid ground cannot be landed on")
	assert.False(t, Tile{Type: TileWall, Solid: true}.IsGround())
}

func TestStage_PixelSize(t *testing.T) {
	w, h := createTestStage().PixelSize()
	assert.Equal(t, 48, w)
	assert.Equal(t, 48, h)
}
