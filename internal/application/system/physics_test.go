package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/springjump/internal/domain/entity"
	"github.com/younwookim/springjump/internal/infrastructure/config"
)

const step = 1.0 / 60.0

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{Framerate: 60},
		Physics: config.PhysicsSettings{
			Gravity:           900,
			Iterations:        10,
			ImpulseScale:      0.5,
			GroundGraceFrames: 6,
		},
		Character: config.CharacterConfig{
			Width:    14,
			Height:   22,
			Mass:     1,
			Friction: 0.9,
		},
	}
}

// createTestStage builds a 10x8 box: walls on the sides and ceiling, ground on the floor
func createTestStage() *entity.Stage {
	const w, h = 10, 8
	tiles := make([][]entity.Tile, h)
	for y := 0; y < h; y++ {
		tiles[y] = make([]entity.Tile, w)
		for x := 0; x < w; x++ {
			switch {
			case y == h-1:
				tiles[y][x] = entity.Tile{Type: entity.TileGround, Solid: true}
			case x == 0 || x == w-1 || y == 0:
				tiles[y][x] = entity.Tile{Type: entity.TileWall, Solid: true}
			default:
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty}
			}
		}
	}

	return &entity.Stage{
		Width:    w,
		Height:   h,
		TileSize: 16,
		Tiles:    tiles,
		SpawnX:   80,
		SpawnY:   90,
	}
}

func settle(sys *PhysicsSystem, frames int) {
	for i := 0; i < frames; i++ {
		sys.Step(step)
	}
}

func TestNewPhysicsSystem(t *testing.T) {
	cfg := createTestPhysicsConfig()

	sys := NewPhysicsSystem(cfg, createTestStage())

	require.NotNil(t, sys)
	assert.Equal(t, uint(10), sys.Space().Iterations)
	assert.Equal(t, cp.Vector{X: 0, Y: 900}, sys.Space().Gravity())
	assert.False(t, sys.Grounded())
}

func TestPhysicsSystem_NoCharacter(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createTestStage())

	sys.ApplyImpulse(cp.Vector{X: 10, Y: 10})
	sys.Step(step)

	x, y := sys.Position()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Equal(t, cp.Vector{}, sys.Velocity())
}

func TestPhysicsSystem_FallsAndLands(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createTestStage())
	landings := 0
	sys.OnGroundContact = func() { landings++ }

	sys.SpawnCharacter(80, 60)
	settle(sys, 120)

	assert.True(t, sys.Grounded())
	assert.Equal(t, 1, landings)

	// floor top is at 7*16 = 112; centre rests half a body above it
	_, y := sys.Position()
	assert.InDelta(t, 112-11, y, 1.5)
}

func TestPhysicsSystem_ImpulseIsYUp(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createTestStage())
	sys.SpawnCharacter(80, 60)
	settle(sys, 120)
	require.True(t, sys.Grounded())

	sys.ApplyImpulse(cp.Vector{X: 100, Y: 400})

	v := sys.Velocity()
	assert.InDelta(t, 50, v.X, 1, "impulse scaled by 0.5 over mass 1")
	assert.InDelta(t, -200, v.Y, 1, "positive Y impulse moves up the screen")
}

func TestPhysicsSystem_LeavesAndReturnsToGround(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createTestStage())
	landings := 0
	sys.OnGroundContact = func() { landings++ }
	sys.SpawnCharacter(80, 60)
	settle(sys, 120)
	require.Equal(t, 1, landings)

	sys.ApplyImpulse(cp.Vector{X: 0, Y: 400})
	settle(sys, 5)
	assert.False(t, sys.Grounded())

	settle(sys, 120)
	assert.True(t, sys.Grounded())
	assert.Equal(t, 2, landings)
}

func TestPhysicsSystem_WallsAreNotGround(t *testing.T) {
	stage := createTestStage()
	// replace the floor with wall tiles
	for x := range stage.Tiles[stage.Height-1] {
		stage.Tiles[stage.Height-1][x] = entity.Tile{Type: entity.TileWall, Solid: true}
	}
	sys := NewPhysicsSystem(createTestPhysicsConfig(), stage)
	landed := false
	sys.OnGroundContact = func() { landed = true }

	sys.SpawnCharacter(80, 60)
	settle(sys, 120)

	assert.False(t, landed)
	assert.False(t, sys.Grounded())
	_, y := sys.Position()
	assert.Less(t, y, 112.0, "wall still blocks the fall")
}

func TestPhysicsSystem_Sync(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createTestStage())
	sys.SpawnCharacter(40, 50)
	body := entity.NewBody(0, 0, 14, 22)

	sys.Sync(body)

	assert.Equal(t, 40.0, body.X)
	assert.Equal(t, 50.0, body.Y)
}

func TestPhysicsSystem_Respawn(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createTestStage())
	sys.SpawnCharacter(80, 60)
	settle(sys, 120)
	require.True(t, sys.Grounded())

	sys.SpawnCharacter(40, 40)

	x, y := sys.Position()
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 40.0, y)
	assert.False(t, sys.Grounded())
}

func TestPhysicsSystem_SetConfig(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createTestStage())

	cfg := createTestPhysicsConfig()
	cfg.Physics.Gravity = 400
	cfg.Physics.Iterations = 3
	sys.SetConfig(cfg)

	assert.Equal(t, cp.Vector{X: 0, Y: 400}, sys.Space().Gravity())
	assert.Equal(t, uint(3), sys.Space().Iterations)
}
