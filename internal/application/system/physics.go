package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/springjump/internal/domain/entity"
	"github.com/younwookim/springjump/internal/infrastructure/config"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeFeet
	collisionTypeGround
	collisionTypeWall
)

// PhysicsSystem owns the Chipmunk space for one stage and the character body in it.
// Positions are world pixels with Y growing downward.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	stage  *entity.Stage
	space  *cp.Space

	body  *cp.Body
	shape *cp.Shape
	feet  *cp.Shape

	contacts int

	// OnGroundContact is called when the feet sensor first touches ground
	OnGroundContact func()
}

// NewPhysicsSystem creates a space with static shapes for every solid tile run
func NewPhysicsSystem(cfg *config.PhysicsConfig, stage *entity.Stage) *PhysicsSystem {
	space := cp.NewSpace()
	if cfg.Physics.Iterations > 0 {
		space.Iterations = uint(cfg.Physics.Iterations)
	}
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Physics.Gravity})

	s := &PhysicsSystem{
		config: cfg,
		stage:  stage,
		space:  space,
	}
	s.buildStaticShapes()
	s.setupHandlers()
	return s
}

// buildStaticShapes merges horizontal runs of solid tiles of the same type into one box each
func (s *PhysicsSystem) buildStaticShapes() {
	size := float64(s.stage.TileSize)
	for ty := 0; ty < s.stage.Height; ty++ {
		for tx := 0; tx < s.stage.Width; {
			tile := s.stage.GetTile(tx, ty)
			if !tile.Solid {
				tx++
				continue
			}
			start := tx
			for tx < s.stage.Width {
				next := s.stage.GetTile(tx, ty)
				if !next.Solid || next.Type != tile.Type {
					break
				}
				tx++
			}

			bb := cp.BB{
				L: float64(start) * size,
				B: float64(ty) * size,
				R: float64(tx) * size,
				T: float64(ty+1) * size,
			}
			shape := cp.NewBox2(s.space.StaticBody, bb, 0)
			shape.SetFriction(1)
			if tile.IsGround() {
				shape.SetCollisionType(collisionTypeGround)
			} else {
				shape.SetCollisionType(collisionTypeWall)
			}
			s.space.AddShape(shape)
		}
	}
}

func (s *PhysicsSystem) setupHandlers() {
	handler := s.space.NewCollisionHandler(collisionTypeFeet, collisionTypeGround)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		s.contacts++
		if s.contacts == 1 && s.OnGroundContact != nil {
			s.OnGroundContact()
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if s.contacts > 0 {
			s.contacts--
		}
	}
}

// SpawnCharacter adds the character body centred at (x, y).
// Rotation is locked so the box never tips over.
func (s *PhysicsSystem) SpawnCharacter(x, y float64) {
	c := s.config.Character
	if s.body != nil {
		s.space.RemoveShape(s.feet)
		s.space.RemoveShape(s.shape)
		s.space.RemoveBody(s.body)
		s.contacts = 0
	}

	body := cp.NewBody(c.Mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, c.Width, c.Height, 0)
	shape.SetFriction(c.Friction)
	shape.SetElasticity(c.Elasticity)
	shape.SetCollisionType(collisionTypeCharacter)

	feet := cp.NewBox2(body, cp.BB{
		L: -c.Width * 0.45,
		B: c.Height / 2,
		R: c.Width * 0.45,
		T: c.Height/2 + 2,
	}, 0)
	feet.SetSensor(true)
	feet.SetCollisionType(collisionTypeFeet)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	s.space.AddShape(feet)

	s.body = body
	s.shape = shape
	s.feet = feet
	log.Printf("physics: character spawned at (%.0f,%.0f)", x, y)
}

// ApplyImpulse applies a Y-up impulse to the character at its centre.
// It implements jump.PhysicsBody.
func (s *PhysicsSystem) ApplyImpulse(impulse cp.Vector) {
	if s.body == nil {
		return
	}
	scale := s.config.Physics.ImpulseScale
	if scale == 0 {
		scale = 1
	}
	world := cp.Vector{X: impulse.X * scale, Y: -impulse.Y * scale}
	s.body.ApplyImpulseAtWorldPoint(world, s.body.Position())
}

// SetConfig swaps tuning without rebuilding the stage. The character body
// keeps its shape until the next SpawnCharacter.
func (s *PhysicsSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
	if cfg.Physics.Iterations > 0 {
		s.space.Iterations = uint(cfg.Physics.Iterations)
	}
	s.space.SetGravity(cp.Vector{X: 0, Y: cfg.Physics.Gravity})
}

// Step advances the simulation by dt seconds
func (s *PhysicsSystem) Step(dt float64) {
	s.space.Step(dt)
}

// Sync copies the simulated position into body
func (s *PhysicsSystem) Sync(body *entity.Body) {
	if s.body == nil {
		return
	}
	p := s.body.Position()
	body.SetPosition(p.X, p.Y)
}

// Position returns the character centre in world pixels
func (s *PhysicsSystem) Position() (x, y float64) {
	if s.body == nil {
		return 0, 0
	}
	p := s.body.Position()
	return p.X, p.Y
}

// Velocity returns the character velocity in pixels per second (Y-down)
func (s *PhysicsSystem) Velocity() cp.Vector {
	if s.body == nil {
		return cp.Vector{}
	}
	return s.body.Velocity()
}

// Grounded reports whether the feet sensor touches ground
func (s *PhysicsSystem) Grounded() bool {
	return s.contacts > 0
}

// Space returns the underlying Chipmunk space
func (s *PhysicsSystem) Space() *cp.Space {
	return s.space
}
