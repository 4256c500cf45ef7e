package jump

import (
	"image/color"
	"io"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/springjump/internal/domain/entity"
)

// Animation flag names pushed to the AnimationState sink
const (
	FlagCharging = "Charging"
	FlagInAir    = "InAir"
)

// PhysicsBody receives the release impulse. The vector is in a Y-up frame.
type PhysicsBody interface {
	ApplyImpulse(impulse cp.Vector)
}

// AnimationState receives boolean animation flags
type AnimationState interface {
	SetBool(name string, value bool)
}

// RenderState receives the sprite tint used as charge feedback
type RenderState interface {
	SetTint(tint color.RGBA)
}

// Mirror flips the character sprite horizontally
type Mirror interface {
	Flip()
}

// InputSource provides jump key edges and the cursor position for one frame
type InputSource interface {
	JumpPressed() bool
	JumpReleased() bool
	Cursor() (x, y int)
}

// CameraProjector turns a cursor position into a unit aim vector (Y-up)
// pointing from the world point (fromX, fromY) toward the cursor.
type CameraProjector interface {
	AimDirection(fromX, fromY float64, cursorX, cursorY int) cp.Vector
}

// Deps are the host services a Controller drives. Mirror and Logger are optional.
type Deps struct {
	Physics PhysicsBody
	Anim    AnimationState
	Render  RenderState
	Mirror  Mirror
	Logger  *log.Logger
}

// Controller is the charge jump state machine for one character
type Controller struct {
	cfg    Config
	cycle  Cycle
	motion entity.Motion
	facing entity.Facing

	physics PhysicsBody
	anim    AnimationState
	render  RenderState
	mirror  Mirror
	logger  *log.Logger
}

// NewController creates a grounded, right-facing controller
func NewController(cfg Config, deps Deps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{
		cfg:     cfg,
		cycle:   NewCycle(cfg),
		motion:  entity.Grounded,
		facing:  entity.FacingRight,
		physics: deps.Physics,
		anim:    deps.Anim,
		render:  deps.Render,
		mirror:  deps.Mirror,
		logger:  logger,
	}
}

// OnChargeButtonDown starts a new charge. Ignored while airborne.
func (c *Controller) OnChargeButtonDown() {
	if c.motion == entity.Airborne {
		return
	}
	c.cycle.Start()
	c.anim.SetBool(FlagCharging, true)
	c.logger.Printf("charge: start")
}

// OnChargeButtonUp releases the charge as an impulse along aim.
// It returns the applied impulse and whether a jump happened. Nothing
// happens while airborne; a release with no charge running jumps at
// minimum strength.
func (c *Controller) OnChargeButtonUp(aim cp.Vector) (cp.Vector, bool) {
	if c.motion == entity.Airborne {
		return cp.Vector{}, false
	}

	strength := c.Strength()
	held := c.cycle.Held()
	c.cycle.Cancel()
	c.render.SetTint(c.cfg.BaseTint)

	impulse := ReleaseImpulse(aim, strength, c.cfg)
	c.physics.ApplyImpulse(impulse)

	c.anim.SetBool(FlagCharging, false)
	c.anim.SetBool(FlagInAir, true)
	c.motion = entity.Airborne

	c.logger.Printf("charge: release after %.2fs strength=(%.0f,%.0f) impulse=(%.1f,%.1f)",
		held, strength.X, strength.Y, impulse.X, impulse.Y)
	return impulse, true
}

// Tick runs once per simulation step. The facing check runs every tick,
// airborne or not; the charge advances only while one is running.
func (c *Controller) Tick(dt float64, aim cp.Vector) {
	if c.facing.ShouldFlip(aim.X) {
		c.facing = c.facing.Flip()
		if c.mirror != nil {
			c.mirror.Flip()
		}
	}

	if !c.cycle.Active() {
		return
	}
	c.cycle.Advance(dt)
	c.render.SetTint(c.Tint())
}

// Update polls one frame of input and advances the controller: press, then
// release, then Tick. origin is the character centre in world coordinates.
// It returns the aim direction used this frame.
func (c *Controller) Update(dt float64, in InputSource, proj CameraProjector, originX, originY float64) cp.Vector {
	cx, cy := in.Cursor()
	aim := proj.AimDirection(originX, originY, cx, cy)

	if in.JumpPressed() {
		c.OnChargeButtonDown()
	}
	if in.JumpReleased() {
		c.OnChargeButtonUp(aim)
	}
	c.Tick(dt, aim)
	return aim
}

// OnGroundContact lands the character
func (c *Controller) OnGroundContact() {
	c.anim.SetBool(FlagInAir, false)
	c.motion = entity.Grounded
}

// OnLeftGround marks the character airborne without a jump, e.g. after
// sliding off a ledge. A charge in progress is dropped.
func (c *Controller) OnLeftGround() {
	c.Interrupt()
	c.anim.SetBool(FlagInAir, true)
	c.motion = entity.Airborne
}

// Interrupt drops a charge in progress without jumping. It does nothing when idle.
func (c *Controller) Interrupt() {
	if !c.cycle.Cancel() {
		return
	}
	c.render.SetTint(c.cfg.BaseTint)
	c.anim.SetBool(FlagCharging, false)
	c.logger.Printf("charge: interrupted")
}

// Charging reports whether a charge is running
func (c *Controller) Charging() bool {
	return c.cycle.Active()
}

// Motion returns the ground state
func (c *Controller) Motion() entity.Motion {
	return c.motion
}

// Facing returns the facing direction
func (c *Controller) Facing() entity.Facing {
	return c.facing
}

// Phase returns the current charge phase
func (c *Controller) Phase() Phase {
	return c.cycle.Phase()
}

// Intensity returns the charge level in [0,1]; 0 when idle
func (c *Controller) Intensity() float64 {
	return c.cycle.Level()
}

// Strength returns the strength a release would use right now
func (c *Controller) Strength() Strength {
	return c.cfg.StrengthAt(c.cycle.Level())
}

// Tint returns the sprite tint for the current charge
func (c *Controller) Tint() color.RGBA {
	return c.cfg.TintAt(c.cycle.Level())
}

// SetConfig swaps the tuning. A charge in progress is dropped.
func (c *Controller) SetConfig(cfg Config) {
	c.Interrupt()
	c.cfg = cfg
	c.cycle = NewCycle(cfg)
}

// Config returns the current tuning
func (c *Controller) Config() Config {
	return c.cfg
}
