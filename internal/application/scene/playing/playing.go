// Package playing provides the charge jump gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/younwookim/springjump/internal/application/replay"
	"github.com/younwookim/springjump/internal/application/scene"
	"github.com/younwookim/springjump/internal/application/state"
	"github.com/younwookim/springjump/internal/application/system"
	"github.com/younwookim/springjump/internal/domain/entity"
	"github.com/younwookim/springjump/internal/domain/jump"
	"github.com/younwookim/springjump/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorGround  = color.RGBA{90, 140, 80, 255}
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorEye     = color.RGBA{20, 20, 30, 255}
	colorAimRay  = color.RGBA{255, 255, 255, 160}
	colorOverlay = color.RGBA{0, 0, 0, 150}
)

// fallMargin is how far below the stage the character may fall before respawning
const fallMargin = 64

// InputSource supplies one frame of input
type InputSource interface {
	GetInput() system.InputState
}

// Options configures the optional parts of the scene. The zero value plays
// live from keyboard, mouse and gamepad with no recording or hot reload.
type Options struct {
	StageName string

	// RecordPath enables recording; Charge is the raw charge.yaml stored with it
	RecordPath string
	Charge     []byte

	// Replayer plays recorded input instead of the live devices
	Replayer *replay.Replayer

	// Input overrides the live input devices
	Input InputSource

	// Watcher and Loader enable config hot reload
	Watcher *config.Watcher
	Loader  *config.Loader

	// Logger receives charge controller events
	Logger *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	stageCfg *config.StageConfig
	stage    *entity.Stage
	state    state.GameState

	body       *entity.Body
	physics    *system.PhysicsSystem
	input      InputSource
	inputSys   *system.InputSystem
	camera     *system.Camera
	aim        *system.AimSystem
	animator   *system.Animator
	controller *jump.Controller

	screenW  int
	screenH  int
	tileSize int
	dt       float64

	aimDir         cp.Vector
	groundMismatch int
	frame          int

	replayer *replay.Replayer
	watcher  *config.Watcher
	loader   *config.Loader

	// Input recording
	recorder       *Recorder
	recordFilename string

	background color.RGBA
	pixel      *ebiten.Image
}

// New creates a new Playing scene and spawns the character at the stage spawn point
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, stage *entity.Stage, opts Options) *Playing {
	display := cfg.Physics.Display
	character := cfg.Physics.Character
	worldW, worldH := stage.PixelSize()

	camera := system.NewCamera(display.ScreenWidth, display.ScreenHeight, worldW, worldH)
	body := entity.NewBody(float64(stage.SpawnX), float64(stage.SpawnY), character.Width, character.Height)
	physics := system.NewPhysicsSystem(cfg.Physics, stage)
	animator := system.NewAnimator(cfg.Jump.BaseTint)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	controller := jump.NewController(cfg.Jump, jump.Deps{
		Physics: physics,
		Anim:    animator,
		Render:  animator,
		Mirror:  body,
		Logger:  logger,
	})
	physics.OnGroundContact = controller.OnGroundContact

	p := &Playing{
		config:         cfg,
		stageCfg:       stageCfg,
		stage:          stage,
		state:          state.StatePlaying,
		body:           body,
		physics:        physics,
		camera:         camera,
		aim:            system.NewAimSystem(camera),
		animator:       animator,
		controller:     controller,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		tileSize:       stage.TileSize,
		dt:             1.0 / float64(display.Framerate),
		replayer:       opts.Replayer,
		watcher:        opts.Watcher,
		loader:         opts.Loader,
		recordFilename: opts.RecordPath,
	}

	p.background = colorBG
	if stageCfg.Background != "" {
		if bg, err := config.ParseHexColor(stageCfg.Background); err == nil {
			p.background = bg
		} else {
			log.Printf("Stage %s: %v, using default background", stageCfg.ID, err)
		}
	}

	p.input = opts.Input
	if p.input == nil {
		p.inputSys = system.NewInputSystem(cfg.Controls)
		p.input = p.inputSys
	}

	if opts.RecordPath != "" && opts.Replayer == nil {
		p.recorder = NewRecorder(opts.StageName, opts.Charge)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	p.spawn()
	return p
}

func (p *Playing) spawn() {
	p.controller.Interrupt()
	p.physics.SpawnCharacter(float64(p.stage.SpawnX), float64(p.stage.SpawnY))
	p.physics.Sync(p.body)
	// spawn point is in the air; the first ground contact lands the character
	p.controller.OnLeftGround()
	p.groundMismatch = 0
	p.camera.Follow(p.body.X, p.body.Y)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyConfigChanges()

	if p.state == state.StateReplayFinished {
		return nil, nil
	}

	input, ok := p.nextInput()
	if !ok {
		p.state = state.StateReplayFinished
		log.Printf("Replay finished after %d frames", p.frame)
		return nil, nil
	}
	p.frame++

	if input.SaveReplay && p.recorder != nil {
		p.saveRecording()
	}

	switch p.state {
	case state.StatePlaying:
		if input.Pause {
			p.state = state.StatePaused
			p.controller.Interrupt()
			return nil, nil
		}
		p.updatePlaying(input)
	case state.StatePaused:
		if input.Pause {
			p.state = state.StatePlaying
		}
	}

	return nil, nil // nil = stay on this scene
}

// nextInput reads the next frame from the replay or the live devices.
// Live frames are recorded whatever the state so playback stays in step.
func (p *Playing) nextInput() (system.InputState, bool) {
	if p.replayer != nil {
		return p.replayer.GetInput()
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	return input, true
}

func (p *Playing) updatePlaying(input system.InputState) {
	p.aimDir = p.controller.Update(p.dt, input, p.aim, p.body.X, p.body.Y)

	p.physics.Step(p.dt)
	p.physics.Sync(p.body)
	p.reconcileGround()

	if p.body.Y > float64(p.stage.Height*p.tileSize+fallMargin) {
		log.Printf("Character fell out of the stage, respawning")
		p.spawn()
		return
	}

	p.applySquash()
	p.camera.Follow(p.body.X, p.body.Y)
}

// reconcileGround settles disagreements between the contact sensor and the
// controller that last longer than the grace period, such as a release too
// weak to leave the ground or sliding off a ledge.
func (p *Playing) reconcileGround() {
	grounded := p.physics.Grounded()
	if grounded == (p.controller.Motion() == entity.Grounded) {
		p.groundMismatch = 0
		return
	}

	p.groundMismatch++
	if p.groundMismatch < p.config.Physics.Physics.GroundGraceFrames {
		return
	}
	p.groundMismatch = 0

	if grounded {
		p.controller.OnGroundContact()
	} else {
		p.controller.OnLeftGround()
	}
}

// applySquash flattens the body as the charge builds, keeping the mirror sign
func (p *Playing) applySquash() {
	squash := p.config.Physics.Feedback.SquashStretch
	if !squash.Enabled {
		p.body.ScaleX = math.Copysign(1, p.body.ScaleX)
		p.body.ScaleY = 1
		return
	}
	amount := squash.MaxSquash * p.controller.Intensity()
	p.body.ScaleY = 1 - amount
	p.body.ScaleX = math.Copysign(1+amount/2, p.body.ScaleX)
}

func (p *Playing) applyConfigChanges() {
	if p.watcher == nil || p.loader == nil {
		return
	}

	for _, err := range p.watcher.PollErrors() {
		log.Printf("Config watch error: %v", err)
	}
	for _, name := range p.watcher.Poll() {
		if err := p.reload(name); err != nil {
			log.Printf("Config reload of %s failed, keeping previous values: %v", name, err)
			continue
		}
		log.Printf("Config reloaded: %s", name)
	}
}

func (p *Playing) reload(name string) error {
	switch name {
	case config.ChargeFile:
		charge, err := p.loader.LoadCharge()
		if err != nil {
			return err
		}
		jumpCfg, err := charge.JumpConfig()
		if err != nil {
			return err
		}
		p.config.Charge = charge
		p.config.Jump = jumpCfg
		p.controller.SetConfig(jumpCfg)
		p.animator.SetTint(jumpCfg.BaseTint)
	case config.PhysicsFile:
		physics, err := p.loader.LoadPhysics()
		if err != nil {
			return err
		}
		// display size is fixed once the window is open
		physics.Display = p.config.Physics.Display
		p.config.Physics = physics
		p.physics.SetConfig(physics)
	case config.ControlsFile:
		controls, err := p.loader.LoadControls()
		if err != nil {
			return err
		}
		p.config.Controls = controls
		if p.inputSys != nil {
			p.inputSys.SetControls(controls)
		}
	}
	return nil
}

func (p *Playing) saveRecording() {
	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)

	camX, camY := int(p.camera.X), int(p.camera.Y)
	p.drawTiles(screen, camX, camY)
	p.drawAimRay(screen)
	p.drawCharacter(screen)
	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED")
	case state.StateReplayFinished:
		p.drawOverlay(screen, "REPLAY FINISHED")
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	startX := max(camX/p.tileSize, 0)
	startY := max(camY/p.tileSize, 0)
	endX := min((camX+p.screenW)/p.tileSize+1, p.stage.Width)
	endY := min((camY+p.screenH)/p.tileSize+1, p.stage.Height)

	for ty := startY; ty < endY; ty++ {
		for tx := startX; tx < endX; tx++ {
			tile := p.stage.GetTile(tx, ty)
			if !tile.Solid {
				continue
			}
			c := colorWall
			if tile.IsGround() {
				c = colorGround
			}
			x := float64(tx*p.tileSize - camX)
			y := float64(ty*p.tileSize - camY)
			ebitenutil.DrawRect(screen, x, y, float64(p.tileSize), float64(p.tileSize), c)
		}
	}
}

// drawCharacter draws the body tinted by the charge, anchored at its feet so
// squash keeps it on the ground. The eye marks the facing side.
func (p *Playing) drawCharacter(screen *ebiten.Image) {
	if p.pixel == nil {
		p.pixel = ebiten.NewImage(1, 1)
		p.pixel.Fill(color.White)
	}

	w := p.body.Width * math.Abs(p.body.ScaleX)
	h := p.body.Height * p.body.ScaleY
	feetY := p.body.Y + p.body.Height/2
	sx, sy := p.camera.WorldToScreen(p.body.X-w/2, feetY-h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(sx, sy)
	op.ColorScale = p.animator.ColorScale()
	screen.DrawImage(p.pixel, op)

	eyeX := sx + w/2 + float64(p.body.Facing.Sign())*w/4 - 1.5
	ebitenutil.DrawRect(screen, eyeX, sy+h/4, 3, 3, colorEye)
}

// drawAimRay draws the aim direction from the body centre; it grows with the charge
func (p *Playing) drawAimRay(screen *ebiten.Image) {
	ray := p.config.Physics.Feedback.AimRay
	if !ray.Enabled || p.controller.Motion() != entity.Grounded {
		return
	}
	length := ray.Length * (1 + p.controller.Intensity())
	x0, y0 := p.camera.WorldToScreen(p.body.X, p.body.Y)
	// aim is Y-up, the screen is Y-down
	x1 := x0 + p.aimDir.X*length
	y1 := y0 - p.aimDir.Y*length
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, colorAimRay, false)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	strength := p.controller.Strength()
	text := fmt.Sprintf("%s  %s  facing %s\ncharge %.2f (%s)\nstrength x=%.0f y=%.0f\nTPS: %.1f",
		p.state, p.controller.Motion(), p.controller.Facing(),
		p.controller.Intensity(), p.phaseLabel(),
		strength.X, strength.Y, ebiten.ActualTPS())
	if p.replayer != nil {
		text += fmt.Sprintf("\nreplay %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	} else if p.recorder != nil {
		text += fmt.Sprintf("\nREC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) phaseLabel() string {
	if !p.controller.Charging() {
		return "idle"
	}
	return p.controller.Phase().String()
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-len(text)*3, p.screenH/2-8)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Entered stage %s", p.stageCfg.Name)
}

// OnExit saves a pending recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() && p.recorder.FrameCount() > 0 {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Body returns the character's presentation state
func (p *Playing) Body() *entity.Body {
	return p.body
}

// Controller returns the charge jump controller
func (p *Playing) Controller() *jump.Controller {
	return p.controller
}

// Frame returns the number of input frames processed
func (p *Playing) Frame() int {
	return p.frame
}
