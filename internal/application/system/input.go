package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/springjump/internal/infrastructure/config"
)

// InputSystem polls the keyboard, mouse and first gamepad
type InputSystem struct {
	controls *config.ControlsConfig
	gamepads []ebiten.GamepadID
}

// NewInputSystem creates a new input system
func NewInputSystem(controls *config.ControlsConfig) *InputSystem {
	return &InputSystem{controls: controls}
}

// SetControls rebinds the keys
func (s *InputSystem) SetControls(controls *config.ControlsConfig) {
	s.controls = controls
}

// InputState holds one frame of input.
// It implements jump.InputSource.
type InputState struct {
	Jump        bool
	JumpPress   bool
	JumpRelease bool
	MouseX      int
	MouseY      int
	Pause       bool
	SaveReplay  bool
}

// JumpPressed reports a jump press edge this frame
func (s InputState) JumpPressed() bool {
	return s.JumpPress
}

// JumpReleased reports a jump release edge this frame
func (s InputState) JumpReleased() bool {
	return s.JumpRelease
}

// Cursor returns the cursor in screen pixels
func (s InputState) Cursor() (x, y int) {
	return s.MouseX, s.MouseY
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	input := InputState{
		MouseX:     mx,
		MouseY:     my,
		Pause:      inpututil.IsKeyJustPressed(s.controls.Pause.Key()),
		SaveReplay: inpututil.IsKeyJustPressed(s.controls.SaveReplay.Key()),
	}

	for _, key := range s.controls.JumpKeys() {
		input.Jump = input.Jump || ebiten.IsKeyPressed(key)
		input.JumpPress = input.JumpPress || inpututil.IsKeyJustPressed(key)
		input.JumpRelease = input.JumpRelease || inpututil.IsKeyJustReleased(key)
	}

	if s.controls.Gamepad {
		s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
		if len(s.gamepads) > 0 {
			id := s.gamepads[0]
			button := ebiten.StandardGamepadButtonRightBottom
			input.Jump = input.Jump || ebiten.IsStandardGamepadButtonPressed(id, button)
			input.JumpPress = input.JumpPress || inpututil.IsStandardGamepadButtonJustPressed(id, button)
			input.JumpRelease = input.JumpRelease || inpututil.IsStandardGamepadButtonJustReleased(id, button)
		}
	}

	return input
}
