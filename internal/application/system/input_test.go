package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/springjump/internal/domain/jump"
	"github.com/younwookim/springjump/internal/infrastructure/config"
)

func TestNewInputSystem(t *testing.T) {
	controls := config.DefaultControls()

	sys := NewInputSystem(controls)

	require.NotNil(t, sys)
	assert.Equal(t, controls, sys.controls)
}

func TestInputSystem_SetControls(t *testing.T) {
	sys := NewInputSystem(config.DefaultControls())
	controls := &config.ControlsConfig{Gamepad: true}

	sys.SetControls(controls)

	assert.Same(t, controls, sys.controls)
}

func TestInputState_ImplementsInputSource(t *testing.T) {
	var src jump.InputSource = InputState{
		JumpPress:   true,
		JumpRelease: false,
		MouseX:      12,
		MouseY:      34,
	}

	assert.True(t, src.JumpPressed())
	assert.False(t, src.JumpReleased())
	x, y := src.Cursor()
	assert.Equal(t, 12, x)
	assert.Equal(t, 34, y)
}

func TestInputState_ZeroValue(t *testing.T) {
	var in InputState

	assert.False(t, in.JumpPressed())
	assert.False(t, in.JumpReleased())
	x, y := in.Cursor()
	assert.Zero(t, x)
	assert.Zero(t, y)
}
