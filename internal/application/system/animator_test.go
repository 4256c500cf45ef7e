package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/springjump/internal/domain/jump"
)

func TestAnimator_Flags(t *testing.T) {
	a := NewAnimator(color.RGBA{255, 255, 255, 255})

	assert.False(t, a.Bool(jump.FlagCharging), "unset flag is false")

	a.SetBool(jump.FlagCharging, true)
	assert.True(t, a.Bool(jump.FlagCharging))

	a.SetBool(jump.FlagCharging, false)
	assert.False(t, a.Bool(jump.FlagCharging))
}

func TestAnimator_Tint(t *testing.T) {
	a := NewAnimator(color.RGBA{255, 255, 255, 255})
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, a.Tint())

	a.SetTint(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, a.Tint())

	cs := a.ColorScale()
	assert.InDelta(t, 1, cs.R(), 1e-6)
	assert.InDelta(t, 0, cs.G(), 1e-6)
	assert.InDelta(t, 0, cs.B(), 1e-6)
	assert.InDelta(t, 1, cs.A(), 1e-6)
}

func TestAnimator_Pose(t *testing.T) {
	tests := []struct {
		name     string
		charging bool
		inAir    bool
		want     Pose
	}{
		{"idle", false, false, PoseIdle},
		{"charging", true, false, PoseCrouch},
		{"airborne", false, true, PoseAir},
		{"airborne wins", true, true, PoseAir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimator(color.RGBA{})
			a.SetBool(jump.FlagCharging, tt.charging)
			a.SetBool(jump.FlagInAir, tt.inAir)
			assert.Equal(t, tt.want, a.Pose())
		})
	}
}

func TestPose_String(t *testing.T) {
	assert.Equal(t, "Idle", PoseIdle.String())
	assert.Equal(t, "Crouch", PoseCrouch.String())
	assert.Equal(t, "Air", PoseAir.String())
	assert.Equal(t, "Unknown", Pose(9).String())
}
