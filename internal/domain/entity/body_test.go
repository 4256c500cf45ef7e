package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBody(t *testing.T) {
	b := NewBody(40, 60, 16, 24)

	assert.Equal(t, 40.0, b.X)
	assert.Equal(t, 60.0, b.Y)
	assert.Equal(t, 1.0, b.ScaleX)
	assert.Equal(t, 1.0, b.ScaleY)
	assert.Equal(t, FacingRight, b.Facing, "characters start facing right")
}

func TestBody_Flip(t *testing.T) {
	b := NewBody(0, 0, 16, 24)

	b.Flip()
	assert.Equal(t, FacingLeft, b.Facing)
	assert.Equal(t, -1.0, b.ScaleX)

	b.Flip()
	assert.Equal(t, FacingRight, b.Facing)
	assert.Equal(t, 1.0, b.ScaleX)
}

func TestBody_Flip_PreservesScaleMagnitude(t *testing.T) {
	b := NewBody(0, 0, 16, 24)
	b.ScaleX = 2

	b.Flip()

	assert.Equal(t, -2.0, b.ScaleX)
}

func TestBody_TopLeft(t *testing.T) {
	b := NewBody(100, 50, 16, 24)

	x, y := b.TopLeft()
	assert.Equal(t, 92.0, x)
	assert.Equal(t, 38.0, y)
}

func TestMotion_String(t *testing.T) {
	tests := []struct {
		motion   Motion
		expected string
	}{
		{Grounded, "Grounded"},
		{Airborne, "Airborne"},
		{Motion(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.motion.String())
		})
	}
}

func TestFacing_ShouldFlip(t *testing.T) {
	tests := []struct {
		name   string
		facing Facing
		aimX   float64
		want   bool
	}{
		{"right aiming right", FacingRight, 0.7, false},
		{"right aiming left", FacingRight, -0.3, true},
		{"right aiming straight up", FacingRight, 0, true},
		{"left aiming left", FacingLeft, -1, false},
		{"left aiming straight up", FacingLeft, 0, false},
		{"left aiming right", FacingLeft, 0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.facing.ShouldFlip(tt.aimX))
		})
	}
}

func TestFacing_SignAndString(t *testing.T) {
	assert.Equal(t, 1.0, FacingRight.Sign())
	assert.Equal(t, -1.0, FacingLeft.Sign())
	assert.Equal(t, "Right", FacingRight.String())
	assert.Equal(t, "Left", FacingLeft.String())
	assert.Equal(t, "Unknown", Facing(0).String())
	assert.Equal(t, FacingLeft, FacingRight.Flip())
}
