package jump

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestReleaseImpulse(t *testing.T) {
	cfg := DefaultConfig()
	full := Strength{X: 600, Y: 1200}

	tests := []struct {
		name     string
		aim      cp.Vector
		strength Strength
		want     cp.Vector
	}{
		{"straight up full", cp.Vector{X: 0, Y: 1}, full, cp.Vector{X: 0, Y: 1200}},
		{"diagonal full", cp.Vector{X: 0.6, Y: 0.8}, full, cp.Vector{X: 360, Y: 960}},
		{"diagonal left tap", cp.Vector{X: -0.6, Y: 0.8}, Strength{X: 100, Y: 200}, cp.Vector{X: -60, Y: 160}},
		{"at threshold is a full jump", cp.Vector{X: 0.99, Y: 0.1}, full, cp.Vector{X: 594, Y: 120}},
		{"horizontal short hop", cp.Vector{X: 1, Y: 0}, full, cp.Vector{X: 300, Y: 200}},
		{"downward short hop", cp.Vector{X: -0.8, Y: -0.6}, full, cp.Vector{X: -240, Y: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReleaseImpulse(tt.aim, tt.strength, cfg)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestReleaseImpulse_CustomShortHop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortHopY = 350
	cfg.ShortHopThreshold = 0.5

	got := ReleaseImpulse(cp.Vector{X: 0.8, Y: 0.4}, Strength{X: 500, Y: 1000}, cfg)

	assert.InDelta(t, 200, got.X, 1e-9)
	assert.Equal(t, 350.0, got.Y)
}

func TestConfig_StrengthAt(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, Strength{X: 100, Y: 200}, cfg.StrengthAt(0))
	assert.Equal(t, Strength{X: 350, Y: 700}, cfg.StrengthAt(0.5))
	assert.Equal(t, Strength{X: 600, Y: 1200}, cfg.StrengthAt(1))
	assert.Equal(t, Strength{X: 600, Y: 1200}, cfg.StrengthAt(1.7), "level is clamped")
	assert.Equal(t, Strength{X: 100, Y: 200}, cfg.StrengthAt(-3), "level is clamped")
}

func TestConfig_TintAt(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cfg.TintAt(0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, cfg.TintAt(1))
	assert.Equal(t, color.RGBA{255, 191, 191, 255}, cfg.TintAt(0.25))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "oscillate", ModeOscillate.String())
	assert.Equal(t, "restart", ModeRestart.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
