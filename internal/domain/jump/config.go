// Package jump implements the charge-and-release jump.
//
// Holding the jump key runs a charge Cycle whose strength ramps between a
// tap hop and a full jump. Releasing converts the current strength into an
// impulse aimed along the cursor direction. The Controller reaches the host
// engine only through the interfaces declared in controller.go.
package jump

import (
	"image/color"

	"github.com/tanema/gween/ease"
)

// Mode selects what the charge does after reaching full strength
type Mode int

const (
	// ModeOscillate ramps back down to the tap strength and repeats.
	ModeOscillate Mode = iota
	// ModeRestart holds full strength for RestartDelay, then starts over from the tap strength.
	ModeRestart
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeOscillate:
		return "oscillate"
	case ModeRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Default tuning, in engine force units and seconds.
const (
	DefaultHoldTime          = 2.0
	DefaultMinX              = 100.0
	DefaultMaxX              = 600.0
	DefaultMinY              = 200.0
	DefaultMaxY              = 1200.0
	DefaultShortHopY         = 200.0
	DefaultShortHopThreshold = 0.1
	DefaultRestartDelay      = 0.25
)

// Config holds the charge jump tuning
type Config struct {
	// HoldTime is the duration of one ramp (tap to full, or full to tap).
	HoldTime float64

	MinX, MaxX float64
	MinY, MaxY float64

	// Releases aimed below ShortHopThreshold become a short hop with a fixed vertical force.
	ShortHopY         float64
	ShortHopThreshold float64

	Mode         Mode
	RestartDelay float64

	// Easing shapes each ramp. Nil means linear.
	Easing ease.TweenFunc

	BaseTint   color.RGBA
	ChargeTint color.RGBA
}

// DefaultConfig returns the stock tuning: a 2 second oscillating charge from (100,200) to (600,1200)
func DefaultConfig() Config {
	return Config{
		HoldTime:          DefaultHoldTime,
		MinX:              DefaultMinX,
		MaxX:              DefaultMaxX,
		MinY:              DefaultMinY,
		MaxY:              DefaultMaxY,
		ShortHopY:         DefaultShortHopY,
		ShortHopThreshold: DefaultShortHopThreshold,
		Mode:              ModeOscillate,
		RestartDelay:      DefaultRestartDelay,
		Easing:            ease.Linear,
		BaseTint:          color.RGBA{255, 255, 255, 255},
		ChargeTint:        color.RGBA{255, 0, 0, 255},
	}
}

// Strength is the force a release would apply on each axis
type Strength struct {
	X, Y float64
}

// StrengthAt maps a charge level in [0,1] to a strength between the tap and full values
func (c Config) StrengthAt(level float64) Strength {
	level = clamp01(level)
	return Strength{
		X: lerp(c.MinX, c.MaxX, level),
		Y: lerp(c.MinY, c.MaxY, level),
	}
}

// TintAt maps a charge level in [0,1] to a sprite tint between BaseTint and ChargeTint
func (c Config) TintAt(level float64) color.RGBA {
	level = clamp01(level)
	return color.RGBA{
		R: lerpByte(c.BaseTint.R, c.ChargeTint.R, level),
		G: lerpByte(c.BaseTint.G, c.ChargeTint.G, level),
		B: lerpByte(c.BaseTint.B, c.ChargeTint.B, level),
		A: lerpByte(c.BaseTint.A, c.ChargeTint.A, level),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(lerp(float64(a), float64(b), t) + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
