package system

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Camera is a view onto the stage. X, Y is the world position of the
// screen's top-left corner.
type Camera struct {
	X, Y    float64
	ScreenW int
	ScreenH int
	WorldW  int
	WorldH  int
}

// NewCamera creates a camera for a screen of the given size over a world of the given size
func NewCamera(screenW, screenH, worldW, worldH int) *Camera {
	return &Camera{
		ScreenW: screenW,
		ScreenH: screenH,
		WorldW:  worldW,
		WorldH:  worldH,
	}
}

// Follow centres the camera on (x, y), clamped to the world bounds
func (c *Camera) Follow(x, y float64) {
	c.X = clampFloat(x-float64(c.ScreenW)/2, 0, float64(c.WorldW-c.ScreenW))
	c.Y = clampFloat(y-float64(c.ScreenH)/2, 0, float64(c.WorldH-c.ScreenH))
}

// ScreenToWorld converts screen pixels to world pixels
func (c *Camera) ScreenToWorld(sx, sy int) (x, y float64) {
	return float64(sx) + c.X, float64(sy) + c.Y
}

// WorldToScreen converts world pixels to screen pixels
func (c *Camera) WorldToScreen(x, y float64) (sx, sy float64) {
	return x - c.X, y - c.Y
}

// AimSystem projects the cursor into the world and implements jump.CameraProjector
type AimSystem struct {
	camera *Camera
}

// NewAimSystem creates an aim system looking through camera
func NewAimSystem(camera *Camera) *AimSystem {
	return &AimSystem{camera: camera}
}

// AimDirection returns the unit vector from the world point (fromX, fromY) to
// the cursor. Screen Y grows downward; the result is Y-up. A cursor exactly
// on the origin gives the zero vector.
func (a *AimSystem) AimDirection(fromX, fromY float64, cursorX, cursorY int) cp.Vector {
	wx, wy := a.camera.ScreenToWorld(cursorX, cursorY)
	d := cp.Vector{X: wx - fromX, Y: fromY - wy}
	length := d.Length()
	if length == 0 {
		return cp.Vector{}
	}
	return d.Mult(1 / length)
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
