package entity

// Body is the character's presentation state.
// Position is the body centre in world pixels (Y grows downward, matching the stage grid).
// The physics system owns the simulated position and copies it here every frame.
type Body struct {
	X, Y          float64
	Width, Height float64

	// ScaleX is negated on every flip so the sprite mirrors horizontally.
	ScaleX float64
	ScaleY float64

	Facing Facing
}

// NewBody creates a body centred at (x, y). Characters always start facing right.
func NewBody(x, y, width, height float64) *Body {
	return &Body{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		ScaleX: 1,
		ScaleY: 1,
		Facing: FacingRight,
	}
}

// Flip mirrors the sprite and reverses the facing direction.
func (b *Body) Flip() {
	b.ScaleX *= -1
	b.Facing = b.Facing.Flip()
}

// TopLeft returns the top-left corner of the body's bounding box
func (b *Body) TopLeft() (x, y float64) {
	return b.X - b.Width/2, b.Y - b.Height/2
}

// SetPosition moves the body centre
func (b *Body) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

// Motion is the character's ground state.
type Motion int

const (
	Grounded Motion = iota
	Airborne
)

// String returns the string representation of the motion state
func (m Motion) String() string {
	switch m {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}
