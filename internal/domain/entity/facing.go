package entity

// Facing is the horizontal orientation of a character.
// The values double as the sign of the sprite's X scale.
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Sign returns +1 for right and -1 for left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Flip returns the opposite facing
func (f Facing) Flip() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// String returns the string representation of the facing
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// ShouldFlip reports whether a character facing f must turn around to look along aimX.
// A vertical aim (aimX == 0) counts as left.
func (f Facing) ShouldFlip(aimX float64) bool {
	return (aimX <= 0 && f == FacingRight) || (aimX > 0 && f == FacingLeft)
}
