package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/springjump/internal/domain/jump"
)

// Pose is the sprite frame picked from the animation flags
type Pose int

const (
	PoseIdle Pose = iota
	PoseCrouch
	PoseAir
)

// String returns the string representation of the pose
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "Idle"
	case PoseCrouch:
		return "Crouch"
	case PoseAir:
		return "Air"
	default:
		return "Unknown"
	}
}

// Animator collects animation flags and the sprite tint for the renderer.
// It implements jump.AnimationState and jump.RenderState.
type Animator struct {
	flags map[string]bool
	tint  color.RGBA
}

// NewAnimator creates an animator with the given starting tint
func NewAnimator(tint color.RGBA) *Animator {
	return &Animator{
		flags: make(map[string]bool),
		tint:  tint,
	}
}

// SetBool sets an animation flag
func (a *Animator) SetBool(name string, value bool) {
	a.flags[name] = value
}

// Bool returns an animation flag; unset flags are false
func (a *Animator) Bool(name string) bool {
	return a.flags[name]
}

// SetTint sets the sprite tint
func (a *Animator) SetTint(tint color.RGBA) {
	a.tint = tint
}

// Tint returns the sprite tint
func (a *Animator) Tint() color.RGBA {
	return a.tint
}

// ColorScale returns the tint as a draw option
func (a *Animator) ColorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(a.tint)
	return cs
}

// Pose picks the frame: in the air wins over charging
func (a *Animator) Pose() Pose {
	switch {
	case a.flags[jump.FlagInAir]:
		return PoseAir
	case a.flags[jump.FlagCharging]:
		return PoseCrouch
	default:
		return PoseIdle
	}
}
