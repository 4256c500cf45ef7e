package jump

import "github.com/jakecoffman/cp"

// ReleaseImpulse computes the impulse for releasing a charge of strength s along aim.
// aim is a unit vector in a Y-up frame. Aiming below the short hop threshold
// halves the horizontal force and replaces the vertical force with the fixed hop.
func ReleaseImpulse(aim cp.Vector, s Strength, cfg Config) cp.Vector {
	if aim.Y < cfg.ShortHopThreshold {
		return cp.Vector{
			X: aim.X / 2 * s.X,
			Y: cfg.ShortHopY,
		}
	}
	return cp.Vector{
		X: aim.X * s.X,
		Y: aim.Y * s.Y,
	}
}
