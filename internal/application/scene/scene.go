// Package scene defines the Scene interface driven by the game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game, such as live play or replay playback.
//
// The game loop delegates Update and Draw to the current scene and switches
// scenes when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by one tick of dt seconds.
	// Returns the next scene on a transition, nil to stay.
	// A non-nil error ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game shuts down.
	OnExit()
}
