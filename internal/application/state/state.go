// Package state holds the scene-level run state.
package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	// StateReplayFinished freezes the scene after the last recorded frame
	StateReplayFinished
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplayFinished:
		return "ReplayFinished"
	default:
		return "Unknown"
	}
}

// AcceptsInput reports whether gameplay input is processed in this state
func (s GameState) AcceptsInput() bool {
	return s == StatePlaying
}
