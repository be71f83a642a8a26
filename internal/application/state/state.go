// Package state defines the top-level states of the playing scene.
package state

// GameState represents the current state of the game
type GameState int

const (
	StateLoading     GameState = iota // waiting for the tileset to resolve
	StatePlaying                      // simulation ticking
	StatePaused                       // simulation frozen
	StateReplayEnded                  // replay input exhausted
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplayEnded:
		return "ReplayEnded"
	default:
		return "Unknown"
	}
}

// Ticking reports whether the simulation advances in this state
func (s GameState) Ticking() bool {
	return s == StatePlaying
}

// TogglePause flips between playing and paused; other states are unchanged
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
