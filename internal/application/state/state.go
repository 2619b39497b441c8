// Package state holds the modes of the gameplay scene.
package state

// GameState is the mode the gameplay scene is in
type GameState int

const (
	StatePlaying  GameState = iota // world advances every frame
	StatePaused                    // world frozen, Esc resumes
	StateGameOver                  // player died, Z restarts
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
