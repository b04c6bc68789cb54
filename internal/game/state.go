// Package game runs interactive play sessions over a loaded maze.
package game

// State represents the current session state.
type State int

const (
	// StatePlaying means the player has not yet reached the end.
	StatePlaying State = iota
	// StateWon means the player reached the end cell.
	StateWon
	// StateQuit means input ran out or the player quit before winning.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

const (
	// Prompt asks for the next move in line mode.
	Prompt = "Enter the moving direction (W/A/S/D): "
	// Congratulations is printed when a session ends.
	Congratulations = "\nCongratulations You've successfully made your way out of the maze\n"
)
