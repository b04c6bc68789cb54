// Package entity provides the player token that moves through a maze.
package entity

// DefaultSymbol is the marker drawn over the player's cell.
const DefaultSymbol = 'X'

// Player represents the player's position in the maze.
type Player struct {
	X, Y   int  // Current position in the maze
	Symbol rune // Display symbol
}

// NewPlayer creates a new player at the given position.
// A zero symbol selects DefaultSymbol.
func NewPlayer(x, y int, symbol rune) *Player {
	if symbol == 0 {
		symbol = DefaultSymbol
	}
	return &Player{
		X:      x,
		Y:      y,
		Symbol: symbol,
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
