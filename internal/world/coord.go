package world

import "fmt"

// Coord is a cell position: X is the column, Y the row, both 0-indexed.
type Coord struct {
	X, Y int
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four unit steps a player can take.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a W/A/S/D key, in either case, to a direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'W', 'w':
		return DirUp, true
	case 'A', 'a':
		return DirLeft, true
	case 'S', 's':
		return DirDown, true
	case 'D', 'd':
		return DirRight, true
	default:
		return 0, false
	}
}
