// Package world provides the maze model: tiles, coordinates and movement rules.
package world

import "fmt"

// Tile represents a single maze cell.
type Tile uint8

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = iota
	// TileOpen represents a passable corridor tile.
	TileOpen
	// TileStart marks the player's starting cell.
	TileStart
	// TileEnd marks the exit cell.
	TileEnd
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's maze file character.
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileOpen:
		return ' '
	case TileStart:
		return 'S'
	case TileEnd:
		return 'E'
	default:
		return '?'
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileOpen:
		return "open"
	case TileStart:
		return "start"
	case TileEnd:
		return "end"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// TileFromRune maps a maze file character to its tile.
func TileFromRune(r rune) (Tile, bool) {
	switch r {
	case '#':
		return TileWall, true
	case ' ':
		return TileOpen, true
	case 'S':
		return TileStart, true
	case 'E':
		return TileEnd, true
	default:
		return TileWall, false
	}
}
