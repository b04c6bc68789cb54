package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/grid"
)

const (
	// MinDim and MaxDim bound the width and height of a playable maze.
	MinDim = 5
	MaxDim = 100
)

var (
	// ErrMarkerCount is returned when a grid does not hold exactly one start and one end.
	ErrMarkerCount = errors.New("maze must contain exactly one start and one end")
)

// Maze is an immutable rectangular grid of tiles with a single start and end.
type Maze struct {
	tiles  *grid.Buffer[Tile]
	width  int
	height int
	start  Coord
	end    Coord
}

// NewMaze builds a maze from a tile buffer. The buffer is copied, so later
// changes to it do not affect the maze.
func NewMaze(tiles *grid.Buffer[Tile]) (*Maze, error) {
	width, height := tiles.Dimensions()
	m := &Maze{
		tiles:  tiles.Clone(),
		width:  width,
		height: height,
	}

	starts, ends := 0, 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch m.Tile(x, y) {
			case TileStart:
				starts++
				m.start = Coord{X: x, Y: y}
			case TileEnd:
				ends++
				m.end = Coord{X: x, Y: y}
			}
		}
	}
	if starts != 1 || ends != 1 {
		return nil, fmt.Errorf("%w: found %d start, %d end", ErrMarkerCount, starts, ends)
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the start coordinate.
func (m *Maze) Start() Coord { return m.start }

// End returns the end coordinate.
func (m *Maze) End() Coord { return m.end }

// Tile returns the tile at the given position, or TileWall outside the maze.
func (m *Maze) Tile(x, y int) Tile {
	t, err := m.tiles.Get(x, y)
	if err != nil {
		return TileWall
	}
	return t
}

// IsPassable returns true if the given position is inside the maze and not a wall.
func (m *Maze) IsPassable(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.Tile(x, y).IsPassable()
}

// NewPlayer places a player on the start cell.
func (m *Maze) NewPlayer(symbol rune) *entity.Player {
	return entity.NewPlayer(m.start.X, m.start.Y, symbol)
}

// Move steps the player one cell in dir. The move is rejected, leaving the
// player where it was, if the target is outside the maze or a wall.
// It reports whether the player moved.
func (m *Maze) Move(p *entity.Player, dir Direction) bool {
	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return false
	}
	x, y := p.Position()
	if !m.IsPassable(x+dx, y+dy) {
		return false
	}
	p.Move(dx, dy)
	return true
}

// MoveKey applies a W/A/S/D key press. Unrecognized keys do nothing.
func (m *Maze) MoveKey(p *entity.Player, key rune) bool {
	dir, ok := ParseDirection(key)
	if !ok {
		return false
	}
	return m.Move(p, dir)
}

// HasWon returns true when the player stands on the end cell.
func (m *Maze) HasWon(p *entity.Player) bool {
	x, y := p.Position()
	return x == m.end.X && y == m.end.Y
}

// Rows returns the maze as file text, one string per row.
func (m *Maze) Rows() []string {
	return m.render(-1, -1, 0)
}

// Render returns the maze rows with the player's cell replaced by its symbol.
func (m *Maze) Render(p *entity.Player) []string {
	x, y := p.Position()
	return m.render(x, y, p.Symbol)
}

// String returns the rows joined with newlines, each row newline-terminated.
func (m *Maze) String() string {
	var sb strings.Builder
	for _, row := range m.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Maze) render(px, py int, symbol rune) []string {
	rows := make([]string, m.height)
	var sb strings.Builder
	for y := range rows {
		tiles, err := m.tiles.Row(y)
		if err != nil {
			// y is always within the buffer built by NewMaze.
			panic(err)
		}
		sb.Reset()
		sb.Grow(m.width)
		for x, t := range tiles {
			if x == px && y == py {
				sb.WriteRune(symbol)
				continue
			}
			sb.WriteRune(t.Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}
