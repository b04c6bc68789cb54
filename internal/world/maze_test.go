package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/grid"
)

var testRows = []string{
	"#####",
	"#S  #",
	"# # #",
	"#  E#",
	"#####",
}

func mustMaze(t *testing.T, rows []string) *Maze {
	t.Helper()
	buf, err := grid.New[Tile](len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, r := range row {
			tile, ok := TileFromRune(r)
			require.True(t, ok, "bad test rune %q", r)
			require.NoError(t, buf.Set(x, y, tile))
		}
	}
	m, err := NewMaze(buf)
	require.NoError(t, err)
	return m
}

func TestNewMazeFindsMarkers(t *testing.T) {
	m := mustMaze(t, testRows)

	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 5, m.Height())
	assert.Equal(t, Coord{X: 1, Y: 1}, m.Start())
	assert.Equal(t, Coord{X: 3, Y: 3}, m.End())
	assert.Equal(t, testRows, m.Rows())
}

func TestNewMazeMarkerCount(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no start", []string{"#####", "#   #", "#  E#"}},
		{"no end", []string{"#####", "#S  #", "#   #"}},
		{"two starts", []string{"#####", "#S S#", "#  E#"}},
		{"two ends", []string{"#####", "#S E#", "#  E#"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := grid.New[Tile](5, 3)
			require.NoError(t, err)
			for y, row := range tt.rows {
				for x, r := range row {
					tile, _ := TileFromRune(r)
					require.NoError(t, buf.Set(x, y, tile))
				}
			}
			_, err = NewMaze(buf)
			assert.ErrorIs(t, err, ErrMarkerCount)
		})
	}
}

func TestMazeIsImmutable(t *testing.T) {
	buf, err := grid.New[Tile](5, 5)
	require.NoError(t, err)
	require.NoError(t, buf.Set(1, 1, TileStart))
	require.NoError(t, buf.Set(3, 3, TileEnd))

	m, err := NewMaze(buf)
	require.NoError(t, err)

	require.NoError(t, buf.Set(2, 2, TileOpen))
	assert.Equal(t, TileWall, m.Tile(2, 2))
}

func TestMove(t *testing.T) {
	m := mustMaze(t, testRows)
	p := m.NewPlayer(0)

	// Wall above the start.
	assert.False(t, m.Move(p, DirUp))
	assert.Equal(t, Coord{1, 1}, Coord{p.X, p.Y})

	assert.True(t, m.MoveKey(p, 'd'))
	assert.True(t, m.MoveKey(p, 'D'))
	assert.Equal(t, Coord{3, 1}, Coord{p.X, p.Y})

	// Unknown keys are ignored.
	assert.False(t, m.MoveKey(p, 'x'))
	assert.False(t, m.MoveKey(p, '\n'))
	assert.Equal(t, Coord{3, 1}, Coord{p.X, p.Y})

	assert.False(t, m.HasWon(p))
	assert.True(t, m.MoveKey(p, 's'))
	assert.True(t, m.MoveKey(p, 'S'))
	assert.True(t, m.HasWon(p))
}

func TestMoveStaysInBounds(t *testing.T) {
	// Open border cells let the player reach the edge of the grid.
	m := mustMaze(t, []string{
		"S    ",
		"     ",
		"  #  ",
		"     ",
		"    E",
	})
	keys := []rune("wasdWASDxq ")
	rng := rand.New(rand.NewSource(42))
	p := m.NewPlayer(0)

	for i := 0; i < 5000; i++ {
		m.MoveKey(p, keys[rng.Intn(len(keys))])
		require.True(t, p.X >= 0 && p.X < m.Width() && p.Y >= 0 && p.Y < m.Height(),
			"player left the grid at %d,%d", p.X, p.Y)
		require.NotEqual(t, TileWall, m.Tile(p.X, p.Y))
		assert.Equal(t, p.X == 4 && p.Y == 4, m.HasWon(p))
	}
}

func TestRenderOverlaysPlayer(t *testing.T) {
	m := mustMaze(t, testRows)
	p := m.NewPlayer(0)

	rendered := m.Render(p)
	assert.Equal(t, "#X  #", rendered[1])
	for y, row := range rendered {
		if y != 1 {
			assert.Equal(t, testRows[y], row)
		}
	}

	// Render must not change the maze itself.
	assert.Equal(t, TileStart, m.Tile(1, 1))

	p = entity.NewPlayer(3, 3, '@')
	assert.Equal(t, "#  @#", m.Render(p)[3])
	assert.Equal(t, "#####\n#S  #\n# # #\n#  E#\n#####\n", m.String())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   rune
		want Direction
		ok   bool
	}{
		{'w', DirUp, true},
		{'W', DirUp, true},
		{'a', DirLeft, true},
		{'s', DirDown, true},
		{'D', DirRight, true},
		{'q', 0, false},
		{'8', 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTileRunes(t *testing.T) {
	for _, tile := range []Tile{TileWall, TileOpen, TileStart, TileEnd} {
		got, ok := TileFromRune(tile.Rune())
		if !ok || got != tile {
			t.Errorf("TileFromRune(%q) = %v, %v; want %v", tile.Rune(), got, ok, tile)
		}
	}
	if _, ok := TileFromRune('.'); ok {
		t.Error("'.' should not be a tile")
	}
	if TileWall.IsPassable() {
		t.Error("walls should not be passable")
	}
}
