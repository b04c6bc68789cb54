package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/mazedata"
	"github.com/samdwyer/mazeband/internal/world"
)

// Renderer handles drawing the maze to the screen.
type Renderer struct {
	screen  *Screen
	palette *mazedata.Palette
}

// NewRenderer creates a new renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette *mazedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the maze, the player and a status line below the maze.
// If the terminal cannot hold all of that, only a notice is drawn.
func (r *Renderer) Render(maze *world.Maze, player *entity.Player, status string) {
	r.screen.Clear()

	sw, sh := r.screen.Size()
	if maze.Width() > sw || maze.Height()+2 > sh {
		r.RenderMessage(fmt.Sprintf("terminal %dx%d too small for %dx%d maze", sw, sh, maze.Width(), maze.Height()), 0)
		r.screen.Show()
		return
	}

	for y := 0; y < maze.Height(); y++ {
		for x := 0; x < maze.Width(); x++ {
			tile := maze.Tile(x, y)
			r.screen.SetContent(x, y, tile.Rune(), r.palette.TileStyle(tile))
		}
	}

	r.screen.SetContent(player.X, player.Y, player.Symbol, r.palette.PlayerStyle())

	r.RenderMessage(status, maze.Height()+1)
	r.screen.Show()
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
