package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/mazedata"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
	"github.com/samdwyer/mazeband/internal/world"
)

// Game plays a maze full screen, one key press per move.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	maze     *world.Maze
	player   *entity.Player
	logger   logr.Logger
	state    State
	moves    int
}

// New creates a full-screen game drawing to screen with the given palette.
func New(screen *ui.Screen, palette *mazedata.Palette, maze *world.Maze, player *entity.Player, logger logr.Logger) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		maze:     maze,
		player:   player,
		logger:   logger,
		state:    StatePlaying,
	}
}

// Run executes the main game loop until the player wins or quits.
// The caller owns the screen and closes it afterwards.
func (g *Game) Run(ctx context.Context) (State, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()

	sessionID := uuid.New().String()
	span.SetAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("session.mode", "tui"),
		attribute.Int("maze.width", g.maze.Width()),
		attribute.Int("maze.height", g.maze.Height()),
	)

	for g.state == StatePlaying {
		if err := ctx.Err(); err != nil {
			g.state = StateQuit
			return g.state, err
		}

		g.renderer.Render(g.maze, g.player, g.status())
		g.handleInput()

		if g.maze.HasWon(g.player) {
			g.state = StateWon
		}
	}

	span.SetAttributes(
		attribute.String("session.outcome", g.state.String()),
		attribute.Int("session.moves", g.moves),
	)
	g.logger.V(1).Info("session finished", "session", sessionID, "outcome", g.state.String(), "moves", g.moves)
	return g.state, nil
}

func (g *Game) status() string {
	return fmt.Sprintf("WASD/arrows move, q quits | moves: %d", g.moves)
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	switch ev := g.screen.PollEvent().(type) {
	case nil:
		// Screen finalized
		g.state = StateQuit
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.state = StateQuit

	case tcell.KeyUp:
		g.tryMove(world.DirUp)
	case tcell.KeyDown:
		g.tryMove(world.DirDown)
	case tcell.KeyLeft:
		g.tryMove(world.DirLeft)
	case tcell.KeyRight:
		g.tryMove(world.DirRight)

	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			g.state = StateQuit
		default:
			if dir, ok := world.ParseDirection(r); ok {
				g.tryMove(dir)
			}
		}
	}
}

// tryMove attempts to move the player one cell in dir.
func (g *Game) tryMove(dir world.Direction) {
	g.moves++
	g.maze.Move(g.player, dir)
}
