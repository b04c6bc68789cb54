package game

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

// Session plays a maze over a line-oriented text stream: it prints the
// maze, prompts, reads one line and applies its first character as a move.
type Session struct {
	maze   *world.Maze
	player *entity.Player
	in     *bufio.Reader
	out    *bufio.Writer
	logger logr.Logger
	state  State

	moves    int
	accepted int
}

// NewSession creates a session with the player on the maze's start cell.
func NewSession(maze *world.Maze, player *entity.Player, in io.Reader, out io.Writer, logger logr.Logger) *Session {
	return &Session{
		maze:   maze,
		player: player,
		in:     bufio.NewReader(in),
		out:    bufio.NewWriter(out),
		logger: logger,
		state:  StatePlaying,
	}
}

// Player returns the session's player.
func (s *Session) Player() *entity.Player {
	return s.player
}

// Run plays until the player reaches the end or input is exhausted.
// Read errors end the session like end of input; only write errors and
// context cancellation are returned.
func (s *Session) Run(ctx context.Context) (State, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()

	sessionID := uuid.New().String()
	logger := s.logger.WithValues("session", sessionID)
	span.SetAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("session.mode", "line"),
		attribute.Int("maze.width", s.maze.Width()),
		attribute.Int("maze.height", s.maze.Height()),
	)
	defer func() {
		span.SetAttributes(
			attribute.String("session.outcome", s.state.String()),
			attribute.Int("session.moves", s.moves),
			attribute.Int("session.moves_accepted", s.accepted),
		)
	}()

	for !s.maze.HasWon(s.player) {
		if err := ctx.Err(); err != nil {
			s.state = StateQuit
			return s.state, err
		}

		if err := s.prompt(); err != nil {
			return s.state, err
		}

		line, err := s.in.ReadString('\n')
		if line == "" && err != nil {
			if err != io.EOF {
				logger.V(1).Info("input read failed, ending session", "error", err.Error())
			}
			s.state = StateQuit
			break
		}
		s.apply(logger, line)
	}

	if s.state == StatePlaying {
		s.state = StateWon
	}
	logger.V(1).Info("session finished", "outcome", s.state.String(), "moves", s.moves)

	if _, err := s.out.WriteString(Congratulations); err != nil {
		return s.state, err
	}
	return s.state, s.out.Flush()
}

func (s *Session) prompt() error {
	var sb strings.Builder
	sb.WriteByte('\n')
	for _, row := range s.maze.Render(s.player) {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	sb.WriteString(Prompt)

	if _, err := s.out.WriteString(sb.String()); err != nil {
		return err
	}
	return s.out.Flush()
}

// apply uses the first character of line as a move key.
func (s *Session) apply(logger logr.Logger, line string) {
	key, _ := utf8.DecodeRuneInString(line)
	s.moves++
	if s.maze.MoveKey(s.player, key) {
		s.accepted++
		return
	}
	logger.V(2).Info("move rejected", "key", string(key), "x", s.player.X, "y", s.player.Y)
}
