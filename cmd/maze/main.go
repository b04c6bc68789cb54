// Package main is the entry point for playing a maze file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"golang.org/x/term"

	"github.com/samdwyer/mazeband/internal/config"
	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/game"
	"github.com/samdwyer/mazeband/internal/mazedata"
	"github.com/samdwyer/mazeband/internal/mazefile"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
	"github.com/samdwyer/mazeband/internal/world"
)

// Exit codes
const (
	exitSuccess   = 0
	exitArgError  = 1
	exitFileError = 2
	exitMazeError = 3
)

type app struct {
	cfg    config.Config
	logger logr.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// tui is true when full-screen mode is configured and both ends are terminals.
	tui bool
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)

	ctx := context.Background()
	shutdown := telemetry.Init(ctx, a.cfg.Telemetry, a.cfg.HoneycombAPIKey, a.cfg.HoneycombDataset, a.logger)
	code := a.run(ctx, os.Args)
	shutdown(ctx)
	os.Exit(code)
}

// newApp loads the configuration. Bad settings are reported and replaced by
// their defaults; they never stop a maze from being played.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	cfg, err := config.Load()
	logger := cfg.Logger(stderr)
	if err != nil {
		logger.Error(err, "invalid configuration, using defaults for rejected settings")
	}
	if cfg.EnvFileErr != nil {
		logger.V(1).Info(".env file not loaded", "reason", cfg.EnvFileErr.Error())
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		tui:    cfg.UI == config.UITUI && isTerminal(stdin) && isTerminal(stdout),
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) != 2 {
		prog := "maze"
		if len(args) > 0 {
			prog = filepath.Base(args[0])
		}
		fmt.Fprintf(a.stderr, "Usage: %s <Maze file>\n", prog)
		return exitArgError
	}

	m, err := mazefile.Load(ctx, args[1])
	if err != nil {
		a.logger.Error(err, "could not load maze", "path", args[1])
		return exitCode(err)
	}
	a.logger.V(1).Info("maze loaded", "path", args[1], "width", m.Width(), "height", m.Height())

	player := m.NewPlayer(a.cfg.PlayerGlyph)
	if a.tui {
		err := a.playScreen(ctx, m, player)
		if err == nil {
			return exitSuccess
		}
		a.logger.Error(err, "full-screen mode unavailable, using line mode")
	}

	session := game.NewSession(m, player, a.stdin, a.stdout, a.logger)
	if _, err := session.Run(ctx); err != nil {
		// Output problems end the game but are not maze errors.
		a.logger.Error(err, "session ended early")
	}
	return exitSuccess
}

func (a *app) playScreen(ctx context.Context, m *world.Maze, player *entity.Player) error {
	palette, err := mazedata.LoadPalette()
	if err != nil {
		return err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}

	_, err = game.New(screen, palette, m, player, a.logger).Run(ctx)
	screen.Close()
	if err != nil {
		a.logger.Error(err, "game ended early")
	}
	fmt.Fprint(a.stdout, game.Congratulations)
	return nil
}

// exitCode maps a load error to the process exit code.
func exitCode(err error) int {
	if errors.Is(err, mazefile.ErrFile) {
		return exitFileError
	}
	// Size, format and allocation failures
	return exitMazeError
}
