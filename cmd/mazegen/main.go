// Package main is the entry point for generating maze files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-logr/logr"

	"github.com/samdwyer/mazeband/internal/config"
	"github.com/samdwyer/mazeband/internal/generator"
	"github.com/samdwyer/mazeband/internal/mazefile"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

type app struct {
	cfg    config.Config
	logger logr.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	a := newApp(os.Stdout, os.Stderr)

	ctx := context.Background()
	shutdown := telemetry.Init(ctx, a.cfg.Telemetry, a.cfg.HoneycombAPIKey, a.cfg.HoneycombDataset, a.logger)
	code := a.run(ctx, os.Args)
	shutdown(ctx)
	os.Exit(code)
}

// newApp loads the configuration; rejected settings fall back to defaults.
func newApp(stdout, stderr io.Writer) *app {
	cfg, err := config.Load()
	logger := cfg.Logger(stderr)
	if err != nil {
		logger.Error(err, "invalid configuration, using defaults for rejected settings")
	}
	if cfg.EnvFileErr != nil {
		logger.V(1).Info(".env file not loaded", "reason", cfg.EnvFileErr.Error())
	}
	return &app{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}
}

func (a *app) run(ctx context.Context, args []string) int {
	prog := "mazegen"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	seed := fs.Int64("seed", a.cfg.Seed, "Random seed (0 picks a time-based seed)")
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: %s [-seed N] <Filename> <width> <height>\n", prog)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return exitFailure
	}

	path := fs.Arg(0)
	width, errW := strconv.Atoi(fs.Arg(1))
	height, errH := strconv.Atoi(fs.Arg(2))
	if err := errors.Join(errW, errH); err != nil {
		fmt.Fprintf(a.stderr, "Width and height must be integers: %v\n", err)
		return exitFailure
	}
	if width < world.MinDim || width > world.MaxDim || height < world.MinDim || height > world.MaxDim {
		fmt.Fprintf(a.stderr, "Size must between %d and %d\n", world.MinDim, world.MaxDim)
		return exitFailure
	}

	gen := generator.New(generator.WithSeed(*seed), generator.WithLogger(a.logger))
	m, err := gen.Generate(ctx, width, height)
	if err != nil {
		a.logger.Error(err, "generation failed", "width", width, "height", height)
		return exitFailure
	}

	if err := mazefile.Save(ctx, path, m); err != nil {
		a.logger.Error(err, "unable to create file", "path", path)
		return exitFailure
	}

	fmt.Fprintf(a.stdout, "Generated %dx%d maze in %s (seed %d)\n", m.Width(), m.Height(), path, gen.Seed())
	return exitSuccess
}
