// Package generator carves random perfect mazes.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/grid"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

// ErrDimensions is returned for logical dimensions too small to hold distinct start and end rooms.
var ErrDimensions = errors.New("maze dimensions too small")

// steps are the four moves between neighbouring rooms on the physical grid.
var steps = [4]world.Coord{
	{X: 0, Y: 2},
	{X: 0, Y: -2},
	{X: 2, Y: 0},
	{X: -2, Y: 0},
}

// Generator carves mazes with its own random source.
type Generator struct {
	seed   int64
	rng    *rand.Rand
	logger logr.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the random seed. A seed of 0 keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.seed = seed
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger logr.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a generator seeded once from the current time in nanoseconds
// unless WithSeed overrides it.
func New(opts ...Option) *Generator {
	g := &Generator{
		seed:   time.Now().UnixNano(),
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Seed returns the seed the generator's random source was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate carves a maze of width x height rooms. The result has
// 2*width+1 columns and 2*height+1 rows, with the start in the top-left
// room at (1,1) and the end in the bottom-right room.
//
// Carving is a randomized depth-first walk over an explicit stack. Each
// popped room tries its four neighbours in shuffled order, and every
// neighbour that is still solid is opened and pushed, so one pop may push
// several rooms. A room is opened only once, so the corridors form a tree
// that reaches every room.
func (g *Generator) Generate(ctx context.Context, width, height int) (*world.Maze, error) {
	tracer := telemetry.Tracer("generator")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()
	runID := uuid.New()

	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}

	tiles, err := grid.New[world.Tile](2*width+1, 2*height+1)
	if err != nil {
		return nil, err
	}
	tiles.Fill(world.TileWall)
	physWidth, physHeight := tiles.Dimensions()

	origin := world.Coord{X: 1, Y: 1}
	if err := tiles.Set(origin.X, origin.Y, world.TileOpen); err != nil {
		return nil, err
	}
	stack := []world.Coord{origin}
	maxDepth := len(stack)
	carved := 1

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		order := steps
		g.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, step := range order {
			next := current.Add(step.X, step.Y)
			if next.X < 1 || next.X >= physWidth-1 || next.Y < 1 || next.Y >= physHeight-1 {
				continue
			}
			t, err := tiles.Get(next.X, next.Y)
			if err != nil {
				return nil, err
			}
			if t != world.TileWall {
				continue
			}

			// Knock down the wall between the rooms, then open the room.
			if err := tiles.Set(current.X+step.X/2, current.Y+step.Y/2, world.TileOpen); err != nil {
				return nil, err
			}
			if err := tiles.Set(next.X, next.Y, world.TileOpen); err != nil {
				return nil, err
			}
			stack = append(stack, next)
			carved++
		}
		maxDepth = max(maxDepth, len(stack))
	}

	if err := tiles.Set(origin.X, origin.Y, world.TileStart); err != nil {
		return nil, err
	}
	if err := tiles.Set(physWidth-2, physHeight-2, world.TileEnd); err != nil {
		return nil, err
	}

	m, err := world.NewMaze(tiles)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(startTime)
	span.SetAttributes(
		attribute.String("maze.run_id", runID.String()),
		attribute.Int64("maze.seed", g.seed),
		attribute.Int("maze.width", m.Width()),
		attribute.Int("maze.height", m.Height()),
		attribute.Int("maze.rooms_carved", carved),
		attribute.Int("maze.max_stack_depth", maxDepth),
		attribute.Int64("maze.generation_ms", elapsed.Milliseconds()),
	)
	g.logger.V(1).Info("maze generated",
		"runID", runID.String(),
		"seed", g.seed,
		"width", m.Width(),
		"height", m.Height(),
		"rooms", carved,
		"maxStackDepth", maxDepth,
		"elapsed", elapsed,
	)

	return m, nil
}
