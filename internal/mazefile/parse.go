// Package mazefile reads, validates and writes the plain text maze format.
//
// A maze file holds between MinDim and MaxDim rows of equal width, each
// made of '#' (wall), ' ' (open), 'S' (start) and 'E' (end) and terminated
// by a newline. Exactly one 'S' and one 'E' must appear.
package mazefile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazeband/internal/grid"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

// Load opens and parses the maze file at path. Failure to open or read the
// file wraps ErrFile; validation failures wrap ErrFormat.
func Load(ctx context.Context, path string) (*world.Maze, error) {
	_, span := telemetry.Tracer("mazefile").Start(ctx, "maze.load")
	defer span.End()
	span.SetAttributes(attribute.String("maze.path", path))

	f, err := os.Open(path)
	if err != nil {
		span.SetStatus(codes.Error, "open failed")
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid maze")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("maze.width", m.Width()),
		attribute.Int("maze.height", m.Height()),
	)
	return m, nil
}

// Parse validates maze text and builds a maze. Validation is all or
// nothing: on error no maze is returned.
//
// The width is the length of the first line and the height is the number
// of non-empty lines. Rows are then read in order, so an empty line inside
// the maze is reported as a row of the wrong length.
func Parse(r io.Reader) (*world.Maze, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		// The file opened but its contents could not be read as a maze.
		return nil, fmt.Errorf("%w: reading maze: %w", ErrFormat, err)
	}
	lines := splitLines(data)

	width := 0
	if len(lines) > 0 {
		width = len(lines[0])
	}
	if width < world.MinDim || width > world.MaxDim {
		return nil, &FormatError{
			Kind:   ErrSize,
			Line:   1,
			Detail: fmt.Sprintf("width %d outside [%d,%d]", width, world.MinDim, world.MaxDim),
		}
	}

	height := 0
	for _, line := range lines {
		if len(line) > 0 {
			height++
		}
	}
	if height < world.MinDim || height > world.MaxDim {
		return nil, &FormatError{
			Kind:   ErrSize,
			Detail: fmt.Sprintf("height %d outside [%d,%d]", height, world.MinDim, world.MaxDim),
		}
	}

	tiles, err := grid.New[world.Tile](width, height)
	if err != nil {
		return nil, err
	}

	var start, end *world.Coord
	for y := 0; y < height; y++ {
		line := lines[y]
		if len(line) != width {
			return nil, &FormatError{
				Kind:   ErrRowLength,
				Line:   y + 1,
				Detail: fmt.Sprintf("got %d characters, want %d", len(line), width),
			}
		}

		for x := 0; x < width; x++ {
			c := line[x]
			tile, ok := world.TileFromRune(rune(c))
			if !ok {
				return nil, &FormatError{
					Kind:   ErrInvalidChar,
					Line:   y + 1,
					Column: x + 1,
					Detail: fmt.Sprintf("%q", c),
				}
			}

			switch tile {
			case world.TileStart:
				if start != nil {
					return nil, duplicateMarker(c, x, y, *start)
				}
				start = &world.Coord{X: x, Y: y}
			case world.TileEnd:
				if end != nil {
					return nil, duplicateMarker(c, x, y, *end)
				}
				end = &world.Coord{X: x, Y: y}
			}

			if err := tiles.Set(x, y, tile); err != nil {
				return nil, err
			}
		}
	}

	switch {
	case start == nil:
		return nil, &FormatError{Kind: ErrMissingMarker, Detail: "no start 'S'"}
	case end == nil:
		return nil, &FormatError{Kind: ErrMissingMarker, Detail: "no end 'E'"}
	}

	return world.NewMaze(tiles)
}

func duplicateMarker(c byte, x, y int, first world.Coord) error {
	return &FormatError{
		Kind:   ErrDuplicateMarker,
		Line:   y + 1,
		Column: x + 1,
		Detail: fmt.Sprintf("second %q, first at line %d, column %d", c, first.Y+1, first.X+1),
	}
}

// splitLines splits data into lines, removing one "\n" or "\r\n"
// terminator from each. A final line without a terminator still counts.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, data)
			break
		}
		lines = append(lines, bytes.TrimSuffix(data[:i], []byte{'\r'}))
		data = data[i+1:]
	}
	return lines
}
