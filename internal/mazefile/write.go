package mazefile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

// Write serializes m in maze file format, one newline-terminated row per line.
func Write(w io.Writer, m *world.Maze) error {
	bw := bufio.NewWriter(w)
	for _, row := range m.Rows() {
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes m to path. The maze is written to a temporary file in the
// same directory and renamed into place, so path never holds a partial maze.
func Save(ctx context.Context, path string, m *world.Maze) (err error) {
	_, span := telemetry.Tracer("mazefile").Start(ctx, "maze.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "save failed")
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("maze.path", path),
		attribute.Int("maze.width", m.Width()),
		attribute.Int("maze.height", m.Height()),
	)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFile, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, m); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrFile, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrFile, path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFile, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrFile, err)
	}
	return nil
}
