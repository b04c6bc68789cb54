// Package grid provides fixed-size two-dimensional cell storage.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is returned when a buffer cannot be created with the requested dimensions.
	ErrAllocation = errors.New("grid allocation failed")
	// ErrOutOfBounds is returned for any access outside the buffer.
	ErrOutOfBounds = errors.New("grid access out of bounds")
)

// maxCells caps a single buffer well above anything a maze needs.
const maxCells = 1 << 26

// Buffer is a width x height array of cells addressed by (x column, y row).
// Its dimensions never change after construction.
type Buffer[T any] struct {
	width  int
	height int
	cells  []T
}

// New allocates a buffer with every cell set to the zero value of T.
func New[T any](width, height int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrAllocation, width, height)
	}
	if width > maxCells/height {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed %d cells", ErrAllocation, width, height, maxCells)
	}
	return &Buffer[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// Dimensions returns the width and height of the buffer.
func (b *Buffer[T]) Dimensions() (width, height int) {
	return b.width, b.height
}

// InBounds returns true if (x, y) addresses a cell of the buffer.
func (b *Buffer[T]) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y).
func (b *Buffer[T]) Get(x, y int) (T, error) {
	if !b.InBounds(x, y) {
		var zero T
		return zero, b.boundsError(x, y)
	}
	return b.cells[y*b.width+x], nil
}

// Set stores value at (x, y).
func (b *Buffer[T]) Set(x, y int, value T) error {
	if !b.InBounds(x, y) {
		return b.boundsError(x, y)
	}
	b.cells[y*b.width+x] = value
	return nil
}

// Fill sets every cell to value.
func (b *Buffer[T]) Fill(value T) {
	for i := range b.cells {
		b.cells[i] = value
	}
}

// Row returns a copy of row y.
func (b *Buffer[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= b.height {
		return nil, b.boundsError(0, y)
	}
	row := make([]T, b.width)
	copy(row, b.cells[y*b.width:(y+1)*b.width])
	return row, nil
}

// Clone returns an independent copy of the buffer.
func (b *Buffer[T]) Clone() *Buffer[T] {
	cells := make([]T, len(b.cells))
	copy(cells, b.cells)
	return &Buffer[T]{width: b.width, height: b.height, cells: cells}
}

func (b *Buffer[T]) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
}
