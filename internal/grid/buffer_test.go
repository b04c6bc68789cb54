package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, -1},
		{"too many cells", maxCells, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New[int](tt.width, tt.height)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrAllocation), "got %v", err)
		})
	}
}

func TestGetSet(t *testing.T) {
	b, err := New[rune](4, 3)
	require.NoError(t, err)

	w, h := b.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)

	require.NoError(t, b.Set(3, 2, 'x'))
	got, err := b.Get(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 'x', got)

	got, err = b.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, rune(0), got)
}

func TestOutOfBounds(t *testing.T) {
	b, err := New[int](5, 5)
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		_, err := b.Get(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.ErrorIs(t, b.Set(p[0], p[1], 1), ErrOutOfBounds)
		assert.False(t, b.InBounds(p[0], p[1]))
	}

	_, err = b.Row(5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFillRowClone(t *testing.T) {
	b, err := New[byte](3, 2)
	require.NoError(t, err)
	b.Fill('#')
	require.NoError(t, b.Set(1, 1, ' '))

	row, err := b.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{'#', ' ', '#'}, row)

	// Rows and clones must not alias the buffer.
	row[0] = 'z'
	c := b.Clone()
	require.NoError(t, c.Set(0, 0, 'q'))

	orig, _ := b.Get(0, 0)
	assert.Equal(t, byte('#'), orig)
	orig, _ = b.Get(0, 1)
	assert.Equal(t, byte('#'), orig)
}
