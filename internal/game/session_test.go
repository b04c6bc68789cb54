package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/mazedata"
	"github.com/samdwyer/mazeband/internal/mazefile"
	"github.com/samdwyer/mazeband/internal/world"
)

func loadSample(t *testing.T, name string) *world.Maze {
	t.Helper()
	raw, err := mazedata.Sample(name)
	require.NoError(t, err)
	m, err := mazefile.Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	return m
}

func runSession(t *testing.T, m *world.Maze, input string) (*Session, State, string) {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(m, m.NewPlayer('X'), strings.NewReader(input), &out, logr.Discard())
	state, err := s.Run(context.Background())
	require.NoError(t, err)
	return s, state, out.String()
}

func TestSessionWins(t *testing.T) {
	m := loadSample(t, "corridor")
	s, state, out := runSession(t, m, "d\nD\ns\nS\na\nA\n")

	assert.Equal(t, StateWon, state)
	assert.True(t, m.HasWon(s.Player()))
	assert.Equal(t, 6, strings.Count(out, Prompt))
	assert.True(t, strings.HasPrefix(out, "\n#####\n#X  #\n### #\n#E  #\n#####\n"+Prompt))
	assert.True(t, strings.HasSuffix(out, Congratulations))
}

func TestSessionUsesFirstCharacterOnly(t *testing.T) {
	m := loadSample(t, "corridor")
	s, _, _ := runSession(t, m, "dwww\nd\n")

	assert.Equal(t, 3, s.Player().X)
	assert.Equal(t, 1, s.Player().Y)
}

func TestSessionFinalLineWithoutNewline(t *testing.T) {
	m := loadSample(t, "corridor")
	_, state, _ := runSession(t, m, "d\nd\ns\ns\na\na")
	assert.Equal(t, StateWon, state)
}

func TestSessionEndOfInput(t *testing.T) {
	m := loadSample(t, "corridor")
	s, state, out := runSession(t, m, "w\nx\n\n")

	assert.Equal(t, StateQuit, state)
	assert.Equal(t, world.Coord{X: 1, Y: 1}, world.Coord{X: s.Player().X, Y: s.Player().Y})
	assert.Equal(t, 4, strings.Count(out, Prompt))
	assert.True(t, strings.HasSuffix(out, Congratulations))
}

func TestSessionReadErrorEndsQuietly(t *testing.T) {
	m := loadSample(t, "corridor")
	var out bytes.Buffer
	s := NewSession(m, m.NewPlayer('X'), iotest.ErrReader(errors.New("boom")), &out, logr.Discard())

	state, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateQuit, state)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSessionWriteError(t *testing.T) {
	m := loadSample(t, "corridor")
	s := NewSession(m, m.NewPlayer('X'), strings.NewReader("d\n"), failingWriter{}, logr.Discard())

	_, err := s.Run(context.Background())
	assert.EqualError(t, err, "disk full")
}

func TestSessionCancelled(t *testing.T) {
	m := loadSample(t, "corridor")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := NewSession(m, m.NewPlayer('X'), strings.NewReader("d\n"), &out, logr.Discard())
	state, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateQuit, state)
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StatePlaying: "playing",
		StateWon:     "won",
		StateQuit:    "quit",
		State(42):    "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
