// Package ui draws a maze full screen with tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal a maze is drawn on. It exposes only the calls the
// renderer and the key loop need.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(term)
}

// Wrap takes ownership of term and prepares it for drawing: default style,
// hidden cursor, blank cells. Tests pass a tcell.SimulationScreen.
func Wrap(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(tcell.StyleDefault)
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close hands the terminal back to the line-mode shell.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks for the next key or resize. Nil means Close was called.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

func (s *Screen) Clear() { s.term.Clear() }

// Show pushes the drawn frame out.
func (s *Screen) Show() { s.term.Show() }

// SetContent draws one maze cell. Tiles never use combining runes.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

// Size reports the terminal size in cells, used to check the maze fits.
func (s *Screen) Size() (width, height int) { return s.term.Size() }

// Sync redraws everything after a resize.
func (s *Screen) Sync() { s.term.Sync() }
