package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/grid"
	"github.com/samdwyer/mazeband/internal/mazedata"
	"github.com/samdwyer/mazeband/internal/world"
)

func testMaze(t *testing.T) *world.Maze {
	t.Helper()
	rows := []string{
		"#####",
		"#S  #",
		"# # #",
		"#  E#",
		"#####",
	}
	buf, err := grid.New[world.Tile](5, 5)
	if err != nil {
		t.Fatalf("Failed to allocate grid: %v", err)
	}
	for y, row := range rows {
		for x, r := range row {
			tile, _ := world.TileFromRune(r)
			if err := buf.Set(x, y, tile); err != nil {
				t.Fatalf("Set(%d,%d) failed: %v", x, y, err)
			}
		}
	}
	m, err := world.NewMaze(buf)
	if err != nil {
		t.Fatalf("Failed to build maze: %v", err)
	}
	return m
}

func TestRender(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Close()
	sim.SetSize(20, 10)

	palette, err := mazedata.LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	m := testMaze(t)
	player := entity.NewPlayer(2, 1, '@')
	NewRenderer(screen, palette).Render(m, player, "moves: 1")

	want := []string{
		"#####",
		"#S@ #",
		"# # #",
		"#  E#",
		"#####",
	}
	for y, row := range want {
		for x, r := range row {
			got, _, _, _ := sim.GetContent(x, y)
			if got != r {
				t.Errorf("Cell (%d,%d) = %q, want %q", x, y, got, r)
			}
		}
	}

	_, _, style, _ := sim.GetContent(2, 1)
	if style != palette.PlayerStyle() {
		t.Error("Player cell should use the player style")
	}
	_, _, style, _ = sim.GetContent(0, 0)
	if style != palette.TileStyle(world.TileWall) {
		t.Error("Wall cell should use the wall style")
	}

	var status strings.Builder
	for x := 0; x < len("moves: 1"); x++ {
		r, _, _, _ := sim.GetContent(x, m.Height()+1)
		status.WriteRune(r)
	}
	if status.String() != "moves: 1" {
		t.Errorf("Status line = %q, want %q", status.String(), "moves: 1")
	}
}

func TestRenderTooSmall(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Close()
	sim.SetSize(40, 4)

	palette, err := mazedata.LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	m := testMaze(t)
	NewRenderer(screen, palette).Render(m, entity.NewPlayer(1, 1, 'X'), "")

	var line strings.Builder
	for x := 0; x < len("terminal"); x++ {
		r, _, _, _ := sim.GetContent(x, 0)
		line.WriteRune(r)
	}
	if line.String() != "terminal" {
		t.Errorf("Expected size notice, got %q", line.String())
	}
}
