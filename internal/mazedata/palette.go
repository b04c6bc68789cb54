package mazedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/world"
)

// StyleDef is one palette entry loaded from JSON.
type StyleDef struct {
	Tile       string `json:"tile"`       // Tile name as returned by world.Tile.String
	Foreground string `json:"foreground"` // Hex color code (e.g., "#808080")
	Bold       bool   `json:"bold"`
}

// Style converts the definition to a tcell style.
func (d StyleDef) Style() (tcell.Style, error) {
	color, err := ParseHexColor(d.Foreground)
	if err != nil {
		return tcell.StyleDefault, fmt.Errorf("palette entry %q: %w", d.Tile, err)
	}
	return tcell.StyleDefault.Foreground(color).Bold(d.Bold), nil
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Tiles  []StyleDef `json:"tiles"`
	Player StyleDef   `json:"player"`
}

// Palette maps tiles and the player marker to display styles.
type Palette struct {
	tiles  map[world.Tile]tcell.Style
	player tcell.Style
}

// NewPalette builds a palette from loaded style definitions.
// Every tile kind must have an entry.
func NewPalette(file PaletteFile) (*Palette, error) {
	byName := make(map[string]world.Tile)
	for _, t := range []world.Tile{world.TileWall, world.TileOpen, world.TileStart, world.TileEnd} {
		byName[t.String()] = t
	}

	p := &Palette{tiles: make(map[world.Tile]tcell.Style, len(byName))}
	for _, def := range file.Tiles {
		tile, ok := byName[def.Tile]
		if !ok {
			return nil, fmt.Errorf("palette: unknown tile %q", def.Tile)
		}
		style, err := def.Style()
		if err != nil {
			return nil, err
		}
		p.tiles[tile] = style
	}
	for name, tile := range byName {
		if _, ok := p.tiles[tile]; !ok {
			return nil, fmt.Errorf("palette: no style for tile %q", name)
		}
	}

	player, err := file.Player.Style()
	if err != nil {
		return nil, err
	}
	p.player = player
	return p, nil
}

// LoadPalette loads the palette from the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// TileStyle returns the style for a tile.
func (p *Palette) TileStyle(t world.Tile) tcell.Style {
	if style, ok := p.tiles[t]; ok {
		return style
	}
	return tcell.StyleDefault
}

// PlayerStyle returns the style for the player marker.
func (p *Palette) PlayerStyle() tcell.Style {
	return p.player
}
