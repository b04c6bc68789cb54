package mazedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" (the '#' is optional) to a tcell color.
// The word "default" selects the terminal's own color.
func ParseHexColor(s string) (tcell.Color, error) {
	if strings.EqualFold(s, "default") {
		return tcell.ColorDefault, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("color %q: want 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("color %q: %w", s, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}
