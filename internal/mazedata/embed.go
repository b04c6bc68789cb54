// Package mazedata provides embedded sample mazes and the tile palette.
package mazedata

import "embed"

// dataFS embeds the palette and sample mazes at build time.
//
//go:embed *.json samples/*.txt
var dataFS embed.FS
