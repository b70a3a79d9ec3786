// Package assets embeds files shipped inside the binaries.
package assets

import "embed"

const PalettesPath = "palettes"

//go:embed palettes
var PalettesFS embed.FS

//go:embed static
var StaticFS embed.FS
