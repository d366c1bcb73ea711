// Package palette holds the curated colour catalogs for the illusion
// generator and picks a random combination from them per run.
package palette

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Scheme is one curated tile/background colour pairing.
type Scheme struct {
	Name       string
	Tile       colorful.Color
	Background colorful.Color
}

// BevelPair is a shadow/highlight pairing for the bevel band.
type BevelPair struct {
	Shadow    colorful.Color
	Highlight colorful.Color
}

// Schemes is the fixed catalog of tile/background pairings.
var Schemes = [...]Scheme{
	{"Green & Orange", mustHex("#00a651"), mustHex("#f7941d")},
	{"Blue & Yellow", mustHex("#3366cc"), mustHex("#ffcc00")},
	{"Red & Cyan", mustHex("#cc3333"), mustHex("#33cccc")},
	{"Magenta & Lime", mustHex("#cc33aa"), mustHex("#66cc33")},
	{"Purple & Gold", mustHex("#6633cc"), mustHex("#ffaa00")},
	{"Teal & Coral", mustHex("#009999"), mustHex("#ff6655")},
	{"Navy & Peach", mustHex("#223366"), mustHex("#ffaa88")},
	{"Forest & Rose", mustHex("#336633"), mustHex("#ff6688")},
	{"Indigo & Amber", mustHex("#4433aa"), mustHex("#ffbb33")},
	{"Wine & Mint", mustHex("#882244"), mustHex("#55ddaa")},
	{"Slate & Tangerine", mustHex("#445566"), mustHex("#ff8833")},
	{"Cobalt & Lemon", mustHex("#0044aa"), mustHex("#eedd33")},
}

// Bevels is the fixed catalog of shadow/highlight pairings.
var Bevels = [...]BevelPair{
	{mustHex("#000000"), mustHex("#ffffff")},
	{mustHex("#1a1a2e"), mustHex("#f0ece2")},
	{mustHex("#2d2d3d"), mustHex("#e8e0d0")},
	{mustHex("#0c0f38"), mustHex("#f0d264")},
}

// Selection is the full colour choice for one generation run.  Colours are
// lowercase #rrggbb strings ready for SVG fill attributes.
type Selection struct {
	Scheme     string
	Tile       string
	Background string
	Shadow     string
	Highlight  string
}

// Pick draws one scheme and one bevel pair uniformly and independently from
// the catalogs.  Half the time the tile and background colours are swapped
// for variety.
func Pick(r *rand.Rand) Selection {
	s := Schemes[r.Intn(len(Schemes))]
	b := Bevels[r.Intn(len(Bevels))]

	tile, bg := s.Tile, s.Background
	if r.Float64() < 0.5 {
		tile, bg = bg, tile
	}

	return Selection{
		Scheme:     s.Name,
		Tile:       tile.Hex(),
		Background: bg.Hex(),
		Shadow:     b.Shadow.Hex(),
		Highlight:  b.Highlight.Hex(),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad catalog colour " + s)
	}
	return c
}
