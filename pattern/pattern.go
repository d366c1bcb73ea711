// Package pattern builds the diagonal-bevel tile pattern: a checkerboard of
// overlapping square modules whose bevel orientation rotates along the
// diagonals, which is what makes the straight edges read as curved.
package pattern

import (
	"sort"

	"github.com/jbeda/geom"
)

// Orientation says which diagonal half of a module's border band gets the
// shadow polygon.  The four values are successive 90-degree rotations.
type Orientation int

const (
	OrientA Orientation = iota
	OrientB
	OrientC
	OrientD
)

func (o Orientation) String() string {
	return [...]string{"A", "B", "C", "D"}[o]
}

// Params are the generation inputs.  All values are pixels except GridN,
// which is the NxN cell count of one module.
type Params struct {
	GridN      int
	CanvasSize int
	CellSize   int
}

// ModuleSize is the pixel footprint of one diagonal-tiling unit.
func (p Params) ModuleSize() int { return p.GridN * p.CellSize }

// Bevel is the border band thickness, one cell.
func (p Params) Bevel() int { return p.CellSize }

// Step is the stride between adjacent module origins.  Modules overlap by one
// cell width so the tiling is seamless.
func (p Params) Step() int { return (p.GridN - 1) * p.CellSize }

// MaxIdx is the number of module rows/columns to enumerate.  Two extra
// guarantee coverage up to the canvas edge; out-of-bounds modules are culled.
func (p Params) MaxIdx() int { return p.CanvasSize/p.Step() + 2 }

// Module is one grid cell eligible for rendering.
type Module struct {
	Col, Row int
	Origin   geom.Coord
	State    Orientation
}

// Pattern is the computed set of visible modules in draw order.
type Pattern struct {
	Params
	Modules []Module
}

// New enumerates the module grid, keeps the even-parity checkerboard cells
// that land on the canvas, and sorts them into draw order: ascending
// (col+row), ties by col.  Odd-parity cells stay background.
func New(p Params) *Pattern {
	step := p.Step()
	maxIdx := p.MaxIdx()

	var mods []Module
	for col := 0; col < maxIdx; col++ {
		for row := 0; row < maxIdx; row++ {
			if (col+row)%2 != 0 {
				continue
			}
			ox, oy := col*step, row*step
			if ox >= p.CanvasSize || oy >= p.CanvasSize {
				continue
			}
			mods = append(mods, Module{
				Col:    col,
				Row:    row,
				Origin: geom.Coord{X: float64(ox), Y: float64(oy)},
				State:  orientationAt(col, row),
			})
		}
	}

	sort.Slice(mods, func(i, j int) bool {
		a, b := mods[i], mods[j]
		if a.Col+a.Row != b.Col+b.Row {
			return a.Col+a.Row < b.Col+b.Row
		}
		return a.Col < b.Col
	})

	return &Pattern{Params: p, Modules: mods}
}

// orientationAt maps a grid position to its bevel orientation.  d = col-row
// advances by two between visible modules and each state owns four
// consecutive d values, so the visible sequence along a diagonal rotates
// AA BB CC DD with period eight.
func orientationAt(col, row int) Orientation {
	d := col - row
	return Orientation(floorMod(floorDiv(d+2, 4), 4))
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ModuleBounds is the full s x s footprint of m.
func (pt *Pattern) ModuleBounds(m Module) geom.Rect {
	s := float64(pt.ModuleSize())
	return geom.Rect{Min: m.Origin, Max: m.Origin.Plus(geom.Coord{X: s, Y: s})}
}

// Bounds is the union of all module footprints.  It always reaches at least
// the canvas edge; the overhang past it is clipped by the viewBox.
func (pt *Pattern) Bounds() geom.Rect {
	if len(pt.Modules) == 0 {
		return geom.Rect{}
	}
	bounds := pt.ModuleBounds(pt.Modules[0])
	for _, m := range pt.Modules[1:] {
		bounds.ExpandToContainRect(pt.ModuleBounds(m))
	}
	return bounds
}

// polySpec selects the six corners of a bevel polygon.  Each axis index picks
// one of the offsets {0, bevel, size-bevel, size} from the module origin.
type polySpec [6][2]int

// The per-state vertex tables.  These are the four 90-degree rotations of
// which border triangles get shadow versus highlight; the vertex order
// matters and is reproduced case for case.
var shadowSpecs = [4]polySpec{
	OrientA: {{0, 0}, {1, 1}, {1, 2}, {2, 2}, {3, 3}, {0, 3}},
	OrientB: {{0, 3}, {1, 2}, {2, 2}, {2, 1}, {3, 0}, {3, 3}},
	OrientC: {{3, 3}, {2, 2}, {2, 1}, {1, 1}, {0, 0}, {3, 0}},
	OrientD: {{3, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 3}, {0, 0}},
}

var highlightSpecs = [4]polySpec{
	OrientA: {{3, 0}, {0, 0}, {1, 1}, {2, 1}, {2, 2}, {3, 3}},
	OrientB: {{0, 0}, {0, 3}, {1, 2}, {1, 1}, {2, 1}, {3, 0}},
	OrientC: {{0, 3}, {3, 3}, {2, 2}, {1, 2}, {1, 1}, {0, 0}},
	OrientD: {{3, 3}, {3, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 3}},
}

// ShadowPath returns the six-vertex shadow polygon for m.
func (pt *Pattern) ShadowPath(m Module) []geom.Coord {
	return trace(shadowSpecs[m.State], m.Origin, pt.ModuleSize(), pt.Bevel())
}

// HighlightPath returns the complementary six-vertex highlight polygon.
func (pt *Pattern) HighlightPath(m Module) []geom.Coord {
	return trace(highlightSpecs[m.State], m.Origin, pt.ModuleSize(), pt.Bevel())
}

func trace(spec polySpec, origin geom.Coord, size, bevel int) []geom.Coord {
	off := [4]float64{0, float64(bevel), float64(size - bevel), float64(size)}
	pts := make([]geom.Coord, len(spec))
	for i, sel := range spec {
		pts[i] = origin.Plus(geom.Coord{X: off[sel[0]], Y: off[sel[1]]})
	}
	return pts
}
