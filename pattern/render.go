package pattern

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/jbeda/geom"

	"illusionfun/palette"
)

// Generate builds the complete SVG document for p using the colours in sel.
// The output is byte deterministic for fixed inputs.
func Generate(p Params, sel palette.Selection) string {
	var buf bytes.Buffer
	New(p).Render(&buf, sel)
	return buf.String()
}

// Render writes the SVG document to w: viewBox, title, full-canvas background
// rect, then each module in draw order as a group of exactly one interior
// rect and two bevel polygons.  The rect must come first in the group so the
// bevel corners are not obscured.
func (pt *Pattern) Render(w io.Writer, sel palette.Selection) {
	canvas := svg.New(w)
	c := pt.CanvasSize

	canvas.Startview(c, c, 0, 0, c, c)
	canvas.Title(fmt.Sprintf("IllusionFun - %s | grid %dx%d", sel.Scheme, pt.GridN, pt.GridN))
	canvas.Rect(0, 0, c, c, fill(sel.Background))

	b := pt.Bevel()
	inner := pt.ModuleSize() - 2*b
	for _, m := range pt.Modules {
		canvas.Group()
		canvas.Rect(int(m.Origin.X)+b, int(m.Origin.Y)+b, inner, inner, fill(sel.Tile))
		sx, sy := polyXY(pt.ShadowPath(m))
		canvas.Polygon(sx, sy, fill(sel.Shadow))
		hx, hy := polyXY(pt.HighlightPath(m))
		canvas.Polygon(hx, hy, fill(sel.Highlight))
		canvas.Gend()
	}

	canvas.End()
}

func fill(hex string) string {
	return fmt.Sprintf(`fill="%s"`, hex)
}

// All module geometry sits on whole pixels, so the float-to-int conversion
// here is exact.
func polyXY(pts []geom.Coord) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i] = int(p.X)
		ys[i] = int(p.Y)
	}
	return xs, ys
}
