package softvg

import "github.com/gogpu/softvg/internal/flatten"

// defaultTolerance is the curve flattening deviation used when no
// WithFlattenTolerance option is given.
const defaultTolerance = flatten.DefaultTolerance

// FillRule selects how overlapping areas of a path are filled.
type FillRule uint8

const (
	// FillRuleNonZero fills where the winding number is nonzero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills where an edge-crossing count is odd.
	FillRuleEvenOdd
)

// Winding is a subpath direction hint. Under the nonzero fill rule a
// counter-clockwise subpath adds area and a clockwise one cuts a hole.
type Winding uint8

const (
	// WindingCCW marks a subpath as solid.
	WindingCCW Winding = iota
	// WindingCW marks a subpath as a hole.
	WindingCW
	windingAuto
)

// path accumulates flattening commands with points already in device space.
// Each MoveTo starts a new subpath; winding requests are recorded per
// subpath and applied when the path is flattened.
type path struct {
	elements []flatten.PathElement
	windings []Winding

	start   Point // first point of the open subpath
	current Point
	open    bool
}

func (p *path) reset() {
	p.elements = p.elements[:0]
	p.windings = p.windings[:0]
	p.open = false
}

func (p *path) moveTo(pt Point) {
	p.elements = append(p.elements, flatten.MoveTo{Point: fpt(pt)})
	p.windings = append(p.windings, windingAuto)
	p.start = pt
	p.current = pt
	p.open = true
}

func (p *path) lineTo(pt Point) {
	if !p.open {
		p.moveTo(pt)
		return
	}
	p.elements = append(p.elements, flatten.LineTo{Point: fpt(pt)})
	p.current = pt
}

func (p *path) quadTo(c, pt Point) {
	if !p.open {
		p.moveTo(p.current)
	}
	p.elements = append(p.elements, flatten.QuadTo{Control: fpt(c), Point: fpt(pt)})
	p.current = pt
}

func (p *path) cubicTo(c1, c2, pt Point) {
	if !p.open {
		p.moveTo(p.current)
	}
	p.elements = append(p.elements, flatten.CubicTo{Control1: fpt(c1), Control2: fpt(c2), Point: fpt(pt)})
	p.current = pt
}

func (p *path) closePath() {
	if !p.open {
		return
	}
	p.elements = append(p.elements, flatten.Close{})
	p.current = p.start
	p.open = false
}

func (p *path) setWinding(w Winding) {
	if len(p.windings) == 0 {
		return
	}
	p.windings[len(p.windings)-1] = w
}

// flatten converts the recorded commands to polylines and enforces the
// per-subpath winding requests.
func (p *path) flatten(tol float64) []flatten.Polyline {
	polys := flatten.Path(p.elements, tol)
	for i := range polys {
		if i >= len(p.windings) || p.windings[i] == windingAuto {
			continue
		}
		area := signedArea(polys[i].Pts)
		// Y grows downward, so CCW on screen means negative area.
		ccw := area < 0
		if (p.windings[i] == WindingCCW) != ccw {
			reverse(polys[i].Pts)
		}
	}
	return polys
}

func signedArea(pts []flatten.Point) float64 {
	var a float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

func reverse(pts []flatten.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func fpt(p Point) flatten.Point {
	return flatten.Point{X: p.X, Y: p.Y}
}
