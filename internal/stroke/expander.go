// Package stroke expands flattened polylines into fillable outline polygons.
//
// A stroke is converted to a fill: the outer offset contour runs forward, the
// inner offset contour is appended reversed, and caps close the two ends of
// an open polyline. Joins honor the miter limit by falling back to bevel.
package stroke

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Cap specifies the shape of line endpoints.
type Cap int

const (
	// CapButt specifies a flat line cap.
	CapButt Cap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

// Join specifies the shape of line joins.
type Join int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter Join = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Options describes the stroke style.
type Options struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
	// Tolerance controls how finely round caps and joins are segmented.
	Tolerance float64
}

// Polyline is a flattened subpath to stroke.
type Polyline struct {
	Pts    []Point
	Closed bool
}

type vec struct {
	x, y float64
}

func (v vec) add(w vec) vec      { return vec{v.x + w.x, v.y + w.y} }
func (v vec) scale(s float64) vec { return vec{v.x * s, v.y * s} }
func (v vec) neg() vec            { return vec{-v.x, -v.y} }
func (v vec) dot(w vec) float64   { return v.x*w.x + v.y*w.y }
func (v vec) cross(w vec) float64 { return v.x*w.y - v.y*w.x }
func (v vec) length() float64     { return math.Hypot(v.x, v.y) }

// perp rotates 90 degrees clockwise in y-down device space, which places the
// normal on the left side of the direction of travel.
func (v vec) perp() vec { return vec{v.y, -v.x} }

func (v vec) normalize() (vec, bool) {
	l := v.length()
	if l < 1e-12 {
		return vec{}, false
	}
	return vec{v.x / l, v.y / l}, true
}

func direction(a, b Point) (vec, bool) {
	return vec{b.X - a.X, b.Y - a.Y}.normalize()
}

func offset(p Point, n vec, d float64) Point {
	return Point{X: p.X + n.x*d, Y: p.Y + n.y*d}
}

type expander struct {
	opt    Options
	half   float64
	out    [][]Point
	ring   []Point
}

// Expand converts the polylines into closed outline polygons suitable for a
// nonzero fill. Degenerate input (fewer than two distinct points) produces no
// output.
func Expand(lines []Polyline, opt Options) [][]Point {
	if opt.Width <= 0 {
		return nil
	}
	if opt.MiterLimit <= 0 {
		opt.MiterLimit = 10
	}
	if opt.Tolerance <= 0 {
		opt.Tolerance = 0.25
	}

	e := &expander{opt: opt, half: opt.Width / 2}
	for _, pl := range lines {
		pts := dedupe(pl.Pts)
		if pl.Closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			continue
		}
		if pl.Closed && len(pts) >= 3 {
			e.closed(pts)
		} else {
			e.open(pts)
		}
	}
	return e.out
}

// dedupe removes consecutive duplicate points.
func dedupe(pts []Point) []Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if math.Abs(p.X-last.X) > 1e-9 || math.Abs(p.Y-last.Y) > 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

func (e *expander) emit(p Point) {
	e.ring = append(e.ring, p)
}

func (e *expander) flushRing() {
	if len(e.ring) >= 3 {
		ring := make([]Point, len(e.ring))
		copy(ring, e.ring)
		e.out = append(e.out, ring)
	}
	e.ring = e.ring[:0]
}

// open strokes an open polyline: forward side, end cap, backward side,
// start cap, all in one closed ring.
func (e *expander) open(pts []Point) {
	n := len(pts)

	// Left side forward.
	e.side(pts, false)

	// End cap.
	d, _ := direction(pts[n-2], pts[n-1])
	e.cap(pts[n-1], d)

	// Right side backward (reverse traversal keeps the normal on the
	// walked left side, producing the opposite offset contour).
	rev := make([]Point, n)
	for i, p := range pts {
		rev[n-1-i] = p
	}
	e.side(rev, false)

	// Start cap.
	d0, _ := direction(pts[1], pts[0])
	e.cap(pts[0], d0)

	e.flushRing()
}

// closed strokes a closed polyline as two rings: the outer offset contour
// wound forward and the inner contour wound backward, so a nonzero fill
// leaves the middle hollow.
func (e *expander) closed(pts []Point) {
	e.side(pts, true)
	e.flushRing()

	n := len(pts)
	rev := make([]Point, n)
	for i, p := range pts {
		rev[n-1-i] = p
	}
	e.side(rev, true)
	e.flushRing()
}

// side emits the left-offset contour of the polyline, joining interior
// vertices. When wrap is true the polyline is treated as closed and the
// wrap-around joins are included.
func (e *expander) side(pts []Point, wrap bool) {
	n := len(pts)

	segDir := func(i int) (vec, bool) {
		return direction(pts[i], pts[(i+1)%n])
	}

	last := n - 1
	if wrap {
		last = n
	}

	if !wrap {
		d, ok := segDir(0)
		if ok {
			e.emit(offset(pts[0], d.perp(), e.half))
		}
	}

	for i := 0; i < last; i++ {
		d0, ok0 := segDir(i)
		if !ok0 {
			continue
		}
		endIdx := (i + 1) % n

		// Emit the end of this segment, joined with the next segment
		// where one exists.
		var d1 vec
		ok1 := false
		if wrap || i+1 < n-1 {
			d1, ok1 = segDir(endIdx)
		}

		if !ok1 {
			e.emit(offset(pts[endIdx], d0.perp(), e.half))
			continue
		}
		e.join(pts[endIdx], d0, d1)
	}
}

// join emits the left-offset join at vertex p between incoming direction d0
// and outgoing direction d1.
func (e *expander) join(p Point, d0, d1 vec) {
	n0 := d0.perp()
	n1 := d1.perp()

	// Turn direction: cross > 0 turns toward the offset side (convex on
	// the left), cross < 0 folds inward.
	crossZ := d0.cross(d1)

	if math.Abs(crossZ) < 1e-12 && d0.dot(d1) > 0 {
		// Straight through.
		e.emit(offset(p, n0, e.half))
		return
	}

	switch e.opt.Join {
	case JoinMiter:
		// Miter length ratio = 1 / cos(theta/2); computed from the
		// half-angle vector of the two normals.
		m := n0.add(n1)
		mLenSq := m.dot(m)
		if mLenSq > 1e-12 {
			// scale such that the miter point lies on both offset lines
			scale := 2 / mLenSq
			ratio := math.Sqrt(scale * 2) // |miter| / half-width
			if ratio <= e.opt.MiterLimit {
				e.emit(offset(p, m.scale(scale), e.half))
				return
			}
		}
		// Fall back to bevel beyond the miter limit.
		e.emit(offset(p, n0, e.half))
		e.emit(offset(p, n1, e.half))

	case JoinBevel:
		e.emit(offset(p, n0, e.half))
		e.emit(offset(p, n1, e.half))

	case JoinRound:
		e.arc(p, math.Atan2(n0.y, n0.x), math.Atan2(n1.y, n1.x), crossZ < 0)
	}
}

// cap emits the cap at point p where the stroke ends travelling in
// direction d. The ring arrives on the left offset and must leave on the
// right offset (the left offset of the reversed direction).
func (e *expander) cap(p Point, d vec) {
	n := d.perp()

	switch e.opt.Cap {
	case CapButt:
		e.emit(offset(p, n, e.half))
		e.emit(offset(p, n.neg(), e.half))

	case CapSquare:
		ext := d.scale(e.half)
		a := offset(p, n, e.half)
		b := offset(p, n.neg(), e.half)
		e.emit(a)
		e.emit(Point{X: a.X + ext.x, Y: a.Y + ext.y})
		e.emit(Point{X: b.X + ext.x, Y: b.Y + ext.y})
		e.emit(b)

	case CapRound:
		a0 := math.Atan2(n.y, n.x)
		e.arc(p, a0, a0+math.Pi, false)
	}
}

// arc emits points along a circular arc of radius half-width around p from
// angle a0 to a1. Segment count follows NanoVG's cap segmentation:
// ceil(delta / acos(r/(r+tol))) points across the swept angle.
func (e *expander) arc(p Point, a0, a1 float64, clockwise bool) {
	if clockwise {
		for a1 > a0 {
			a1 -= 2 * math.Pi
		}
	} else {
		for a1 < a0 {
			a1 += 2 * math.Pi
		}
	}

	delta := math.Abs(a1 - a0)
	da := math.Acos(e.half / (e.half + e.opt.Tolerance))
	steps := int(math.Ceil(delta / math.Max(da, 1e-3)))
	if steps < 2 {
		steps = 2
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		a := a0 + (a1-a0)*t
		e.emit(Point{
			X: p.X + math.Cos(a)*e.half,
			Y: p.Y + math.Sin(a)*e.half,
		})
	}
}
