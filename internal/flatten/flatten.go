// Package flatten converts paths with curves into per-subpath polylines.
package flatten

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// DefaultTolerance is the maximum deviation, in device units, between a
// curve and its polyline approximation.
const DefaultTolerance = 0.25

// maxDepth bounds the recursive subdivision. Degenerate curves (collinear or
// coincident control points) can fail the flatness test forever under
// floating-point noise; the depth cap guarantees termination.
const maxDepth = 16

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Polyline is one flattened subpath.
type Polyline struct {
	Pts    []Point
	Closed bool
}

// Path flattens path elements into polylines, one per subpath.
// Curves are subdivided until their deviation from a chord is below tol.
func Path(elements []PathElement, tol float64) []Polyline {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	var out []Polyline
	var cur Polyline
	var current Point

	flush := func() {
		if len(cur.Pts) > 0 {
			out = append(out, cur)
		}
		cur = Polyline{}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = e.Point
			cur.Pts = append(cur.Pts, current)

		case LineTo:
			current = e.Point
			cur.Pts = append(cur.Pts, current)

		case QuadTo:
			flattenQuad(current, e.Control, e.Point, tol, 0, &cur.Pts)
			current = e.Point

		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tol, 0, &cur.Pts)
			current = e.Point

		case Close:
			if len(cur.Pts) > 0 {
				cur.Closed = true
				current = cur.Pts[0]
				flush()
			}
		}
	}
	flush()

	return out
}

// Helper methods for Point.

func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// flattenQuad recursively subdivides a quadratic Bezier curve.
func flattenQuad(p0, p1, p2 Point, tol float64, depth int, points *[]Point) {
	dist := distanceToLine(p1, p0, p2)

	if dist < tol || depth >= maxDepth {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuad(p0, q0, q2, tol, depth+1, points)
	flattenQuad(q2, q1, p2, tol, depth+1, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, tol float64, depth int, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)

	if dist < tol || depth >= maxDepth {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tol, depth+1, points)
	flattenCubic(s, r1, q2, p3, tol, depth+1, points)
}

// distanceToLine calculates the perpendicular distance from point p to line
// segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
