package raster

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal line segment prepared for scan conversion.
// Points are stored with y0 < y1; dir keeps the original winding direction
// for the nonzero fill rule.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    int
}

// NewEdge creates an edge from two points. Horizontal segments contribute
// nothing to scan conversion and should be filtered by the caller.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	dy := p1.Y - p0.Y
	var dxdy float64
	if dy != 0 {
		dxdy = (p1.X - p0.X) / dy
	}

	return Edge{
		x0:   p0.X,
		y0:   p0.Y,
		x1:   p1.X,
		y1:   p1.Y,
		dxdy: dxdy,
		dir:  dir,
	}
}

// XAtY returns the x coordinate where the edge crosses the given y.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// crossing is one edge intersection on a scanline.
type crossing struct {
	x   float64
	dir int
}
