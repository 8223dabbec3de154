package softvg

import "math"

// kappa approximates a quarter circle with one cubic Bezier segment.
const kappa = 0.5522847493

// Rect appends a closed axis-aligned rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) {
	if !c.ok() {
		return
	}
	c.MoveTo(x, y)
	c.LineTo(x, y+h)
	c.LineTo(x+w, y+h)
	c.LineTo(x+w, y)
	c.ClosePath()
}

// RoundedRect appends a closed rectangle subpath with corner radius r.
func (c *Context) RoundedRect(x, y, w, h, r float64) {
	if !c.ok() {
		return
	}
	if r < 0.1 {
		c.Rect(x, y, w, h)
		return
	}
	rx := math.Min(r, math.Abs(w)/2) * sign(w)
	ry := math.Min(r, math.Abs(h)/2) * sign(h)
	c.MoveTo(x, y+ry)
	c.LineTo(x, y+h-ry)
	c.BezierTo(x, y+h-ry*(1-kappa), x+rx*(1-kappa), y+h, x+rx, y+h)
	c.LineTo(x+w-rx, y+h)
	c.BezierTo(x+w-rx*(1-kappa), y+h, x+w, y+h-ry*(1-kappa), x+w, y+h-ry)
	c.LineTo(x+w, y+ry)
	c.BezierTo(x+w, y+ry*(1-kappa), x+w-rx*(1-kappa), y, x+w-rx, y)
	c.LineTo(x+rx, y)
	c.BezierTo(x+rx*(1-kappa), y, x, y+ry*(1-kappa), x, y+ry)
	c.ClosePath()
}

// Ellipse appends a closed ellipse subpath centered at (cx, cy).
func (c *Context) Ellipse(cx, cy, rx, ry float64) {
	if !c.ok() {
		return
	}
	c.MoveTo(cx-rx, cy)
	c.BezierTo(cx-rx, cy+ry*kappa, cx-rx*kappa, cy+ry, cx, cy+ry)
	c.BezierTo(cx+rx*kappa, cy+ry, cx+rx, cy+ry*kappa, cx+rx, cy)
	c.BezierTo(cx+rx, cy-ry*kappa, cx+rx*kappa, cy-ry, cx, cy-ry)
	c.BezierTo(cx-rx*kappa, cy-ry, cx-rx, cy-ry*kappa, cx-rx, cy)
	c.ClosePath()
}

// Circle appends a closed circle subpath centered at (cx, cy).
func (c *Context) Circle(cx, cy, r float64) {
	c.Ellipse(cx, cy, r, r)
}

// Arc appends a circular arc around (cx, cy) from angle a0 to a1 in
// radians. clockwise selects the sweep direction in the y-down device
// convention. The arc connects to an open subpath with a line, or starts a
// new one.
func (c *Context) Arc(cx, cy, r, a0, a1 float64, clockwise bool) {
	if !c.ok() {
		return
	}
	da := a1 - a0
	if clockwise {
		if math.Abs(da) >= 2*math.Pi {
			da = 2 * math.Pi
		} else {
			for da < 0 {
				da += 2 * math.Pi
			}
		}
	} else {
		if math.Abs(da) >= 2*math.Pi {
			da = -2 * math.Pi
		} else {
			for da > 0 {
				da -= 2 * math.Pi
			}
		}
	}

	// A zero sweep has no curve to emit; just connect to the start point.
	if math.Abs(da) < 1e-12 {
		x := cx + math.Cos(a0)*r
		y := cy + math.Sin(a0)*r
		if c.path.open {
			c.LineTo(x, y)
		} else {
			c.MoveTo(x, y)
		}
		return
	}

	// One cubic per quarter turn keeps the radial error well under the
	// flattening tolerance.
	ndivs := int(math.Max(1, math.Min(math.Ceil(math.Abs(da)/(math.Pi/2)), 5)))
	hda := (da / float64(ndivs)) / 2
	kap := math.Abs(4.0 / 3.0 * (1 - math.Cos(hda)) / math.Sin(hda))
	if !clockwise {
		kap = -kap
	}

	var px, py, ptanx, ptany float64
	for i := 0; i <= ndivs; i++ {
		a := a0 + da*float64(i)/float64(ndivs)
		dx := math.Cos(a)
		dy := math.Sin(a)
		x := cx + dx*r
		y := cy + dy*r
		tanx := -dy * r * kap
		tany := dx * r * kap

		if i == 0 {
			if c.path.open {
				c.LineTo(x, y)
			} else {
				c.MoveTo(x, y)
			}
		} else {
			c.BezierTo(px+ptanx, py+ptany, x-tanx, y-tany, x, y)
		}
		px, py = x, y
		ptanx, ptany = tanx, tany
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
