package softvg

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/softvg/internal/blend"
)

// paintEval evaluates a paint at device pixels. The inverse transform and
// gradient ramp are hoisted once per fill so the per-pixel path stays cheap.
type paintEval struct {
	kind PaintKind

	// Solid fast path, also used for degenerate gradients.
	solid   blend.Color
	isSolid bool

	inv   Matrix // device space -> paint space
	ramp  *ramp
	alpha float32

	// Linear gradient: unit axis direction and inverse length.
	origin Point
	dir    Point
	invLen float64

	// Radial gradient.
	center   Point
	inRadius float64
	spanInv  float64 // 1 / (outRadius - inRadius)

	// Box gradient.
	box     [4]float64
	radius  float64
	feather float64

	image *Image
}

// newPaintEval compiles paint under the drawing transform xform, with
// globalAlpha folded in. Degenerate geometry (zero-length axis, zero radius
// span, singular transform) falls back to a solid fill of the paint's
// fallback color.
func newPaintEval(p Paint, xform Matrix, globalAlpha float64) *paintEval {
	e := &paintEval{
		kind:  p.kind,
		alpha: float32(clamp01(p.alpha * globalAlpha)),
	}
	if p.kind == PaintSolid {
		e.setSolid(p.color, globalAlpha*p.alpha)
		return e
	}

	full := xform.Multiply(p.xform)
	if !full.IsInvertible() {
		e.setSolid(p.color, globalAlpha*p.alpha)
		return e
	}
	e.inv = full.Invert()
	e.ramp = newRamp(p.stops, p.extend)

	switch p.kind {
	case PaintLinearGradient:
		d := p.end.Sub(p.start)
		l := d.Length()
		if l < 1e-6 || len(p.stops) == 0 {
			e.setSolid(p.color, globalAlpha*p.alpha)
			return e
		}
		e.origin = p.start
		e.dir = d.Mul(1 / l)
		e.invLen = 1 / l
	case PaintRadialGradient:
		span := p.outRadius - p.inRadius
		if span <= 1e-6 || len(p.stops) == 0 {
			e.setSolid(p.color, globalAlpha*p.alpha)
			return e
		}
		e.center = p.center
		e.inRadius = p.inRadius
		e.spanInv = 1 / span
	case PaintBoxGradient:
		if len(p.stops) == 0 {
			e.setSolid(p.color, globalAlpha*p.alpha)
			return e
		}
		e.box = p.box
		e.radius = p.radius
		e.feather = math.Max(p.feather, 1e-6)
	case PaintImagePattern:
		if p.image == nil || p.image.Width <= 0 || p.image.Height <= 0 {
			e.setSolid(Transparent, 1)
			return e
		}
		// Fold origin and rotation into the inverse map.
		pat := full.Multiply(Translate(p.imgOrigin.X, p.imgOrigin.Y)).Multiply(Rotate(p.imgAngle))
		if !pat.IsInvertible() {
			e.setSolid(Transparent, 1)
			return e
		}
		e.inv = pat.Invert()
		e.image = p.image
	}
	return e
}

func (e *paintEval) setSolid(c RGBA, alpha float64) {
	e.isSolid = true
	e.solid = toBlendColor(c.WithAlpha(c.A * clamp01(alpha)))
}

// At samples the paint at the center of device pixel (x, y).
func (e *paintEval) At(x, y int) blend.Color {
	if e.isSolid {
		return e.solid
	}
	pp := e.inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	px, py := pp.X, pp.Y

	var c RGBA
	switch e.kind {
	case PaintLinearGradient:
		t := (px-e.origin.X)*e.dir.X + (py-e.origin.Y)*e.dir.Y
		c = e.ramp.At(float32(t * e.invLen))
	case PaintRadialGradient:
		d := math32.Hypot(float32(px-e.center.X), float32(py-e.center.Y))
		c = e.ramp.At((d - float32(e.inRadius)) * float32(e.spanInv))
	case PaintBoxGradient:
		sd := roundRectSDF(px, py, e.box, e.radius)
		t := float32(0.5 + sd/e.feather)
		c = e.ramp.At(t)
	case PaintImagePattern:
		c = e.image.sample(px, py)
	default:
		return e.solid
	}
	if e.alpha < 1 {
		c.A *= float64(e.alpha)
	}
	return toBlendColor(c)
}

// spanColors fills dst with paint samples for the pixel run starting at
// (x, y). Callers reuse dst across rows.
func (e *paintEval) spanColors(dst []blend.Color, x, y int) {
	if e.isSolid {
		for i := range dst {
			dst[i] = e.solid
		}
		return
	}
	for i := range dst {
		dst[i] = e.At(x+i, y)
	}
}

// roundRectSDF is the signed distance from (px, py) to a rounded rectangle
// given as x, y, w, h with corner radius r. Negative inside.
func roundRectSDF(px, py float64, box [4]float64, r float64) float64 {
	ex := box[2]/2 - r
	ey := box[3]/2 - r
	if ex < 0 {
		ex = 0
	}
	if ey < 0 {
		ey = 0
	}
	dx := math.Abs(px-(box[0]+box[2]/2)) - ex
	dy := math.Abs(py-(box[1]+box[3]/2)) - ey
	return math.Min(math.Max(dx, dy), 0) + math.Hypot(math.Max(dx, 0), math.Max(dy, 0)) - r
}

func toBlendColor(c RGBA) blend.Color {
	return blend.Color{
		R: byteChannel(c.R),
		G: byteChannel(c.G),
		B: byteChannel(c.B),
		A: byteChannel(c.A),
	}
}
