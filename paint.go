package softvg

// PaintKind discriminates the paint variants.
type PaintKind uint8

const (
	// PaintSolid is a single solid color.
	PaintSolid PaintKind = iota
	// PaintLinearGradient transitions along an axis between two points.
	PaintLinearGradient
	// PaintRadialGradient transitions with distance from a center.
	PaintRadialGradient
	// PaintBoxGradient transitions with signed distance to a rounded
	// rectangle, feathered by a blur extent.
	PaintBoxGradient
	// PaintImagePattern samples an image under a pattern transform.
	PaintImagePattern
)

// Paint describes what to draw with. Paints are immutable values: build one
// with SolidPaint, LinearGradient, RadialGradient, BoxGradient or
// ImagePattern and assign it with Context.SetFillPaint or
// Context.SetStrokePaint.
//
// Gradient and pattern geometry is given in the coordinate space current at
// fill time: the evaluator maps device pixels back through the inverse of
// the drawing transform composed with the paint's own transform.
type Paint struct {
	kind PaintKind

	// Solid color, and the degenerate fallback for broken gradients.
	color RGBA

	// Linear gradient axis.
	start, end Point

	// Radial gradient geometry.
	center           Point
	inRadius         float64
	outRadius        float64

	// Box gradient geometry.
	box     [4]float64 // x, y, w, h
	radius  float64
	feather float64

	// Image pattern.
	image     *Image
	imgOrigin Point
	imgAngle  float64

	stops  []ColorStop
	extend ExtendMode
	xform  Matrix
	alpha  float64
}

// SolidPaint creates a solid color paint.
func SolidPaint(c RGBA) Paint {
	return Paint{kind: PaintSolid, color: c, alpha: 1, xform: Identity()}
}

// LinearGradient creates a gradient along the axis from (sx, sy) to
// (ex, ey). A zero-length axis degenerates to a solid fill of the last
// stop's color.
func LinearGradient(sx, sy, ex, ey float64, stops ...ColorStop) Paint {
	return Paint{
		kind:  PaintLinearGradient,
		start: Pt(sx, sy),
		end:   Pt(ex, ey),
		stops: sortStops(stops),
		color: lastStopColor(stops),
		alpha: 1,
		xform: Identity(),
	}
}

// RadialGradient creates a gradient between an inner and outer radius
// around (cx, cy). A zero radius range degenerates to a solid fill of the
// last stop's color.
func RadialGradient(cx, cy, inr, outr float64, stops ...ColorStop) Paint {
	return Paint{
		kind:      PaintRadialGradient,
		center:    Pt(cx, cy),
		inRadius:  inr,
		outRadius: outr,
		stops:     sortStops(stops),
		color:     lastStopColor(stops),
		alpha:     1,
		xform:     Identity(),
	}
}

// BoxGradient creates a gradient over a rounded rectangle at (x, y) with
// size (w, h) and corner radius r, feathered outward by f device units.
// Useful for drop shadows and inner glows.
func BoxGradient(x, y, w, h, r, f float64, stops ...ColorStop) Paint {
	return Paint{
		kind:    PaintBoxGradient,
		box:     [4]float64{x, y, w, h},
		radius:  r,
		feather: f,
		stops:   sortStops(stops),
		color:   lastStopColor(stops),
		alpha:   1,
		xform:   Identity(),
	}
}

// ImagePattern creates a paint that tiles or clamps img with its origin at
// (ox, oy), rotated by angle radians. alpha multiplies the sampled color.
func ImagePattern(img *Image, ox, oy, angle, alpha float64) Paint {
	return Paint{
		kind:      PaintImagePattern,
		image:     img,
		imgOrigin: Pt(ox, oy),
		imgAngle:  angle,
		alpha:     alpha,
		xform:     Identity(),
	}
}

// Kind returns the paint variant.
func (p Paint) Kind() PaintKind {
	return p.kind
}

// WithExtend returns the paint with the gradient extend mode replaced.
func (p Paint) WithExtend(mode ExtendMode) Paint {
	p.extend = mode
	return p
}

// WithTransform returns the paint with an additional paint-space transform.
func (p Paint) WithTransform(m Matrix) Paint {
	p.xform = m
	return p
}

// WithAlpha returns the paint with its alpha multiplier replaced.
func (p Paint) WithAlpha(a float64) Paint {
	p.alpha = a
	return p
}
