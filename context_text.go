package softvg

import "github.com/gogpu/softvg/text"

// FillGlyph fills a pre-shaped glyph outline with the current fill paint,
// with the glyph origin placed at (x, y) in local coordinates. The outline
// replaces the current path and is consumed by the fill.
//
// Shaping and positioning stay with the caller's font stack: feed each
// positioned glyph here and advance the pen with the outline's Advance.
// Returns the glyph's advance in local units.
func (c *Context) FillGlyph(outline *text.Outline, x, y float64) float64 {
	if !c.ok() || outline == nil {
		return 0
	}
	if outline.IsEmpty() {
		return float64(outline.Advance)
	}

	c.BeginPath()
	c.appendOutline(outline, x, y)
	c.Fill()
	return float64(outline.Advance)
}

// StrokeGlyph is FillGlyph with the stroke pipeline, for outlined text.
func (c *Context) StrokeGlyph(outline *text.Outline, x, y float64) float64 {
	if !c.ok() || outline == nil {
		return 0
	}
	if outline.IsEmpty() {
		return float64(outline.Advance)
	}

	c.BeginPath()
	c.appendOutline(outline, x, y)
	c.Stroke()
	return float64(outline.Advance)
}

func (c *Context) appendOutline(outline *text.Outline, x, y float64) {
	pt := func(p text.Point) (float64, float64) {
		return x + float64(p.X), y + float64(p.Y)
	}
	for _, seg := range outline.Segments {
		switch seg.Op {
		case text.OpMoveTo:
			// Font contours are closed by construction.
			c.ClosePath()
			px, py := pt(seg.Points[0])
			c.MoveTo(px, py)
		case text.OpLineTo:
			px, py := pt(seg.Points[0])
			c.LineTo(px, py)
		case text.OpQuadTo:
			cx, cy := pt(seg.Points[0])
			px, py := pt(seg.Points[1])
			c.QuadTo(cx, cy, px, py)
		case text.OpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			px, py := pt(seg.Points[2])
			c.BezierTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	c.ClosePath()
}
