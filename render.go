package softvg

import (
	"math"

	"github.com/gogpu/softvg/internal/blend"
	"github.com/gogpu/softvg/internal/clip"
	"github.com/gogpu/softvg/internal/flatten"
	"github.com/gogpu/softvg/internal/raster"
	"github.com/gogpu/softvg/internal/stroke"
)

// Fill rasterizes the current path with the fill paint and clears the path.
func (c *Context) Fill() {
	if !c.ok() {
		return
	}
	c.fillCurrentPath()
	c.path.reset()
}

// FillPreserve is Fill without clearing the path, so it can be stroked or
// filled again.
func (c *Context) FillPreserve() {
	if !c.ok() {
		return
	}
	c.fillCurrentPath()
}

// Stroke expands the current path into its outline, rasterizes it with the
// stroke paint and clears the path.
func (c *Context) Stroke() {
	if !c.ok() {
		return
	}
	c.strokeCurrentPath()
	c.path.reset()
}

// StrokePreserve is Stroke without clearing the path.
func (c *Context) StrokePreserve() {
	if !c.ok() {
		return
	}
	c.strokeCurrentPath()
}

// Clip intersects the current clip region with the current path's coverage
// and clears the path. The region is restored by Restore. Clip requires a
// bound framebuffer to size the coverage mask.
func (c *Context) Clip() {
	if !c.ok() {
		return
	}
	defer c.path.reset()
	if c.fb == nil {
		Logger().Warn("softvg: Clip with no framebuffer bound")
		return
	}
	s := c.top()
	mask := clip.NewMask(c.fb.Width, c.fb.Height)
	polys := polylinesToPolys(c.path.flatten(c.opts.tolerance))
	box := raster.ClipBox{X1: c.fb.Width, Y1: c.fb.Height}
	c.ras.Fill(polys, rasterRule(s.fillRule), box, c.opts.antialias, func(y, x int, cov []uint8) {
		mask.AddRow(x, y, cov)
	})
	if s.clip != nil {
		mask.Intersect(s.clip)
	}
	s.clip = mask
}

// ResetClip removes the clip region from the current state.
func (c *Context) ResetClip() {
	if !c.ok() {
		return
	}
	c.top().clip = nil
}

func (c *Context) fillCurrentPath() {
	s := c.top()
	polys := polylinesToPolys(c.path.flatten(c.opts.tolerance))
	if len(polys) == 0 {
		return
	}
	eval := newPaintEval(s.fillPaint, s.xform, s.alpha)
	c.rasterize(polys, rasterRule(s.fillRule), eval, s)
}

func (c *Context) strokeCurrentPath() {
	s := c.top()
	flat := c.path.flatten(c.opts.tolerance)
	if len(flat) == 0 {
		return
	}
	lines := make([]stroke.Polyline, len(flat))
	for i, pl := range flat {
		pts := make([]stroke.Point, len(pl.Pts))
		for j, p := range pl.Pts {
			pts[j] = stroke.Point{X: p.X, Y: p.Y}
		}
		lines[i] = stroke.Polyline{Pts: pts, Closed: pl.Closed}
	}
	rings := stroke.Expand(lines, s.strokeOptions(c.opts.tolerance))
	if len(rings) == 0 {
		return
	}
	polys := make([][]raster.Point, len(rings))
	for i, ring := range rings {
		pts := make([]raster.Point, len(ring))
		for j, p := range ring {
			pts[j] = raster.Point{X: p.X, Y: p.Y}
		}
		polys[i] = pts
	}
	eval := newPaintEval(s.strokePaint, s.xform, s.alpha)
	// Outline rings are wound so nonzero filling leaves the interior of
	// closed strokes hollow.
	c.rasterize(polys, raster.FillRuleNonZero, eval, s)
}

// rasterize scan-converts polys and blends the resulting spans, applying
// scissor and clip coverage. With no framebuffer bound all coverage and
// paint work still runs; only the final write is skipped.
func (c *Context) rasterize(polys [][]raster.Point, rule raster.FillRule, eval *paintEval, s *state) {
	box, sc := c.renderClipBox(polys, s)
	if box.IsEmpty() {
		return
	}
	if s.clip != nil {
		cx0, cy0, cx1, cy1 := s.clip.Bounds()
		box = box.Intersect(raster.ClipBox{X0: cx0, Y0: cy0, X1: cx1, Y1: cy1})
		if box.IsEmpty() {
			return
		}
	}

	width := box.X1 - box.X0
	if cap(c.covBuf) < width {
		c.covBuf = make([]uint8, width)
		c.colorBuf = make([]blend.Color, width)
	}

	op := s.op.blendOp()
	discard := c.fb == nil
	spans := 0

	c.ras.Fill(polys, rule, box, c.opts.antialias, func(y, x int, cov []uint8) {
		spans++
		n := len(cov)
		buf := c.covBuf[:n]
		copy(buf, cov)

		if sc != nil {
			sc.modulate(buf, x, y)
		}
		if s.clip != nil {
			for i := range buf {
				if buf[i] == 0 {
					continue
				}
				buf[i] = mulCov(buf[i], s.clip.At(x+i, y))
			}
		}

		colors := c.colorBuf[:n]
		eval.spanColors(colors, x, y)
		if discard {
			return
		}
		c.surface.BlendSpan(x, y, colors, buf, op)
	})

	Logger().Debug("softvg: rasterized path",
		"polygons", len(polys), "spans", spans, "discarded", discard)
}

// renderClipBox computes the pixel rectangle rendering may touch and, for a
// scissor rotated relative to device space, a per-pixel coverage test.
func (c *Context) renderClipBox(polys [][]raster.Point, s *state) (raster.ClipBox, *scissorTest) {
	var box raster.ClipBox
	if c.fb != nil {
		box = raster.ClipBox{X1: c.fb.Width, Y1: c.fb.Height}
	} else {
		box = polyBounds(polys)
	}
	if !s.scissor.enabled {
		return box, nil
	}
	ex, ey := s.scissor.extent.X, s.scissor.extent.Y
	if ex <= 0 || ey <= 0 {
		return raster.ClipBox{}, nil
	}

	// Device-space bounds of the scissor rectangle.
	m := s.scissor.xform
	tx := ex*math.Abs(m.A) + ey*math.Abs(m.B)
	ty := ex*math.Abs(m.D) + ey*math.Abs(m.E)
	sbox := raster.ClipBox{
		X0: int(math.Floor(m.C - tx)),
		Y0: int(math.Floor(m.F - ty)),
		X1: int(math.Ceil(m.C + tx)),
		Y1: int(math.Ceil(m.F + ty)),
	}
	box = box.Intersect(sbox)

	if !m.HasRotation() {
		return box, nil
	}
	return box, &scissorTest{inv: m.Invert(), ex: ex, ey: ey}
}

// scissorTest rejects pixels outside a rotated scissor rectangle. The
// axis-aligned case is handled by the clip box alone and never reaches
// here.
type scissorTest struct {
	inv    Matrix
	ex, ey float64
}

func (t *scissorTest) modulate(cov []uint8, x, y int) {
	for i := range cov {
		if cov[i] == 0 {
			continue
		}
		q := t.inv.TransformPoint(Pt(float64(x+i)+0.5, float64(y)+0.5))
		if math.Abs(q.X) > t.ex || math.Abs(q.Y) > t.ey {
			cov[i] = 0
		}
	}
}

func polylinesToPolys(lines []flatten.Polyline) [][]raster.Point {
	polys := make([][]raster.Point, 0, len(lines))
	for _, pl := range lines {
		if len(pl.Pts) < 3 {
			continue
		}
		pts := make([]raster.Point, len(pl.Pts))
		for i, p := range pl.Pts {
			pts[i] = raster.Point{X: p.X, Y: p.Y}
		}
		polys = append(polys, pts)
	}
	return polys
}

func polyBounds(polys [][]raster.Point) raster.ClipBox {
	x0, y0 := math.MaxFloat64, math.MaxFloat64
	x1, y1 := -math.MaxFloat64, -math.MaxFloat64
	for _, poly := range polys {
		for _, p := range poly {
			x0 = math.Min(x0, p.X)
			y0 = math.Min(y0, p.Y)
			x1 = math.Max(x1, p.X)
			y1 = math.Max(y1, p.Y)
		}
	}
	if x0 > x1 {
		return raster.ClipBox{}
	}
	return raster.ClipBox{
		X0: int(math.Floor(x0)),
		Y0: int(math.Floor(y0)),
		X1: int(math.Ceil(x1)) + 1,
		Y1: int(math.Ceil(y1)) + 1,
	}
}

func rasterRule(r FillRule) raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

func mulCov(a, b uint8) uint8 {
	t := uint16(a)*uint16(b) + 128
	return uint8((t + t>>8) >> 8)
}
