// Package raster converts closed polygons into per-scanline coverage spans.
//
// Coverage is accumulated per pixel column from exact horizontal span
// fractions at a small number of sub-scanlines per pixel row, following the
// supersampled-coverage design of tiny-skia's path_aa (Android/Skia
// heritage): each sub-scanline contributes up to 64 alpha, four sub-scanlines
// saturate a pixel at 256, which is folded to 255 on output.
package raster

import (
	"math"
	"sort"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Sub-scanline sampling: 4 rows per pixel, 64 alpha per row.
const (
	subsamples   = 4
	subsampleMax = 256 / subsamples
)

// ClipBox is an integer pixel rectangle; x1/y1 are exclusive.
type ClipBox struct {
	X0, Y0, X1, Y1 int
}

// IsEmpty reports whether the box contains no pixels.
func (c ClipBox) IsEmpty() bool {
	return c.X0 >= c.X1 || c.Y0 >= c.Y1
}

// Intersect returns the intersection of two clip boxes.
func (c ClipBox) Intersect(o ClipBox) ClipBox {
	r := ClipBox{
		X0: max(c.X0, o.X0),
		Y0: max(c.Y0, o.Y0),
		X1: min(c.X1, o.X1),
		Y1: min(c.Y1, o.Y1),
	}
	if r.IsEmpty() {
		return ClipBox{}
	}
	return r
}

// SpanFunc receives one scanline's worth of coverage. cov[i] is the coverage
// of pixel (x+i, y) in 0..255. The slice is only valid during the call.
type SpanFunc func(y, x int, cov []uint8)

// Rasterizer scan-converts polygon sets into coverage spans.
// Scratch buffers are reused across fills; a Rasterizer is not safe for
// concurrent use.
type Rasterizer struct {
	edges     []Edge
	crossings []crossing
	acc       []uint16
	cov       []uint8
	snap      bool
}

// NewRasterizer creates a rasterizer with empty scratch buffers.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		edges:     make([]Edge, 0, 64),
		crossings: make([]crossing, 0, 32),
	}
}

// CatchOverflow converts accumulated coverage 0-256 to 0-255.
func CatchOverflow(alpha uint16) uint8 {
	if alpha > 256 {
		alpha = 256
	}
	// (alpha - (alpha >> 8)) maps 256 -> 255
	return uint8(alpha - (alpha >> 8))
}

// Fill scan-converts the polygons and reports coverage spans through span.
// Each polygon is treated as closed (an implicit edge joins last to first
// point). Coverage outside clip is never reported. When antialias is false a
// single center sample per pixel row yields hard 0/255 coverage.
func (r *Rasterizer) Fill(polys [][]Point, rule FillRule, clip ClipBox, antialias bool, span SpanFunc) {
	if clip.IsEmpty() || span == nil {
		return
	}
	r.snap = !antialias

	r.edges = r.edges[:0]
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, poly := range polys {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := poly[i]
			p1 := poly[(i+1)%n]
			if p0.Y == p1.Y {
				continue
			}
			e := NewEdge(p0, p1)
			r.edges = append(r.edges, e)
			yMin = math.Min(yMin, e.y0)
			yMax = math.Max(yMax, e.y1)
		}
	}
	if len(r.edges) == 0 {
		return
	}

	y0 := max(int(math.Floor(yMin)), clip.Y0)
	y1 := min(int(math.Ceil(yMax)), clip.Y1)
	if y0 >= y1 {
		return
	}

	width := clip.X1 - clip.X0
	if cap(r.acc) < width {
		r.acc = make([]uint16, width)
		r.cov = make([]uint8, width)
	}
	r.acc = r.acc[:width]
	r.cov = r.cov[:width]

	for y := y0; y < y1; y++ {
		clear(r.acc)

		if antialias {
			for s := 0; s < subsamples; s++ {
				sy := float64(y) + (float64(s)+0.5)/subsamples
				r.accumulateScanline(sy, rule, clip, subsampleMax)
			}
		} else {
			r.accumulateScanline(float64(y)+0.5, rule, clip, 256)
		}

		r.emit(y, clip, span)
	}
}

// accumulateScanline adds one sub-scanline's coverage into the accumulator.
// weight is the alpha contribution of a fully covered column.
func (r *Rasterizer) accumulateScanline(sy float64, rule FillRule, clip ClipBox, weight uint16) {
	r.crossings = r.crossings[:0]
	for i := range r.edges {
		e := &r.edges[i]
		if e.y0 <= sy && sy < e.y1 {
			r.crossings = append(r.crossings, crossing{x: e.XAtY(sy), dir: e.dir})
		}
	}
	if len(r.crossings) < 2 {
		return
	}

	sort.Slice(r.crossings, func(i, j int) bool {
		return r.crossings[i].x < r.crossings[j].x
	})

	switch rule {
	case FillRuleNonZero:
		winding := 0
		var spanStart float64
		for _, cr := range r.crossings {
			if winding == 0 {
				spanStart = cr.x
			}
			winding += cr.dir
			if winding == 0 {
				r.accumulateSpan(spanStart, cr.x, clip, weight)
			}
		}
	case FillRuleEvenOdd:
		for i := 0; i+1 < len(r.crossings); i += 2 {
			r.accumulateSpan(r.crossings[i].x, r.crossings[i+1].x, clip, weight)
		}
	}
}

// accumulateSpan adds coverage for the horizontal interval [xa, xb) using
// exact fractional column coverage.
func (r *Rasterizer) accumulateSpan(xa, xb float64, clip ClipBox, weight uint16) {
	if xa > xb {
		xa, xb = xb, xa
	}
	if r.snap {
		// Without antialiasing a pixel is covered iff the span contains
		// its center; rounding the endpoints keeps coverage at 0 or full.
		xa = math.Floor(xa + 0.5)
		xb = math.Floor(xb + 0.5)
	}
	xa = math.Max(xa, float64(clip.X0))
	xb = math.Min(xb, float64(clip.X1))
	if xa >= xb {
		return
	}

	w := float64(weight)
	i0 := int(math.Floor(xa))
	i1 := int(math.Floor(xb))
	if i1 >= clip.X1 {
		i1 = clip.X1 - 1
	}

	if i0 == i1 {
		r.acc[i0-clip.X0] += uint16((xb - xa) * w)
		return
	}

	r.acc[i0-clip.X0] += uint16((float64(i0+1) - xa) * w)
	for i := i0 + 1; i < i1; i++ {
		r.acc[i-clip.X0] += weight
	}
	r.acc[i1-clip.X0] += uint16((xb - float64(i1)) * w)
}

// emit folds the accumulator to 0-255 coverage and reports the non-zero
// extent of the row.
func (r *Rasterizer) emit(y int, clip ClipBox, span SpanFunc) {
	first, last := -1, -1
	for i, a := range r.acc {
		// Interior zero columns must be written too: the reported span
		// covers [first, last] and holes in it would otherwise carry the
		// previous row's coverage.
		r.cov[i] = CatchOverflow(a)
		if a == 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return
	}
	span(y, clip.X0+first, r.cov[first:last+1])
}
