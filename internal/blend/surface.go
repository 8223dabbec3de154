// Package blend composites coverage spans into a caller-owned pixel buffer.
//
// The destination pixel layout is described entirely by per-channel bit
// shifts within a 32-bit little-endian pixel word; the shifts are the whole
// abstraction boundary for pixel format, so one compositor serves RGBA8888,
// BGRA8888, ARGB8888 or any other byte order.
package blend

import "encoding/binary"

// Color is a straight-alpha 8-bit color.
type Color struct {
	R, G, B, A uint8
}

// Surface is a non-owning view of the destination buffer. Pix holds
// Width*Height 32-bit little-endian pixel words.
type Surface struct {
	Pix    []byte
	Width  int
	Height int

	RShift, GShift, BShift, AShift uint
}

// Pack builds a pixel word from 8-bit channels using the surface's shifts.
func (s *Surface) Pack(r, g, b, a uint8) uint32 {
	return uint32(r)<<s.RShift | uint32(g)<<s.GShift |
		uint32(b)<<s.BShift | uint32(a)<<s.AShift
}

// Unpack splits a pixel word into 8-bit channels.
func (s *Surface) Unpack(word uint32) (r, g, b, a uint8) {
	return uint8(word >> s.RShift), uint8(word >> s.GShift),
		uint8(word >> s.BShift), uint8(word >> s.AShift)
}

// ReadPixel returns the channels of pixel (x, y). Out-of-bounds reads
// return zero.
func (s *Surface) ReadPixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, 0, 0, 0
	}
	off := (y*s.Width + x) * 4
	return s.Unpack(binary.LittleEndian.Uint32(s.Pix[off:]))
}

// WritePixel stores the channels at pixel (x, y). Out-of-bounds writes are
// rejected per pixel; each pixel word is written in a single store.
func (s *Surface) WritePixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	off := (y*s.Width + x) * 4
	binary.LittleEndian.PutUint32(s.Pix[off:], s.Pack(r, g, b, a))
}

// BlendPixel composites c over pixel (x, y) with the given coverage-derived
// alpha. For OpSourceOver (the default) this is a straight-alpha lerp:
//
//	dst = dst + (src - dst) * cov/255
//
// applied to every channel, so a fully opaque source with full coverage
// replaces the destination exactly and zero coverage leaves it untouched.
// Other operators run premultiplied Porter-Duff.
func (s *Surface) BlendPixel(x, y int, c Color, cov uint8, op Op) {
	if cov == 0 {
		return
	}
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	off := (y*s.Width + x) * 4
	word := binary.LittleEndian.Uint32(s.Pix[off:])
	dr, dg, db, da := s.Unpack(word)

	var r, g, b, a uint8
	if op == OpSourceOver {
		// Effective source alpha folds coverage into the paint alpha.
		ea := mulDiv255Exact(c.A, cov)
		r = lerp255(dr, c.R, ea)
		g = lerp255(dg, c.G, ea)
		b = lerp255(db, c.B, ea)
		a = lerp255(da, 255, ea)
	} else {
		// Premultiply the source by its alpha, treat the destination
		// bytes as premultiplied, apply the operator, then lerp the
		// result in by coverage so partially covered pixels keep a
		// share of the old value even under unbounded operators.
		sr := mulDiv255Exact(c.R, c.A)
		sg := mulDiv255Exact(c.G, c.A)
		sb := mulDiv255Exact(c.B, c.A)
		f := opFunc(op)
		rr, rg, rb, ra := f(sr, sg, sb, c.A, dr, dg, db, da)
		r = lerp255(dr, rr, cov)
		g = lerp255(dg, rg, cov)
		b = lerp255(db, rb, cov)
		a = lerp255(da, ra, cov)
	}

	binary.LittleEndian.PutUint32(s.Pix[off:], s.Pack(r, g, b, a))
}

// BlendSpan composites a run of per-pixel colors over the row starting at
// (x, y). len(src) and len(cov) must match.
func (s *Surface) BlendSpan(x, y int, src []Color, cov []uint8, op Op) {
	for i := range src {
		s.BlendPixel(x+i, y, src[i], cov[i], op)
	}
}

// BlendSolidSpan composites a single color over the row starting at (x, y)
// with per-pixel coverage.
func (s *Surface) BlendSolidSpan(x, y int, c Color, cov []uint8, op Op) {
	for i, a := range cov {
		s.BlendPixel(x+i, y, c, a, op)
	}
}
