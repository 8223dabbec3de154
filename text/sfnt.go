package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTExtractor extracts glyph outlines from x/image sfnt fonts. The
// internal buffer is reused across calls; an extractor is not safe for
// concurrent use.
type SFNTExtractor struct {
	buffer sfnt.Buffer
}

// NewSFNTExtractor creates an extractor.
func NewSFNTExtractor() *SFNTExtractor {
	return &SFNTExtractor{}
}

// Extract loads a glyph's outline at the given size in pixels. sfnt already
// delivers y-down coordinates scaled to the requested ppem, so segments
// convert directly. A glyph without an outline (such as a space) returns an
// empty outline carrying only its advance.
func (e *SFNTExtractor) Extract(f *sfnt.Font, gid sfnt.GlyphIndex, size float64) (*Outline, error) {
	ppem := fixed.Int26_6(size * 64)

	segments, err := f.LoadGlyph(&e.buffer, gid, ppem, nil)
	if err != nil {
		return nil, err
	}

	out := &Outline{}
	if adv, err := f.GlyphAdvance(&e.buffer, gid, ppem, 0); err == nil {
		out.Advance = float32(adv) / 64
	}
	if len(segments) == 0 {
		return out, nil
	}

	out.Segments = make([]Segment, 0, len(segments))
	for _, seg := range segments {
		s := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = OpMoveTo
			s.Points[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			s.Op = OpLineTo
			s.Points[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			s.Op = OpQuadTo
			s.Points[0] = fixedPoint(seg.Args[0])
			s.Points[1] = fixedPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			s.Op = OpCubicTo
			s.Points[0] = fixedPoint(seg.Args[0])
			s.Points[1] = fixedPoint(seg.Args[1])
			s.Points[2] = fixedPoint(seg.Args[2])
		default:
			continue
		}
		out.Segments = append(out.Segments, s)
	}
	return out, nil
}

func fixedPoint(p fixed.Point26_6) Point {
	return Point{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}
