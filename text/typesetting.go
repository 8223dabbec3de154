package text

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// FromTypesetting converts a go-text/typesetting glyph outline to pixels at
// the given size. Typesetting outlines are in font units with y growing
// upward; the conversion scales by size/upem and flips y to the y-down
// device convention.
func FromTypesetting(face *font.Face, gid font.GID, size float64) *Outline {
	if face == nil {
		return nil
	}
	scale := float32(size) / float32(face.Upem())
	out := &Outline{
		Advance: face.HorizontalAdvance(gid) * scale,
	}

	data := face.GlyphData(gid)
	gl, ok := data.(font.GlyphOutline)
	if !ok {
		return out
	}

	out.Segments = make([]Segment, 0, len(gl.Segments))
	for _, seg := range gl.Segments {
		s := Segment{}
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			s.Op = OpMoveTo
		case opentype.SegmentOpLineTo:
			s.Op = OpLineTo
		case opentype.SegmentOpQuadTo:
			s.Op = OpQuadTo
		case opentype.SegmentOpCubeTo:
			s.Op = OpCubicTo
		default:
			continue
		}
		for i, p := range seg.Args {
			s.Points[i] = Point{X: p.X * scale, Y: -p.Y * scale}
		}
		out.Segments = append(out.Segments, s)
	}
	return out
}
