// Package text adapts pre-shaped glyph outlines for filling through a
// drawing context. Shaping, layout and font file parsing stay with the
// caller's font stack; this package only converts its outline formats into
// a neutral path representation.
package text

// Point is a point in a glyph outline, in pixels, y growing downward.
type Point struct {
	X, Y float32
}

// Op is the type of path operation in an outline segment.
type Op uint8

const (
	// OpMoveTo moves to a new point without drawing.
	OpMoveTo Op = iota

	// OpLineTo draws a line to the target point.
	OpLineTo

	// OpQuadTo draws a quadratic bezier curve.
	OpQuadTo

	// OpCubicTo draws a cubic bezier curve.
	OpCubicTo
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment is one path operation of a glyph outline.
type Segment struct {
	// Op is the segment operation type.
	Op Op

	// Points contains the control and end points for this segment.
	//   - MoveTo: Points[0] is the target point
	//   - LineTo: Points[0] is the target point
	//   - QuadTo: Points[0] is control, Points[1] is target
	//   - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]Point
}

// Outline is the vector outline of one glyph, scaled to pixels with the
// baseline at y=0 and y growing downward. Coordinates are relative to the
// glyph origin; the drawing context adds the pen position.
type Outline struct {
	Segments []Segment

	// Advance is the horizontal pen advance, in pixels.
	Advance float32
}

// IsEmpty reports whether the outline has no segments, as for whitespace
// glyphs.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Offset returns a copy of the outline with dx, dy added to every point.
func (o *Outline) Offset(dx, dy float32) *Outline {
	if o == nil {
		return nil
	}
	out := &Outline{
		Segments: make([]Segment, len(o.Segments)),
		Advance:  o.Advance,
	}
	for i, seg := range o.Segments {
		out.Segments[i] = Segment{
			Op: seg.Op,
			Points: [3]Point{
				{X: seg.Points[0].X + dx, Y: seg.Points[0].Y + dy},
				{X: seg.Points[1].X + dx, Y: seg.Points[1].Y + dy},
				{X: seg.Points[2].X + dx, Y: seg.Points[2].Y + dy},
			},
		}
	}
	return out
}
