package softvg

import (
	"github.com/gogpu/softvg/internal/blend"
	"github.com/gogpu/softvg/internal/clip"
	"github.com/gogpu/softvg/internal/stroke"
)

// LineCap specifies the shape of stroke endpoints.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape of stroke corners.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// CompositeOperation selects how source pixels combine with the
// destination.
type CompositeOperation uint8

const (
	// SourceOver draws on top of the destination. The default.
	SourceOver CompositeOperation = iota
	Clear
	Source
	Destination
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	Xor
	Plus
)

func (op CompositeOperation) blendOp() blend.Op {
	if op > Plus {
		return blend.OpSourceOver
	}
	return blend.Op(op)
}

// scissorState is an axis-aligned rectangle in some captured coordinate
// space: xform maps the unit square centered at the origin, scaled by
// extent, into device space.
type scissorState struct {
	xform   Matrix
	extent  Point // half extents
	enabled bool
}

// state is one entry of the save/restore stack.
type state struct {
	xform Matrix

	fillPaint   Paint
	strokePaint Paint

	strokeWidth float64
	lineCap     LineCap
	lineJoin    LineJoin
	miterLimit  float64

	fillRule FillRule
	alpha    float64
	op       CompositeOperation

	scissor scissorState
	clip    *clip.Mask // nil when unclipped; shared until replaced
}

func defaultState() state {
	return state{
		xform:       Identity(),
		fillPaint:   SolidPaint(Black),
		strokePaint: SolidPaint(Black),
		strokeWidth: 1,
		miterLimit:  10,
		alpha:       1,
	}
}

func (s *state) strokeOptions(tol float64) stroke.Options {
	opt := stroke.Options{
		Width:      s.strokeWidth * s.xform.ScaleFactor(),
		MiterLimit: s.miterLimit,
		Tolerance:  tol,
	}
	switch s.lineCap {
	case LineCapRound:
		opt.Cap = stroke.CapRound
	case LineCapSquare:
		opt.Cap = stroke.CapSquare
	}
	switch s.lineJoin {
	case LineJoinRound:
		opt.Join = stroke.JoinRound
	case LineJoinBevel:
		opt.Join = stroke.JoinBevel
	}
	return opt
}
