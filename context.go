package softvg

import (
	"math"

	"github.com/gogpu/softvg/internal/blend"
	"github.com/gogpu/softvg/internal/raster"
)

// Context is a stateful 2D drawing surface. It accumulates path commands
// under the current transform and rasterizes fills and strokes directly
// into a caller-supplied framebuffer.
//
// All methods are safe to call on a nil *Context: they become no-ops. A
// Context is not safe for concurrent use; independent Contexts share no
// state and may be used from separate goroutines.
type Context struct {
	opts contextOptions

	fb      *Framebuffer
	surface blend.Surface

	// states is never empty: index 0 is the base state Restore cannot pop.
	states []state
	path   path

	ras *raster.Rasterizer

	// colorBuf is reused across spans for per-pixel paint evaluation.
	colorBuf []blend.Color
	covBuf   []uint8

	closed bool
}

// New creates a drawing context with an implicit base state: identity
// transform, opaque black paints, stroke width 1, global alpha 1, no
// scissor, no clip. Bind a framebuffer before drawing; fills issued with no
// framebuffer bound run but discard their output.
func New(opts ...ContextOption) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.tolerance <= 0 {
		o.tolerance = defaultTolerance
	}
	c := &Context{
		opts:   o,
		states: make([]state, 1, 8),
		ras:    raster.NewRasterizer(),
	}
	c.states[0] = defaultState()
	return c, nil
}

// Close releases the context's scratch buffers. Using the context after
// Close is a safe no-op. Close is idempotent and nil-safe.
func (c *Context) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	c.fb = nil
	c.surface = blend.Surface{}
	c.states = nil
	c.path.reset()
	c.ras = nil
	c.colorBuf = nil
	c.covBuf = nil
	return nil
}

func (c *Context) ok() bool {
	return c != nil && !c.closed
}

func (c *Context) top() *state {
	return &c.states[len(c.states)-1]
}

// BindFramebuffer points subsequent drawing at fb. The pixel memory is
// borrowed, never copied; the caller keeps ownership and must keep it valid
// until the next rebind or Close. Passing nil unbinds.
func (c *Context) BindFramebuffer(fb *Framebuffer) error {
	if !c.ok() {
		if c != nil {
			return ErrClosed
		}
		return nil
	}
	if fb == nil {
		c.fb = nil
		c.surface = blend.Surface{}
		return nil
	}
	if err := fb.validate(); err != nil {
		return err
	}
	c.fb = fb
	c.surface = blend.Surface{
		Pix:    fb.Pix,
		Width:  fb.Width,
		Height: fb.Height,
		RShift: fb.RShift,
		GShift: fb.GShift,
		BShift: fb.BShift,
		AShift: fb.AShift,
	}
	Logger().Debug("softvg: framebuffer bound",
		"width", fb.Width, "height", fb.Height,
		"rshift", fb.RShift, "gshift", fb.GShift,
		"bshift", fb.BShift, "ashift", fb.AShift)
	return nil
}

// BindFramebufferRGBA binds pix with the standard little-endian RGBA8888
// layout: byte order R, G, B, A (shifts 0, 8, 16, 24).
func (c *Context) BindFramebufferRGBA(pix []byte, width, height int) error {
	return c.BindFramebuffer(&Framebuffer{
		Pix: pix, Width: width, Height: height,
		RShift: 0, GShift: 8, BShift: 16, AShift: 24,
	})
}

// Framebuffer returns the currently bound framebuffer, or nil when none is
// bound.
func (c *Context) Framebuffer() *Framebuffer {
	if !c.ok() {
		return nil
	}
	return c.fb
}

// Save pushes a copy of the current drawing state. Pair with Restore.
func (c *Context) Save() {
	if !c.ok() {
		return
	}
	c.states = append(c.states, *c.top())
}

// Restore pops to the previously saved state. Restoring past the base
// state is a safe no-op.
func (c *Context) Restore() {
	if !c.ok() {
		return
	}
	if len(c.states) == 1 {
		Logger().Warn("softvg: Restore without matching Save")
		return
	}
	c.states = c.states[:len(c.states)-1]
}

// SetFillPaint sets the paint used by Fill.
func (c *Context) SetFillPaint(p Paint) {
	if !c.ok() {
		return
	}
	c.top().fillPaint = p
}

// SetStrokePaint sets the paint used by Stroke.
func (c *Context) SetStrokePaint(p Paint) {
	if !c.ok() {
		return
	}
	c.top().strokePaint = p
}

// SetFillColor is shorthand for SetFillPaint(SolidPaint(col)).
func (c *Context) SetFillColor(col RGBA) { c.SetFillPaint(SolidPaint(col)) }

// SetStrokeColor is shorthand for SetStrokePaint(SolidPaint(col)).
func (c *Context) SetStrokeColor(col RGBA) { c.SetStrokePaint(SolidPaint(col)) }

// SetStrokeWidth sets the stroke width in local units; the baked transform's
// average scale is applied at stroke time. Non-positive or non-finite
// widths are ignored.
func (c *Context) SetStrokeWidth(w float64) {
	if !c.ok() || !(w > 0) || math.IsInf(w, 0) {
		return
	}
	c.top().strokeWidth = w
}

// SetLineCap sets the stroke endpoint style.
func (c *Context) SetLineCap(lc LineCap) {
	if !c.ok() {
		return
	}
	c.top().lineCap = lc
}

// SetLineJoin sets the stroke corner style.
func (c *Context) SetLineJoin(lj LineJoin) {
	if !c.ok() {
		return
	}
	c.top().lineJoin = lj
}

// SetMiterLimit sets the ratio of miter length to stroke width above which
// miter joins fall back to bevel.
func (c *Context) SetMiterLimit(limit float64) {
	if !c.ok() || !(limit > 0) {
		return
	}
	c.top().miterLimit = limit
}

// SetFillRule selects the fill rule for subsequent fills.
func (c *Context) SetFillRule(r FillRule) {
	if !c.ok() {
		return
	}
	c.top().fillRule = r
}

// SetGlobalAlpha sets a [0, 1] alpha multiplied into every subsequent fill
// and stroke.
func (c *Context) SetGlobalAlpha(a float64) {
	if !c.ok() || math.IsNaN(a) {
		return
	}
	c.top().alpha = clamp01(a)
}

// GlobalAlpha returns the current global alpha.
func (c *Context) GlobalAlpha() float64 {
	if !c.ok() {
		return 1
	}
	return c.top().alpha
}

// SetCompositeOperation selects how fills and strokes combine with existing
// framebuffer contents. The default is SourceOver.
func (c *Context) SetCompositeOperation(op CompositeOperation) {
	if !c.ok() {
		return
	}
	c.top().op = op
}

// Translate composes a translation onto the current transform. The new
// transform applies first: drawing at the local origin lands at (x, y) of
// the previous space.
func (c *Context) Translate(x, y float64) {
	c.Transform(Translate(x, y))
}

// Rotate composes a rotation (radians) onto the current transform.
func (c *Context) Rotate(angle float64) {
	c.Transform(Rotate(angle))
}

// Scale composes a scale onto the current transform.
func (c *Context) Scale(x, y float64) {
	c.Transform(Scale(x, y))
}

// Skew composes a skew onto the current transform, angles in radians along
// each axis.
func (c *Context) Skew(ax, ay float64) {
	c.Transform(SkewX(ax).Multiply(SkewY(ay)))
}

// Transform composes m onto the current transform; m applies first.
func (c *Context) Transform(m Matrix) {
	if !c.ok() {
		return
	}
	s := c.top()
	s.xform = s.xform.Multiply(m)
}

// ResetTransform replaces the current transform with the identity.
func (c *Context) ResetTransform() {
	if !c.ok() {
		return
	}
	c.top().xform = Identity()
}

// CurrentTransform returns the current transform.
func (c *Context) CurrentTransform() Matrix {
	if !c.ok() {
		return Identity()
	}
	return c.top().xform
}

// BeginPath clears the current path.
func (c *Context) BeginPath() {
	if !c.ok() {
		return
	}
	c.path.reset()
}

// MoveTo starts a new subpath at (x, y) in local coordinates. The current
// transform is baked into the point immediately; later transform changes do
// not move it. Non-finite coordinates drop the command.
func (c *Context) MoveTo(x, y float64) {
	if !c.ok() {
		return
	}
	p, ok := c.devicePoint(x, y)
	if !ok {
		return
	}
	c.path.moveTo(p)
}

// LineTo appends a line to (x, y). Non-finite coordinates drop the command.
func (c *Context) LineTo(x, y float64) {
	if !c.ok() {
		return
	}
	p, ok := c.devicePoint(x, y)
	if !ok {
		return
	}
	c.path.lineTo(p)
}

// QuadTo appends a quadratic Bezier curve through control point (cx, cy) to
// (x, y). Non-finite coordinates drop the command.
func (c *Context) QuadTo(cx, cy, x, y float64) {
	if !c.ok() {
		return
	}
	cp, ok1 := c.devicePoint(cx, cy)
	p, ok2 := c.devicePoint(x, y)
	if !ok1 || !ok2 {
		return
	}
	c.path.quadTo(cp, p)
}

// BezierTo appends a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y) to (x, y). Non-finite coordinates drop the command.
func (c *Context) BezierTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !c.ok() {
		return
	}
	p1, ok1 := c.devicePoint(c1x, c1y)
	p2, ok2 := c.devicePoint(c2x, c2y)
	p, ok3 := c.devicePoint(x, y)
	if !ok1 || !ok2 || !ok3 {
		return
	}
	c.path.cubicTo(p1, p2, p)
}

// ClosePath closes the current subpath with a line back to its start.
func (c *Context) ClosePath() {
	if !c.ok() {
		return
	}
	c.path.closePath()
}

// PathWinding sets the winding direction of the current subpath, making it
// solid (WindingCCW) or a hole (WindingCW) under the nonzero fill rule.
func (c *Context) PathWinding(w Winding) {
	if !c.ok() {
		return
	}
	c.path.setWinding(w)
}

// devicePoint bakes the current transform into a local point, rejecting
// non-finite input or output.
func (c *Context) devicePoint(x, y float64) (Point, bool) {
	if !Pt(x, y).IsFinite() {
		Logger().Warn("softvg: dropped path command with non-finite coordinates", "x", x, "y", y)
		return Point{}, false
	}
	p := c.top().xform.TransformPoint(Pt(x, y))
	if !p.IsFinite() {
		Logger().Warn("softvg: dropped path command, transform produced non-finite point")
		return Point{}, false
	}
	return p, true
}

// Scissor replaces the scissor with an axis-aligned rectangle given in
// local coordinates; under a rotated transform it scissors as a rotated
// rectangle in device space.
func (c *Context) Scissor(x, y, w, h float64) {
	if !c.ok() {
		return
	}
	w = math.Max(w, 0)
	h = math.Max(h, 0)
	s := c.top()
	s.scissor = scissorState{
		xform:   s.xform.Multiply(Translate(x+w/2, y+h/2)),
		extent:  Pt(w/2, h/2),
		enabled: true,
	}
}

// IntersectScissor narrows the scissor to the intersection of the current
// scissor with a rectangle in local coordinates. The effective scissor
// never grows. When the previous scissor is rotated relative to the current
// transform the intersection is conservative, using the previous scissor's
// axis-aligned extent in local space.
func (c *Context) IntersectScissor(x, y, w, h float64) {
	if !c.ok() {
		return
	}
	s := c.top()
	if !s.scissor.enabled {
		c.Scissor(x, y, w, h)
		return
	}

	// Previous scissor's extent rectangle mapped into the current local
	// space, then its axis-aligned bounds.
	local := s.xform.Invert().Multiply(s.scissor.xform)
	ex, ey := s.scissor.extent.X, s.scissor.extent.Y
	cx, cy := local.C, local.F
	tex := ex*math.Abs(local.A) + ey*math.Abs(local.B)
	tey := ex*math.Abs(local.D) + ey*math.Abs(local.E)

	ix0 := math.Max(cx-tex, x)
	iy0 := math.Max(cy-tey, y)
	ix1 := math.Min(cx+tex, x+math.Max(w, 0))
	iy1 := math.Min(cy+tey, y+math.Max(h, 0))
	c.Scissor(ix0, iy0, math.Max(ix1-ix0, 0), math.Max(iy1-iy0, 0))
}

// ResetScissor removes the scissor from the current state.
func (c *Context) ResetScissor() {
	if !c.ok() {
		return
	}
	c.top().scissor = scissorState{}
}
