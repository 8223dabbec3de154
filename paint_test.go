package softvg

import (
	"math"
	"testing"
)

func TestSolidPaint(t *testing.T) {
	p := SolidPaint(RGB(1, 0, 0))
	if p.Kind() != PaintSolid {
		t.Errorf("kind = %v", p.Kind())
	}
	e := newPaintEval(p, Identity(), 1)
	c := e.At(0, 0)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("solid sample = %+v", c)
	}
}

func TestLinearGradientEval(t *testing.T) {
	p := LinearGradient(0, 0, 10, 0,
		Stop(0, Black),
		Stop(1, White),
	)
	e := newPaintEval(p, Identity(), 1)

	// Pixels sample at their centers; outside the axis the pad extend
	// clamps to the exact stop colors.
	start := e.At(-1, 5)
	end := e.At(10, 5)
	if start.R != 0 {
		t.Errorf("before gradient start R = %d, want 0", start.R)
	}
	if end.R != 255 {
		t.Errorf("past gradient end R = %d, want 255", end.R)
	}
	// Monotone along the axis.
	prev := uint8(0)
	for x := 0; x < 10; x++ {
		c := e.At(x, 5)
		if c.R < prev {
			t.Fatalf("gradient not monotone at pixel %d: %d < %d", x, c.R, prev)
		}
		prev = c.R
	}
	// Constant across the axis.
	if a, b := e.At(5, 0), e.At(5, 9); a != b {
		t.Errorf("gradient varies perpendicular to axis: %+v vs %+v", a, b)
	}
}

// A zero-length gradient axis degenerates to a solid fill of the last
// stop's color.
func TestDegenerateGradientAxis(t *testing.T) {
	p := LinearGradient(5, 5, 5, 5,
		Stop(0, Black),
		Stop(1, RGB(0, 0, 1)),
	)
	e := newPaintEval(p, Identity(), 1)
	for _, xy := range [][2]int{{0, 0}, {5, 5}, {9, 2}} {
		c := e.At(xy[0], xy[1])
		if c.B != 255 || c.R != 0 {
			t.Errorf("degenerate gradient at %v = %+v, want solid blue", xy, c)
		}
	}
}

func TestRadialGradientEval(t *testing.T) {
	p := RadialGradient(8, 8, 0, 8,
		Stop(0, White),
		Stop(1, Black),
	)
	e := newPaintEval(p, Identity(), 1)

	center := e.At(8, 8)
	if center.R < 225 {
		t.Errorf("center R = %d, want near 255", center.R)
	}
	// Past the outer radius the pad extend clamps to the last stop.
	rim := e.At(17, 8)
	if rim.R != 0 {
		t.Errorf("rim R = %d, want 0", rim.R)
	}
	if e.At(0, 8) != e.At(8, 0) {
		t.Error("radial gradient not symmetric")
	}

	// Zero radius span degenerates to the last stop.
	d := newPaintEval(RadialGradient(8, 8, 4, 4, Stop(0, White), Stop(1, Black)), Identity(), 1)
	if c := d.At(8, 8); c.R != 0 {
		t.Errorf("degenerate radial = %+v, want last stop", c)
	}
}

func TestBoxGradientEval(t *testing.T) {
	p := BoxGradient(4, 4, 8, 8, 2, 4,
		Stop(0, White),
		Stop(1, Black),
	)
	e := newPaintEval(p, Identity(), 1)

	inside := e.At(8, 8)
	farOutside := e.At(31, 31)
	if inside.R <= farOutside.R {
		t.Errorf("box gradient inside %d not brighter than outside %d", inside.R, farOutside.R)
	}
}

// Gradient geometry is interpreted in the space current at fill time: under
// a translation the gradient moves with the drawing.
func TestGradientFollowsTransform(t *testing.T) {
	p := LinearGradient(0, 0, 10, 0, Stop(0, Black), Stop(1, White))

	plain := newPaintEval(p, Identity(), 1)
	moved := newPaintEval(p, Translate(5, 0), 1)

	// Device pixel 7 under the translation maps to paint-space 2.
	if a, b := moved.At(7, 0), plain.At(2, 0); a != b {
		t.Errorf("translated gradient sample %+v, want %+v", a, b)
	}
}

func TestPaintAlphaAndGlobalAlphaMultiply(t *testing.T) {
	p := SolidPaint(RGBAf(1, 1, 1, 0.5))
	e := newPaintEval(p, Identity(), 0.5)
	c := e.At(0, 0)
	want := byteChannel(0.25)
	if math.Abs(float64(c.A)-float64(want)) > 1 {
		t.Errorf("alpha = %d, want about %d", c.A, want)
	}
}

func TestImagePatternEval(t *testing.T) {
	// 2x2 image: red, green / blue, white.
	pix := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	img, err := NewImage(pix, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	img.Filter = FilterNearest

	p := ImagePattern(img, 0, 0, 0, 1)
	e := newPaintEval(p, Identity(), 1)

	c := e.At(0, 0)
	if c.R != 255 || c.G != 0 {
		t.Errorf("texel (0,0) = %+v, want red", c)
	}
	c = e.At(1, 1)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("texel (1,1) = %+v, want white", c)
	}

	// Repeat wrap: pixel (2,0) samples texel (0,0) again.
	c = e.At(2, 0)
	if c.R != 255 || c.G != 0 {
		t.Errorf("wrapped texel = %+v, want red", c)
	}
}

func TestImagePatternNilImage(t *testing.T) {
	p := ImagePattern(nil, 0, 0, 0, 1)
	e := newPaintEval(p, Identity(), 1)
	if c := e.At(0, 0); c.A != 0 {
		t.Errorf("nil image pattern = %+v, want transparent", c)
	}
}

func TestWithExtendAndTransform(t *testing.T) {
	p := LinearGradient(0, 0, 4, 0, Stop(0, Black), Stop(1, White)).
		WithExtend(ExtendRepeat).
		WithTransform(Translate(1, 0)).
		WithAlpha(0.5)
	if p.extend != ExtendRepeat {
		t.Error("extend not set")
	}
	if p.alpha != 0.5 {
		t.Error("alpha not set")
	}
	if p.xform.C != 1 {
		t.Error("transform not set")
	}
}
