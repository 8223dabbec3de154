package softvg

import (
	"sort"

	"github.com/chewxy/math32"
)

// ColorStop places a color at an offset along a gradient, with offset
// clamped to [0, 1].
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// Stop is shorthand for building a ColorStop.
func Stop(offset float64, c RGBA) ColorStop {
	return ColorStop{Offset: offset, Color: c}
}

// ExtendMode controls how gradients behave outside the [0, 1] offset range.
type ExtendMode uint8

const (
	// ExtendPad clamps to the edge stops.
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the gradient.
	ExtendRepeat
	// ExtendReflect tiles the gradient, mirroring every other repeat.
	ExtendReflect
)

// sortStops clamps offsets to [0, 1] and orders stops by offset. The input
// slice is not modified. Stops at equal offsets keep their relative order,
// which produces a hard color transition.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return nil
	}
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	for i := range out {
		out[i].Offset = clamp01(out[i].Offset)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}

func lastStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	last := stops[0]
	for _, s := range stops[1:] {
		if s.Offset >= last.Offset {
			last = s
		}
	}
	return last.Color
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ramp is a gradient's stop list resolved for fast per-pixel lookup.
// Interpolation happens in linear sRGB so that mid-gradient colors do not
// darken the way naive byte-space lerps do; alpha interpolates linearly.
type ramp struct {
	offsets []float32
	linear  [][4]float32 // linear-light r, g, b plus straight alpha
	extend  ExtendMode
}

func newRamp(stops []ColorStop, extend ExtendMode) *ramp {
	r := &ramp{
		offsets: make([]float32, len(stops)),
		linear:  make([][4]float32, len(stops)),
		extend:  extend,
	}
	for i, s := range stops {
		r.offsets[i] = float32(s.Offset)
		r.linear[i] = [4]float32{
			srgbToLinear(float32(s.Color.R)),
			srgbToLinear(float32(s.Color.G)),
			srgbToLinear(float32(s.Color.B)),
			float32(s.Color.A),
		}
	}
	return r
}

// At evaluates the ramp at offset t, applying the extend mode first.
func (r *ramp) At(t float32) RGBA {
	n := len(r.offsets)
	if n == 0 {
		return Transparent
	}
	t = r.wrap(t)
	if t <= r.offsets[0] {
		return linearToColor(r.linear[0])
	}
	if t >= r.offsets[n-1] {
		return linearToColor(r.linear[n-1])
	}
	// Stop counts are small; a linear scan beats binary search here.
	i := 1
	for i < n-1 && t > r.offsets[i] {
		i++
	}
	lo, hi := r.offsets[i-1], r.offsets[i]
	f := float32(0)
	if hi > lo {
		f = (t - lo) / (hi - lo)
	}
	a, b := r.linear[i-1], r.linear[i]
	return linearToColor([4]float32{
		a[0] + (b[0]-a[0])*f,
		a[1] + (b[1]-a[1])*f,
		a[2] + (b[2]-a[2])*f,
		a[3] + (b[3]-a[3])*f,
	})
}

func (r *ramp) wrap(t float32) float32 {
	switch r.extend {
	case ExtendRepeat:
		t -= math32.Floor(t)
	case ExtendReflect:
		t = math32.Abs(t)
		t = math32.Mod(t, 2)
		if t > 1 {
			t = 2 - t
		}
	default:
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

func linearToColor(c [4]float32) RGBA {
	return RGBA{
		R: float64(linearToSRGB(c[0])),
		G: float64(linearToSRGB(c[1])),
		B: float64(linearToSRGB(c[2])),
		A: float64(c[3]),
	}
}

// srgbToLinear applies the sRGB EOTF to a [0, 1] channel.
func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB applies the inverse sRGB EOTF to a [0, 1] channel.
func linearToSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math32.Pow(c, 1/2.4) - 0.055
}
