package stroke

import (
	"math"
	"testing"
)

func bounds(rings [][]Point) (x0, y0, x1, y1 float64) {
	x0, y0 = math.MaxFloat64, math.MaxFloat64
	x1, y1 = -math.MaxFloat64, -math.MaxFloat64
	for _, ring := range rings {
		for _, p := range ring {
			x0 = math.Min(x0, p.X)
			y0 = math.Min(y0, p.Y)
			x1 = math.Max(x1, p.X)
			y1 = math.Max(y1, p.Y)
		}
	}
	return
}

func TestHorizontalLineButtCap(t *testing.T) {
	lines := []Polyline{{Pts: []Point{{2, 5}, {8, 5}}}}
	rings := Expand(lines, Options{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 10})
	if len(rings) != 1 {
		t.Fatalf("got %d rings, want 1", len(rings))
	}
	x0, y0, x1, y1 := bounds(rings)
	const eps = 1e-9
	if math.Abs(x0-2) > eps || math.Abs(x1-8) > eps {
		t.Errorf("butt cap x bounds [%f, %f], want [2, 8]", x0, x1)
	}
	if math.Abs(y0-4) > eps || math.Abs(y1-6) > eps {
		t.Errorf("stroke y bounds [%f, %f], want [4, 6]", y0, y1)
	}
}

func TestSquareCapExtends(t *testing.T) {
	lines := []Polyline{{Pts: []Point{{2, 5}, {8, 5}}}}
	rings := Expand(lines, Options{Width: 2, Cap: CapSquare, MiterLimit: 10})
	x0, _, x1, _ := bounds(rings)
	const eps = 1e-9
	if math.Abs(x0-1) > eps || math.Abs(x1-9) > eps {
		t.Errorf("square cap x bounds [%f, %f], want [1, 9]", x0, x1)
	}
}

func TestRoundCapExtends(t *testing.T) {
	lines := []Polyline{{Pts: []Point{{2, 5}, {8, 5}}}}
	rings := Expand(lines, Options{Width: 2, Cap: CapRound, MiterLimit: 10, Tolerance: 0.05})
	x0, _, x1, _ := bounds(rings)
	// The cap arc reaches half a width past each endpoint.
	if x0 > 1.05 || x0 < 0.95 {
		t.Errorf("round cap start bound %f, want about 1", x0)
	}
	if x1 < 8.95 || x1 > 9.05 {
		t.Errorf("round cap end bound %f, want about 9", x1)
	}
}

func TestClosedPolylineTwoRings(t *testing.T) {
	lines := []Polyline{{
		Pts:    []Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}},
		Closed: true,
	}}
	rings := Expand(lines, Options{Width: 2, Join: JoinMiter, MiterLimit: 10})
	if len(rings) != 2 {
		t.Fatalf("closed stroke got %d rings, want outer and inner", len(rings))
	}
	// Miter joins reach the outer corners exactly.
	x0, y0, x1, y1 := bounds(rings[:1])
	const eps = 1e-9
	if math.Abs(x0-1) > eps || math.Abs(y0-1) > eps || math.Abs(x1-9) > eps || math.Abs(y1-9) > eps {
		t.Errorf("outer ring bounds [%f %f %f %f], want [1 1 9 9]", x0, y0, x1, y1)
	}
}

func TestMiterLimitFallsBackToBevel(t *testing.T) {
	// A very sharp V: the miter would extend far beyond the join point.
	lines := []Polyline{{Pts: []Point{{0, 0}, {10, 1}, {0, 2}}}}

	sharp := Expand(lines, Options{Width: 2, Join: JoinMiter, MiterLimit: 1.5})
	_, _, x1Bevel, _ := bounds(sharp)

	loose := Expand(lines, Options{Width: 2, Join: JoinMiter, MiterLimit: 100})
	_, _, x1Miter, _ := bounds(loose)

	if x1Miter <= x1Bevel {
		t.Errorf("miter tip %f not beyond bevel %f", x1Miter, x1Bevel)
	}
	// Beveled join stays within roughly a half-width of the vertex.
	if x1Bevel > 11.1 {
		t.Errorf("bevel fallback reaches %f, miter limit not applied", x1Bevel)
	}
}

func TestDegenerateInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []Polyline
		opt   Options
	}{
		{"zero width", []Polyline{{Pts: []Point{{0, 0}, {5, 5}}}}, Options{Width: 0}},
		{"single point", []Polyline{{Pts: []Point{{3, 3}}}}, Options{Width: 2}},
		{"coincident points", []Polyline{{Pts: []Point{{3, 3}, {3, 3}, {3, 3}}}}, Options{Width: 2}},
		{"empty", nil, Options{Width: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rings := Expand(tt.lines, tt.opt); len(rings) != 0 {
				t.Errorf("got %d rings, want none", len(rings))
			}
		})
	}
}

func TestDuplicatePointsSkipped(t *testing.T) {
	lines := []Polyline{{Pts: []Point{{2, 5}, {2, 5}, {8, 5}, {8, 5}}}}
	rings := Expand(lines, Options{Width: 2, MiterLimit: 10})
	if len(rings) != 1 {
		t.Fatalf("got %d rings, want 1", len(rings))
	}
	x0, _, x1, _ := bounds(rings)
	const eps = 1e-9
	if math.Abs(x0-2) > eps || math.Abs(x1-8) > eps {
		t.Errorf("x bounds [%f, %f], want [2, 8]", x0, x1)
	}
}
