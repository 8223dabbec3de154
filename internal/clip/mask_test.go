package clip

import "testing"

func TestNilMaskPassesEverything(t *testing.T) {
	var m *Mask
	if got := m.At(3, 3); got != 255 {
		t.Errorf("nil mask At = %d, want 255", got)
	}
}

func TestSetAndAt(t *testing.T) {
	m := NewMask(4, 4)
	if got := m.At(1, 1); got != 0 {
		t.Errorf("fresh mask At = %d, want 0", got)
	}
	m.Set(1, 1, 200)
	if got := m.At(1, 1); got != 200 {
		t.Errorf("At after Set = %d, want 200", got)
	}
	// Out of bounds is zero coverage, never a panic.
	m.Set(-1, 0, 255)
	m.Set(4, 0, 255)
	if got := m.At(-1, 0); got != 0 {
		t.Errorf("out-of-bounds At = %d, want 0", got)
	}
}

func TestAddRowSaturates(t *testing.T) {
	m := NewMask(4, 1)
	m.AddRow(0, 0, []uint8{100, 200, 255, 0})
	m.AddRow(0, 0, []uint8{100, 200, 255, 0})
	want := []uint8{200, 255, 255, 0}
	for x, w := range want {
		if got := m.At(x, 0); got != w {
			t.Errorf("pixel %d = %d, want %d", x, got, w)
		}
	}
}

func TestAddRowClips(t *testing.T) {
	m := NewMask(3, 2)
	// Row extends past both edges; only the overlap lands.
	m.AddRow(-1, 0, []uint8{10, 20, 30, 40, 50})
	if got := m.At(0, 0); got != 20 {
		t.Errorf("pixel 0 = %d, want 20", got)
	}
	if got := m.At(2, 0); got != 40 {
		t.Errorf("pixel 2 = %d, want 40", got)
	}
	m.AddRow(0, 5, []uint8{1, 2, 3}) // row out of range, ignored
}

func TestIntersectMultiplies(t *testing.T) {
	a := NewMask(2, 1)
	a.Set(0, 0, 255)
	a.Set(1, 0, 128)
	b := NewMask(2, 1)
	b.Set(0, 0, 128)
	b.Set(1, 0, 255)

	a.Intersect(b)
	if got := a.At(0, 0); got != 128 {
		t.Errorf("255*128 = %d, want 128", got)
	}
	if got := a.At(1, 0); got < 127 || got > 129 {
		t.Errorf("128*255 = %d, want about 128", got)
	}

	// Intersection never increases coverage.
	c := NewMask(2, 1)
	a.Intersect(c)
	if got := a.At(0, 0); got != 0 {
		t.Errorf("intersect with empty = %d, want 0", got)
	}
}

func TestBounds(t *testing.T) {
	m := NewMask(8, 8)
	x0, y0, x1, y1 := m.Bounds()
	if x0 != x1 || y0 != y1 {
		t.Errorf("empty mask bounds = %d %d %d %d, want empty", x0, y0, x1, y1)
	}

	m.Set(2, 3, 1)
	m.Set(5, 6, 255)
	x0, y0, x1, y1 = m.Bounds()
	if x0 != 2 || y0 != 3 || x1 != 6 || y1 != 7 {
		t.Errorf("bounds = %d %d %d %d, want 2 3 6 7", x0, y0, x1, y1)
	}
}

func TestClone(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(0, 0, 77)
	c := m.Clone()
	c.Set(0, 0, 1)
	if got := m.At(0, 0); got != 77 {
		t.Errorf("mutating clone changed original: %d", got)
	}
}
