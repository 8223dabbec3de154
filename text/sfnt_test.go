package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func loadTestFont(t *testing.T) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parse goregular: %v", err)
	}
	return f
}

func TestExtractLetterOutline(t *testing.T) {
	f := loadTestFont(t)
	e := NewSFNTExtractor()

	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, 'o')
	if err != nil || gid == 0 {
		t.Fatalf("glyph index for 'o': %v (gid %d)", err, gid)
	}

	const size = 32.0
	o, err := e.Extract(f, gid, size)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if o.IsEmpty() {
		t.Fatal("letter 'o' extracted with no segments")
	}
	if o.Segments[0].Op != OpMoveTo {
		t.Errorf("first segment op = %v, want MoveTo", o.Segments[0].Op)
	}
	if o.Advance <= 0 || o.Advance > size {
		t.Errorf("advance = %f, want within (0, %f]", o.Advance, size)
	}

	// sfnt delivers y-down baseline-relative coordinates: a lowercase
	// letter's ink sits above the baseline, at negative y.
	minY, maxY := float32(1e10), float32(-1e10)
	for _, seg := range o.Segments {
		for i := 0; i < segPoints(seg.Op); i++ {
			y := seg.Points[i].Y
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if minY >= 0 {
		t.Errorf("outline minY = %f, want ink above the baseline", minY)
	}
	if maxY > size/2 {
		t.Errorf("outline maxY = %f, unexpectedly far below baseline", maxY)
	}
}

func TestExtractSpaceGlyph(t *testing.T) {
	f := loadTestFont(t)
	e := NewSFNTExtractor()

	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, ' ')
	if err != nil {
		t.Fatalf("glyph index: %v", err)
	}
	o, err := e.Extract(f, gid, 16)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !o.IsEmpty() {
		t.Error("space glyph has segments")
	}
	if o.Advance <= 0 {
		t.Errorf("space advance = %f, want positive", o.Advance)
	}
}

func TestFixedPointConversion(t *testing.T) {
	p := fixedPoint(fixed.Point26_6{X: 64, Y: -128})
	if p != (Point{1, -2}) {
		t.Errorf("fixedPoint = %+v, want {1 -2}", p)
	}
}

func segPoints(op Op) int {
	switch op {
	case OpQuadTo:
		return 2
	case OpCubicTo:
		return 3
	default:
		return 1
	}
}
