package text

import (
	"bytes"
	"testing"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTypesettingFace(t *testing.T) *font.Face {
	t.Helper()
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("parse goregular: %v", err)
	}
	return face
}

func TestFromTypesettingLetterOutline(t *testing.T) {
	face := loadTypesettingFace(t)
	gid, ok := face.NominalGlyph('o')
	if !ok {
		t.Fatal("no glyph for 'o'")
	}

	const size = 32.0
	o := FromTypesetting(face, gid, size)
	if o == nil {
		t.Fatal("FromTypesetting returned nil for a valid face")
	}
	if o.IsEmpty() {
		t.Fatal("letter 'o' converted with no segments")
	}
	if o.Segments[0].Op != OpMoveTo {
		t.Errorf("first segment op = %v, want MoveTo", o.Segments[0].Op)
	}
	if o.Advance <= 0 || o.Advance > size {
		t.Errorf("advance = %f, want within (0, %f]", o.Advance, size)
	}

	// Typesetting outlines are y-up in font units; the converter flips
	// them, so a lowercase letter's ink lands at negative y and stays
	// within the em square scaled to size.
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

func TestFromTypesettingSpaceGlyph(t *testing.T) {
	face := loadTypesettingFace(t)
	gid, ok := face.NominalGlyph(' ')
	if !ok {
		t.Fatal("no glyph for space")
	}
	o := FromTypesetting(face, gid, 16)
	if o == nil {
		t.Fatal("FromTypesetting returned nil")
	}
	if !o.IsEmpty() {
		t.Error("space glyph has segments")
	}
	if o.Advance <= 0 {
		t.Errorf("space advance = %f, want positive", o.Advance)
	}
}

func TestFromTypesettingNilFace(t *testing.T) {
	if o := FromTypesetting(nil, 0, 16); o != nil {
		t.Errorf("nil face converted to %+v, want nil", o)
	}
}
