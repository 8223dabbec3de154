package text

import "testing"

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpMoveTo, "MoveTo"},
		{OpLineTo, "LineTo"},
		{OpQuadTo, "QuadTo"},
		{OpCubicTo, "CubicTo"},
		{Op(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	var nilOutline *Outline
	if !nilOutline.IsEmpty() {
		t.Error("nil outline not empty")
	}
	if !(&Outline{Advance: 5}).IsEmpty() {
		t.Error("outline without segments not empty")
	}
	o := &Outline{Segments: []Segment{{Op: OpMoveTo}}}
	if o.IsEmpty() {
		t.Error("outline with segments reported empty")
	}
}

func TestOffset(t *testing.T) {
	o := &Outline{
		Segments: []Segment{
			{Op: OpMoveTo, Points: [3]Point{{1, 2}}},
			{Op: OpQuadTo, Points: [3]Point{{3, 4}, {5, 6}}},
		},
		Advance: 7,
	}
	moved := o.Offset(10, 20)
	if moved.Advance != 7 {
		t.Errorf("advance changed: %f", moved.Advance)
	}
	if p := moved.Segments[0].Points[0]; p != (Point{11, 22}) {
		t.Errorf("moveto point = %+v", p)
	}
	if p := moved.Segments[1].Points[1]; p != (Point{15, 26}) {
		t.Errorf("quadto target = %+v", p)
	}
	// Original untouched.
	if p := o.Segments[0].Points[0]; p != (Point{1, 2}) {
		t.Errorf("original mutated: %+v", p)
	}

	if (*Outline)(nil).Offset(1, 1) != nil {
		t.Error("nil Offset not nil")
	}
}
