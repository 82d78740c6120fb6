package geom

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"unit x", Pt(5, 0), Pt(1, 0)},
		{"unit y", Pt(0, -3), Pt(0, -1)},
		{"diagonal", Pt(3, 4), Pt(0.6, 0.8)},
		{"zero", Pt(0, 0), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !got.Eq(tt.want, 1e-9) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDot(t *testing.T) {
	a := Pt(1, 0)
	b := Pt(0, 1)
	if got := a.Dot(b); got != 0 {
		t.Errorf("perpendicular dot = %v, want 0", got)
	}
	if got := a.Dot(a); got != 1 {
		t.Errorf("parallel unit dot = %v, want 1", got)
	}
	if got := a.Dot(a.Neg()); got != -1 {
		t.Errorf("opposite unit dot = %v, want -1", got)
	}
}

func TestLengthDistance(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(0, 0).Length(); got != 0 {
		t.Errorf("zero Length = %v, want 0", got)
	}
}

func TestArithmetic(t *testing.T) {
	p := Pt(2, 3)
	if got := p.Add(Pt(1, -1)); got != Pt(3, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Pt(1, -1)); got != Pt(1, 4) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Scale(2); got != Pt(4, 6) {
		t.Errorf("Scale = %v", got)
	}
	if got := p.Neg(); got != Pt(-2, -3) {
		t.Errorf("Neg = %v", got)
	}
}

func TestNormalizePreservesDirection(t *testing.T) {
	p := Pt(-7, 2)
	n := p.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Fatalf("unit length = %v", n.Length())
	}
	if n.Dot(p) <= 0 {
		t.Errorf("normalized vector reversed direction")
	}
}
