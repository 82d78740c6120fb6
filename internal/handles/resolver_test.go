package handles

import (
	"math"
	"testing"

	"github.com/vectra-editor/vectra/internal/geom"
)

func pp(x, y float64) *geom.Point {
	p := geom.Pt(x, y)
	return &p
}

func TestClassify(t *testing.T) {
	anchor := geom.Pt(0, 0)

	tests := []struct {
		name string
		in   *geom.Point
		out  *geom.Point
		want PairType
	}{
		{"opposite equal lengths", pp(10, 0), pp(-10, 0), Mirrored},
		{"opposite half length", pp(10, 0), pp(-5, 0), Aligned},
		{"diagonal mirrored", pp(7, 7), pp(-7, -7), Mirrored},
		{"rotated 30 degrees", pp(10, 0), pp(-8.66, -5), Independent},
		{"perpendicular", pp(10, 0), pp(0, 10), Independent},
		{"same side", pp(10, 0), pp(8, 0), Independent},
		{"missing incoming", nil, pp(-10, 0), Independent},
		{"missing outgoing", pp(10, 0), nil, Independent},
		{"both missing", nil, nil, Independent},
		{"zero length incoming", pp(0, 0), pp(-10, 0), Independent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(anchor, tt.in, tt.out); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifySymmetry(t *testing.T) {
	// Equal lengths, exactly opposite directions: mirrored.
	anchor := geom.Pt(3, 4)
	in := pp(3+6, 4+2)
	out := pp(3-6, 4-2)
	if got := Classify(anchor, in, out); got != Mirrored {
		t.Fatalf("equal opposite handles = %v, want Mirrored", got)
	}

	// Scale one handle's length by 0.5, directions unchanged: aligned.
	out = pp(3-3, 4-1)
	if got := Classify(anchor, in, out); got != Aligned {
		t.Fatalf("half-length handle = %v, want Aligned", got)
	}

	// Rotate one handle by 30 degrees: independent.
	ang := 30 * math.Pi / 180
	v := geom.Pt(-6, -2)
	rot := geom.Pt(
		v.X*math.Cos(ang)-v.Y*math.Sin(ang),
		v.X*math.Sin(ang)+v.Y*math.Cos(ang),
	)
	out = pp(3+rot.X, 4+rot.Y)
	if got := Classify(anchor, in, out); got != Independent {
		t.Fatalf("30-degree rotated handle = %v, want Independent", got)
	}
}

func TestClassifyNearThreshold(t *testing.T) {
	anchor := geom.Pt(0, 0)
	in := pp(10, 0)

	// 14 degrees off opposite: inside the ≈15° tolerance.
	ang := math.Pi - 14*math.Pi/180
	out := pp(10*math.Cos(ang), 10*math.Sin(ang))
	if got := Classify(anchor, in, out); got != Mirrored {
		t.Errorf("14-degree deviation = %v, want Mirrored", got)
	}

	// 20 degrees off opposite: outside.
	ang = math.Pi - 20*math.Pi/180
	out = pp(10*math.Cos(ang), 10*math.Sin(ang))
	if got := Classify(anchor, in, out); got != Independent {
		t.Errorf("20-degree deviation = %v, want Independent", got)
	}

	// The same 20-degree deviation passes under the grid tolerance.
	if got := ClassifyTol(anchor, in, out, GridAlignDotThreshold); got != Mirrored {
		t.Errorf("20-degree deviation under grid tolerance = %v, want Mirrored", got)
	}
}

func TestOppositeMirrored(t *testing.T) {
	// Anchor at origin, handle dragged to (5,5): opposite is (-5,-5).
	got, ok := Opposite(geom.Pt(0, 0), geom.Pt(5, 5), 10, Mirrored)
	if !ok {
		t.Fatal("Opposite returned no result for mirrored pair")
	}
	if !got.Eq(geom.Pt(-5, -5), 1e-9) {
		t.Errorf("mirrored opposite = %v, want (-5,-5)", got)
	}

	// Off-origin anchor.
	got, _ = Opposite(geom.Pt(10, 10), geom.Pt(13, 14), 0, Mirrored)
	if !got.Eq(geom.Pt(7, 6), 1e-9) {
		t.Errorf("mirrored opposite = %v, want (7,6)", got)
	}
}

func TestOppositeAlignedPreservesMagnitude(t *testing.T) {
	anchor := geom.Pt(2, -1)
	const keep = 8.0

	// Whatever the moved handle's distance, the opposite stays at the
	// partner's original distance from the anchor.
	for _, moved := range []geom.Point{
		geom.Pt(12, -1), geom.Pt(2, 30), geom.Pt(-5, -9), geom.Pt(2.5, -1.5),
	} {
		got, ok := Opposite(anchor, moved, keep, Aligned)
		if !ok {
			t.Fatalf("Opposite(%v) returned no result", moved)
		}
		if d := got.Distance(anchor); math.Abs(d-keep) > 1e-6 {
			t.Errorf("aligned opposite distance = %v, want %v", d, keep)
		}
		// And it must lie on the opposite side of the anchor.
		if got.Sub(anchor).Dot(moved.Sub(anchor)) >= 0 {
			t.Errorf("aligned opposite %v is on the moved handle's side", got)
		}
	}
}

func TestOppositeIndependent(t *testing.T) {
	if _, ok := Opposite(geom.Pt(0, 0), geom.Pt(5, 5), 8, Independent); ok {
		t.Error("independent pair produced an opposite update")
	}
	// Moved handle collapsed onto the anchor: no direction to mirror.
	if _, ok := Opposite(geom.Pt(3, 3), geom.Pt(3, 3), 8, Mirrored); ok {
		t.Error("zero-length handle produced an opposite update")
	}
}

func TestPairTypeCoupled(t *testing.T) {
	if !Mirrored.Coupled() || !Aligned.Coupled() {
		t.Error("mirrored/aligned must be coupled")
	}
	if Independent.Coupled() {
		t.Error("independent must not be coupled")
	}
}
