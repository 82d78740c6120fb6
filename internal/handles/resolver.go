package handles

import "github.com/vectra-editor/vectra/internal/geom"

// Classification thresholds.
const (
	// AlignDotThreshold is the cosine above which two handles count as
	// pointing in opposite directions (≈15° tolerance). A stricter
	// 0.985 (≈10°) variant existed historically; 0.966 is canonical for
	// static and drag-time classification alike.
	AlignDotThreshold = 0.966

	// MirrorRatioThreshold is the min/max magnitude ratio above which
	// an aligned pair counts as mirrored.
	MirrorRatioThreshold = 0.9

	// GridAlignDotThreshold is the wider direction tolerance used while
	// re-coupling during a drag with grid snapping active, since
	// grid-quantized points are less precisely aligned.
	GridAlignDotThreshold = 0.85
)

// PairType classifies the coupling between an anchor's two handles.
type PairType uint8

const (
	// Independent handles move freely of each other.
	Independent PairType = iota
	// Aligned handles share a line through the anchor but keep their
	// own lengths.
	Aligned
	// Mirrored handles share a line and a length.
	Mirrored
)

// String returns a human-readable name for the pair type.
func (t PairType) String() string {
	switch t {
	case Mirrored:
		return "mirrored"
	case Aligned:
		return "aligned"
	default:
		return "independent"
	}
}

// Coupled returns true if the type propagates edits to the partner.
func (t PairType) Coupled() bool {
	return t == Mirrored || t == Aligned
}

// Classify determines the pair type for the two handles orbiting
// anchor. Nil handles are absent.
func Classify(anchor geom.Point, in, out *geom.Point) PairType {
	return ClassifyTol(anchor, in, out, AlignDotThreshold)
}

// ClassifyTol is Classify with a caller-supplied direction tolerance
// (cosine of the permitted deviation from exactly opposite).
func ClassifyTol(anchor geom.Point, in, out *geom.Point, dotThreshold float64) PairType {
	if in == nil || out == nil {
		return Independent
	}

	vin := in.Sub(anchor)
	vout := out.Sub(anchor)

	magIn := vin.Length()
	magOut := vout.Length()
	if magIn == 0 || magOut == 0 {
		return Independent
	}

	// Cosine of the angle between one handle and the other's negation:
	// 1 means exactly opposite directions.
	dot := vin.Normalize().Dot(vout.Normalize().Neg())
	if dot <= dotThreshold {
		return Independent
	}

	ratio := magIn / magOut
	if magOut < magIn {
		ratio = magOut / magIn
	}
	if ratio > MirrorRatioThreshold {
		return Mirrored
	}
	return Aligned
}

// Opposite computes the paired handle's new position after the moved
// handle arrives at moved, for the given coupling type.
//
// Mirrored keeps the pair symmetric: same length, opposite direction.
// Aligned keeps the partner's original length and only flips direction.
// Independent (and a moved handle collapsed onto the anchor) yields no
// update.
func Opposite(anchor, moved geom.Point, originalOppositeMag float64, typ PairType) (geom.Point, bool) {
	v := moved.Sub(anchor)
	if v.IsZero() {
		return geom.Point{}, false
	}

	switch typ {
	case Mirrored:
		return anchor.Sub(v), true
	case Aligned:
		return anchor.Sub(v.Normalize().Scale(originalOppositeMag)), true
	default:
		return geom.Point{}, false
	}
}
