package drag

import (
	"math"
	"time"

	"github.com/vectra-editor/vectra/internal/geom"
)

// sample is one observed drag point.
type sample struct {
	pos geom.Point
	at  time.Time
}

// velocityWindow keeps the most recent drag samples and computes the
// pointer speed across them.
type velocityWindow struct {
	samples []sample
	max     int
}

func newVelocityWindow(max int) *velocityWindow {
	return &velocityWindow{max: max}
}

// add records a sample, evicting the oldest past capacity.
func (w *velocityWindow) add(pos geom.Point, at time.Time) {
	w.samples = append(w.samples, sample{pos: pos, at: at})
	if len(w.samples) > w.max {
		w.samples = w.samples[1:]
	}
}

// speed returns the pointer speed in units per second over the window:
// total path length divided by elapsed time. Fewer than two samples, or
// a non-positive elapsed time with no movement, yield zero; movement in
// zero time is treated as arbitrarily fast.
func (w *velocityWindow) speed() float64 {
	if len(w.samples) < 2 {
		return 0
	}

	var dist float64
	for i := 1; i < len(w.samples); i++ {
		dist += w.samples[i].pos.Distance(w.samples[i-1].pos)
	}

	elapsed := w.samples[len(w.samples)-1].at.Sub(w.samples[0].at)
	if elapsed <= 0 {
		if dist == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return dist / elapsed.Seconds()
}
