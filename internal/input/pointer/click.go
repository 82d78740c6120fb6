package pointer

import "time"

// DefaultClickWindow is the longest gap between presses that still
// extends a click sequence.
const DefaultClickWindow = 400 * time.Millisecond

// ClickTracker detects double clicks. Presses on the same logical
// target within the window extend the sequence; the second press
// reports a double click and resets the count so a third press starts
// a fresh sequence instead of reporting a triple.
//
// Methods run on the dispatch goroutine; ClickTracker is not for
// concurrent use.
type ClickTracker struct {
	window time.Duration

	lastTarget *Target
	lastTime   time.Time
	count      int
}

// NewClickTracker creates a tracker. A non-positive window falls back
// to DefaultClickWindow.
func NewClickTracker(window time.Duration) *ClickTracker {
	if window <= 0 {
		window = DefaultClickWindow
	}
	return &ClickTracker{window: window}
}

// RecordClick records a press and returns the click count and whether
// it completed a double click. A zero timestamp uses time.Now().
func (t *ClickTracker) RecordClick(target *Target, timestamp time.Time) (count int, double bool) {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(target, timestamp) {
		t.count++
	} else {
		t.count = 1
	}

	t.lastTarget = target
	t.lastTime = timestamp

	if t.count == 2 {
		t.count = 0
		return 2, true
	}
	return t.count, false
}

// isPartOfSequence checks whether a press extends the current sequence.
func (t *ClickTracker) isPartOfSequence(target *Target, timestamp time.Time) bool {
	if t.count == 0 || t.lastTime.IsZero() {
		return false
	}

	// Clock skew reads as a new sequence.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.window {
		return false
	}

	return target.SameAs(t.lastTarget)
}

// Reset clears the click sequence.
func (t *ClickTracker) Reset() {
	t.count = 0
	t.lastTime = time.Time{}
	t.lastTarget = nil
}
