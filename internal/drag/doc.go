// Package drag owns the lifecycle of a single control-point drag and
// decides, on each pointer move, whether and how the edit propagates to
// the paired handle on the other side of the shared anchor.
//
// A Session is either idle or holds exactly one active drag; the active
// state is a single struct so the idle/dragging distinction is a nil
// check rather than a bag of nullable fields. The pair's coupling type
// is classified once at drag start and frozen for the drag; only the
// Alt/Option branch re-evaluates it live.
//
// Propagation is gated against fast flicks (a sliding-window velocity
// gate) and against coarse snapping grids, which make alignment
// detection unreliable.
package drag
