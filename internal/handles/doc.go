// Package handles classifies the relationship between a Bézier anchor's
// two control handles and computes the geometrically consistent
// "opposite" position for one handle given the other's new position.
//
// Terminology, relative to a command C with anchor A:
//
//   - the incoming handle of A is C's own second control point (X2,Y2),
//     entering A;
//   - the outgoing handle of A is the next command's first control
//     point (X1,Y1), leaving A.
//
// The two handles orbiting a shared anchor form a pair. A pair is
// mirrored when the handles point in opposite directions with near-equal
// lengths, aligned when directions oppose but lengths differ, and
// independent otherwise.
//
// Everything in this package is pure: classification and opposite-point
// computation never mutate the document. Callers apply results through
// the scene store.
package handles
