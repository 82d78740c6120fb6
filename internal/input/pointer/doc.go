// Package pointer defines pointer events as they arrive from the host
// surface: position, button, input device, phase, and the hit-test
// target under the pointer.
//
// The package also houses click tracking. ClickTracker detects double
// clicks within a configurable window, matching targets by logical
// identity so a re-rendered element still counts as "the same target".
package pointer
