// Package dispatch routes pointer and keyboard events to plugins.
//
// Pointer routing starts from the enabled plugins in registration
// order, then reorders by a fixed set of arbitration rules before
// offering the event to each plugin in turn; the first handler that
// returns true claims it. Touch input is special: gesture handling
// jumps to the front and every other rule is skipped, so a palm resting
// on a tablet can never trigger a context menu or a transform.
//
// Double-click detection runs before any reordering, so the click
// count a plugin sees never depends on which plugin won the previous
// press.
//
// Keyboard routing is gated first: a focused editable input swallows
// everything, and text-edit mode captures all keys except Escape. What
// remains goes to per-plugin key handlers in registration order, then
// to the shortcut registry.
package dispatch
