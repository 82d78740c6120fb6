// Package key defines keyboard keys, modifier masks, and key events as
// they arrive from the host surface.
//
// Events carry both a Key code and, for character keys, the Rune. The
// Chord form ("ctrl+shift+a") is the canonical spelling used to match
// events against registered shortcuts: modifiers sorted alphabetically,
// key name lowercased.
package key
