// Package shortcut maps key chords to plugin actions.
//
// Several plugins may register the same chord. Resolution picks one
// winner per press: a text-edit entry wins on Enter or F2 while a text
// element is selected, then a plugin whose ID matches the active mode
// exactly, then one whose ID or description mentions the mode, then
// the first registered. A chord with any candidates at all counts as
// handled so the host never sees it, even when arbitration picked a
// different plugin than the one the user might expect.
package shortcut
