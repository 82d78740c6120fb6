// Package mode tracks the active tool mode and coordinates mode
// transitions.
//
// The editor is always in exactly one mode. Select is the default;
// creation modes (curves, shapes, pencil, text placement) route
// empty-canvas clicks to their owning tool plugin; text-edit mode
// captures nearly all keyboard input for the text caret.
//
// The Manager is injected into whatever needs the current mode. There
// is no package-level state.
package mode
