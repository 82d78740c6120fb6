package plugin

import (
	"github.com/vectra-editor/vectra/internal/input/key"
	"github.com/vectra-editor/vectra/internal/input/pointer"
	"github.com/vectra-editor/vectra/internal/input/shortcut"
)

// PointerHandler handles a pointer event. Returning true claims the
// event; no later plugin sees it.
type PointerHandler func(ev pointer.Event) bool

// KeyHandler handles a key press. Returning true claims the press.
type KeyHandler func(ev key.Event) bool

// Shortcut declares one chord a plugin contributes while enabled.
type Shortcut struct {
	// Chord is the chord spelling, normalized at registration.
	Chord string

	// Description says what the shortcut does.
	Description string

	// Action runs when the shortcut resolves to this plugin.
	Action shortcut.Action
}

// Plugin is one interaction feature.
type Plugin struct {
	// ID identifies the plugin; also matched against the active mode
	// during shortcut arbitration.
	ID string

	// Description is a short human-readable summary.
	Description string

	// Dependencies lists plugin IDs that must be enabled first.
	Dependencies []string

	// OnPointer handles pointer events routed to this plugin.
	// Nil plugins are skipped during dispatch.
	OnPointer PointerHandler

	// OnKeyDown handles key presses before shortcut resolution.
	OnKeyDown KeyHandler

	// OnKeyUp handles key releases. Releases never reach the
	// shortcut resolver.
	OnKeyUp KeyHandler

	// Shortcuts are contributed while the plugin is enabled.
	Shortcuts []Shortcut
}
