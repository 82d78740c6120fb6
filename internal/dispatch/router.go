package dispatch

import (
	"time"

	"github.com/vectra-editor/vectra/internal/input/key"
	"github.com/vectra-editor/vectra/internal/input/mode"
	"github.com/vectra-editor/vectra/internal/input/pointer"
	"github.com/vectra-editor/vectra/internal/input/shortcut"
	"github.com/vectra-editor/vectra/internal/logging"
	"github.com/vectra-editor/vectra/internal/plugin"
	"github.com/vectra-editor/vectra/internal/scene"
)

// Well-known plugin IDs the arbitration rules promote.
const (
	PluginGestures           = "gestures"
	PluginTextEdit           = "text-edit"
	PluginContextMenu        = "context-menu"
	PluginTransform          = "transform"
	PluginPointerInteraction = "pointer-interaction"
)

// Config configures the router.
type Config struct {
	// ClickWindow is the double-click window. Zero uses the default.
	ClickWindow time.Duration
}

// Router owns event routing. Methods run on the dispatch goroutine.
type Router struct {
	plugins   *plugin.Registry
	shortcuts *shortcut.Registry
	modes     *mode.Manager
	store     scene.Store
	clicks    *pointer.ClickTracker
	log       *logging.Logger
}

// NewRouter creates a router. log may be nil.
func NewRouter(plugins *plugin.Registry, shortcuts *shortcut.Registry, modes *mode.Manager, store scene.Store, log *logging.Logger, cfg Config) *Router {
	if log == nil {
		log = logging.Null
	}
	return &Router{
		plugins:   plugins,
		shortcuts: shortcuts,
		modes:     modes,
		store:     store,
		clicks:    pointer.NewClickTracker(cfg.ClickWindow),
		log:       log.WithComponent("dispatch"),
	}
}

// HandlePointer routes one pointer event. Returns the claiming
// plugin's ID and whether anything claimed it.
func (r *Router) HandlePointer(ev pointer.Event) (string, bool) {
	// Click counting happens before arbitration so the sequence state
	// is identical no matter which plugin wins.
	if ev.Phase == pointer.PhaseDown {
		ev.ClickCount, ev.DoubleClick = r.clicks.RecordClick(ev.Target, ev.Time)
	}

	for _, p := range r.orderPlugins(ev) {
		if p.OnPointer == nil {
			continue
		}
		if p.OnPointer(ev) {
			r.log.Debug("%s %s claimed by %s", ev.Device, ev.Phase, p.ID)
			return p.ID, true
		}
	}
	return "", false
}

// orderPlugins applies the arbitration rules to the enabled plugins.
// Base order is registration order; each matching rule moves one
// plugin to the front, and a rule applied later lands ahead of one
// applied earlier.
//
// Touch promotes gesture handling and skips every other rule. A double
// click promotes text editing. Then exactly one of: the secondary
// button promotes the context menu; a transform or rotation handle
// promotes the transform plugin; otherwise target semantics decide.
// Text elements skip the semantic promotion on double clicks so text
// editing stays in front.
func (r *Router) orderPlugins(ev pointer.Event) []plugin.Plugin {
	ordered := r.plugins.EnabledPlugins()

	if ev.IsTouch() {
		return promote(ordered, PluginGestures)
	}

	if ev.DoubleClick {
		ordered = promote(ordered, PluginTextEdit)
	}

	switch {
	case ev.Button == pointer.ButtonRight && ev.Phase == pointer.PhaseDown:
		ordered = promote(ordered, PluginContextMenu)

	case ev.Target.IsHandle():
		ordered = promote(ordered, PluginTransform)

	default:
		ordered = r.promoteBySemantics(ordered, ev)
	}

	return ordered
}

// promoteBySemantics applies the target-semantics rule.
func (r *Router) promoteBySemantics(ordered []plugin.Plugin, ev pointer.Event) []plugin.Plugin {
	t := ev.Target
	switch {
	case t.IsText():
		if ev.DoubleClick {
			// Text editing already promoted; leave it in front.
			return ordered
		}
		return promote(ordered, PluginPointerInteraction)

	case t.IsControlPoint() || (t != nil && t.CommandID != ""):
		return promote(ordered, PluginPointerInteraction)

	case t == nil || (t.ElementType == "" && t.CommandID == ""):
		// Empty space: the active creation tool owns the click.
		if id := r.modes.Current().PluginID(); id != "" {
			return promote(ordered, id)
		}
		return promote(ordered, PluginPointerInteraction)
	}
	return ordered
}

// promote moves the named plugin to the front, preserving the relative
// order of the rest. Unknown IDs leave the slice unchanged.
func promote(plugins []plugin.Plugin, id string) []plugin.Plugin {
	for i, p := range plugins {
		if p.ID == id {
			promoted := plugins[i]
			copy(plugins[1:i+1], plugins[:i])
			plugins[0] = promoted
			return plugins
		}
	}
	return plugins
}

// HandleKey routes one key press. editableFocus reports whether the
// host has a native editable input focused; such presses bypass the
// editor entirely.
func (r *Router) HandleKey(ev key.Event, editableFocus bool) bool {
	if editableFocus {
		return false
	}

	// Text editing captures everything except Escape.
	if r.modes.Current() == mode.TextEdit && ev.Key != key.KeyEscape {
		if p, ok := r.plugins.Get(PluginTextEdit); ok && p.OnKeyDown != nil {
			p.OnKeyDown(ev)
		}
		return true
	}

	for _, p := range r.plugins.EnabledPlugins() {
		if p.OnKeyDown == nil {
			continue
		}
		if p.OnKeyDown(ev) {
			r.log.Debug("key %s claimed by %s", ev.Chord(), p.ID)
			return true
		}
	}

	textSelected := r.store != nil && r.store.HasTextSelection()
	if entry, ok := r.shortcuts.Resolve(ev, r.modes.Current(), textSelected); ok {
		if entry.Action != nil {
			entry.Action()
		}
		r.log.Debug("key %s resolved to %s", entry.Chord, entry.Plugin)
		return true
	}
	return false
}

// HandleKeyUp routes one key release to the enabled plugins. Releases
// never resolve shortcuts.
func (r *Router) HandleKeyUp(ev key.Event, editableFocus bool) bool {
	if editableFocus {
		return false
	}
	for _, p := range r.plugins.EnabledPlugins() {
		if p.OnKeyUp == nil {
			continue
		}
		if p.OnKeyUp(ev) {
			return true
		}
	}
	return false
}

// ResetClicks clears the double-click sequence, for hosts that lose
// pointer focus between presses.
func (r *Router) ResetClicks() {
	r.clicks.Reset()
}
