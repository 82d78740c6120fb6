package plugin

import (
	"fmt"
	"sync"

	"github.com/vectra-editor/vectra/internal/event"
	"github.com/vectra-editor/vectra/internal/input/shortcut"
	"github.com/vectra-editor/vectra/internal/logging"
)

// entry is a registered plugin plus its enabled flag.
type entry struct {
	plugin  Plugin
	enabled bool
}

// Registry stores plugins in insertion order.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry

	shortcuts *shortcut.Registry
	bus       *event.Bus
	log       *logging.Logger
}

// NewRegistry creates an empty registry. shortcuts, bus, and log may
// be nil.
func NewRegistry(shortcuts *shortcut.Registry, bus *event.Bus, log *logging.Logger) *Registry {
	if log == nil {
		log = logging.Null
	}
	return &Registry{
		entries:   make(map[string]*entry),
		shortcuts: shortcuts,
		bus:       bus,
		log:       log.WithComponent("plugin"),
	}
}

// Register adds a plugin, disabled. Duplicate IDs are an error.
func (r *Registry) Register(p Plugin) error {
	if p.ID == "" {
		return fmt.Errorf("plugin has no ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[p.ID]; exists {
		return fmt.Errorf("plugin already registered: %s", p.ID)
	}
	r.entries[p.ID] = &entry{plugin: p}
	r.order = append(r.order, p.ID)
	return nil
}

// Enable turns a plugin on, contributing its shortcuts. All
// dependencies must already be enabled; a failed enable is logged and
// leaves the plugin off.
func (r *Registry) Enable(id string) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		r.log.Warn("enable of unknown plugin %q", id)
		return fmt.Errorf("unknown plugin: %s", id)
	}
	if e.enabled {
		r.mu.Unlock()
		return nil
	}
	for _, dep := range e.plugin.Dependencies {
		de, ok := r.entries[dep]
		if !ok || !de.enabled {
			r.mu.Unlock()
			r.log.Warn("plugin %q needs %q enabled first", id, dep)
			return fmt.Errorf("plugin %s: dependency not enabled: %s", id, dep)
		}
	}
	e.enabled = true
	shortcuts := e.plugin.Shortcuts
	r.mu.Unlock()

	if r.shortcuts != nil {
		for _, sc := range shortcuts {
			if err := r.shortcuts.Register(id, sc.Chord, sc.Description, sc.Action); err != nil {
				r.log.Warn("plugin %q shortcut %q: %v", id, sc.Chord, err)
			}
		}
	}
	r.publish(event.TypePluginEnabled, id)
	return nil
}

// Disable turns a plugin off and withdraws its shortcuts. Disabling an
// unknown or already-disabled plugin is a no-op.
func (r *Registry) Disable(id string) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok || !e.enabled {
		r.mu.Unlock()
		return
	}
	e.enabled = false
	r.mu.Unlock()

	if r.shortcuts != nil {
		r.shortcuts.RemovePlugin(id)
	}
	r.publish(event.TypePluginDisabled, id)
}

// Enabled reports whether the plugin exists and is on.
func (r *Registry) Enabled(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return ok && e.enabled
}

// Get returns a registered plugin by ID.
func (r *Registry) Get(id string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return Plugin{}, false
	}
	return e.plugin, true
}

// EnabledPlugins returns the enabled plugins in insertion order.
func (r *Registry) EnabledPlugins() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Plugin, 0, len(r.order))
	for _, id := range r.order {
		if e := r.entries[id]; e.enabled {
			out = append(out, e.plugin)
		}
	}
	return out
}

func (r *Registry) publish(t event.Type, id string) {
	if r.bus != nil {
		r.bus.Publish(event.Event{Type: t, ID: id})
	}
}
