// Package app wires the editor together: document store, plugin
// registry, dispatch router, drag session, and the built-in plugins.
package app

import (
	"fmt"

	"github.com/vectra-editor/vectra/internal/config"
	"github.com/vectra-editor/vectra/internal/dispatch"
	"github.com/vectra-editor/vectra/internal/drag"
	"github.com/vectra-editor/vectra/internal/event"
	"github.com/vectra-editor/vectra/internal/handles"
	"github.com/vectra-editor/vectra/internal/input/mode"
	"github.com/vectra-editor/vectra/internal/input/shortcut"
	"github.com/vectra-editor/vectra/internal/logging"
	"github.com/vectra-editor/vectra/internal/plugin"
	"github.com/vectra-editor/vectra/internal/scene"
)

// Options configures application startup.
type Options struct {
	// ConfigPath is the settings file, "" for defaults.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// App owns the editor's long-lived state.
type App struct {
	Config    *config.Config
	Log       *logging.Logger
	Bus       *event.Bus
	Store     *scene.MemStore
	Modes     *mode.Manager
	Shortcuts *shortcut.Registry
	Plugins   *plugin.Registry
	Session   *drag.Session
	Router    *dispatch.Router
	Cache     *handles.InfoCache
}

// New builds a fully wired editor.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	level := cfg.LogLevel()
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(level),
		Prefix: "vectra",
	})

	bus := event.NewBus()
	store := scene.NewMemStore(bus)
	store.SetGrid(cfg.Grid())

	modes := mode.NewManager(bus)
	shortcuts := shortcut.NewRegistry()
	plugins := plugin.NewRegistry(shortcuts, bus, log)
	cache := handles.NewInfoCache(store)
	session := drag.NewSession(store, bus, cache, cfg.Drag())

	// Cached coupling info goes stale when the selection changes or a
	// command's geometry moves under it.
	bus.Subscribe(event.TypeSelectionChanged, func(event.Event) {
		cache.Invalidate()
	})
	bus.Subscribe(event.TypeCommandUpdated, func(ev event.Event) {
		cache.InvalidateCommand(ev.ID)
	})
	bus.Subscribe(event.TypeCommandMoved, func(ev event.Event) {
		cache.InvalidateCommand(ev.ID)
	})

	a := &App{
		Config:    cfg,
		Log:       log,
		Bus:       bus,
		Store:     store,
		Modes:     modes,
		Shortcuts: shortcuts,
		Plugins:   plugins,
		Session:   session,
		Cache:     cache,
	}
	a.Router = dispatch.NewRouter(plugins, shortcuts, modes, store, log, dispatch.Config{
		ClickWindow: cfg.ClickWindow(),
	})

	for _, p := range a.builtinPlugins() {
		if err := plugins.Register(p); err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}
	for _, id := range cfg.EnabledPlugins() {
		if err := plugins.Enable(id); err != nil {
			// Dependency gating already logged it; startup continues.
			log.Warn("plugin %q stays disabled: %v", id, err)
		}
	}
	return a, nil
}
