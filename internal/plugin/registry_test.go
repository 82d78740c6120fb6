package plugin

import (
	"testing"

	"github.com/vectra-editor/vectra/internal/event"
	"github.com/vectra-editor/vectra/internal/input/key"
	"github.com/vectra-editor/vectra/internal/input/mode"
	"github.com/vectra-editor/vectra/internal/input/shortcut"
)

func TestRegisterAndEnable(t *testing.T) {
	r := NewRegistry(nil, nil, nil)

	if err := r.Register(Plugin{ID: "selection"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(Plugin{ID: "selection"}); err == nil {
		t.Error("duplicate ID accepted")
	}
	if err := r.Register(Plugin{}); err == nil {
		t.Error("empty ID accepted")
	}

	if r.Enabled("selection") {
		t.Error("plugin enabled before Enable")
	}
	if err := r.Enable("selection"); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if !r.Enabled("selection") {
		t.Error("plugin not enabled")
	}

	// Enabling twice is a no-op.
	if err := r.Enable("selection"); err != nil {
		t.Errorf("second Enable: %v", err)
	}
}

func TestDependencyGating(t *testing.T) {
	r := NewRegistry(nil, nil, nil)
	r.Register(Plugin{ID: "selection"})
	r.Register(Plugin{ID: "transform", Dependencies: []string{"selection"}})

	if err := r.Enable("transform"); err == nil {
		t.Fatal("enabled with a disabled dependency")
	}
	if r.Enabled("transform") {
		t.Error("failed enable left the plugin on")
	}

	r.Enable("selection")
	if err := r.Enable("transform"); err != nil {
		t.Fatalf("Enable after dependency: %v", err)
	}

	if err := r.Enable("ghost"); err == nil {
		t.Error("enabled an unregistered plugin")
	}
}

func TestEnabledPluginsKeepInsertionOrder(t *testing.T) {
	r := NewRegistry(nil, nil, nil)
	for _, id := range []string{"selection", "transform", "context-menu", "text-edit"} {
		r.Register(Plugin{ID: id})
		r.Enable(id)
	}
	r.Disable("transform")

	var got []string
	for _, p := range r.EnabledPlugins() {
		got = append(got, p.ID)
	}
	want := []string{"selection", "context-menu", "text-edit"}
	if len(got) != len(want) {
		t.Fatalf("enabled = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("enabled = %v, want %v", got, want)
		}
	}
}

func TestShortcutContribution(t *testing.T) {
	sr := shortcut.NewRegistry()
	r := NewRegistry(sr, nil, nil)

	r.Register(Plugin{
		ID: "curves",
		Shortcuts: []Shortcut{
			{Chord: "p", Description: "pen tool"},
			{Chord: "Escape", Description: "finish path"},
		},
	})

	ev := key.NewRuneEvent('p', key.ModNone)
	if _, ok := sr.Resolve(ev, mode.Select, false); ok {
		t.Error("shortcut live before enable")
	}

	r.Enable("curves")
	e, ok := sr.Resolve(ev, mode.Select, false)
	if !ok || e.Plugin != "curves" {
		t.Fatalf("after enable: %+v, %v", e, ok)
	}

	r.Disable("curves")
	if _, ok := sr.Resolve(ev, mode.Select, false); ok {
		t.Error("shortcut live after disable")
	}
}

func TestEnableDisableEvents(t *testing.T) {
	bus := event.NewBus()
	r := NewRegistry(nil, bus, nil)
	r.Register(Plugin{ID: "gestures"})

	var types []event.Type
	bus.SubscribeAll(func(ev event.Event) {
		if ev.ID == "gestures" {
			types = append(types, ev.Type)
		}
	})

	r.Enable("gestures")
	r.Disable("gestures")
	r.Disable("gestures") // no-op, no second event

	if len(types) != 2 || types[0] != event.TypePluginEnabled || types[1] != event.TypePluginDisabled {
		t.Errorf("events = %v", types)
	}
}
