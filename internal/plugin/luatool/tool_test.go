package luatool

import (
	"strings"
	"testing"

	"github.com/vectra-editor/vectra/internal/geom"
	"github.com/vectra-editor/vectra/internal/input/mode"
	"github.com/vectra-editor/vectra/internal/input/pointer"
	"github.com/vectra-editor/vectra/internal/scene"
)

func testHost(t *testing.T) (Host, *scene.MemStore) {
	t.Helper()
	st := scene.NewMemStore(nil)
	if _, err := st.AddPathData("p", "M0,0 C10,-10,20,-10,30,0", scene.Style{}); err != nil {
		t.Fatalf("AddPathData: %v", err)
	}
	return Host{Store: st, Modes: mode.NewManager(nil)}, st
}

func TestLoadRegistersTool(t *testing.T) {
	host, _ := testHost(t)
	tool, err := Load(`
		local vectra = require("vectra")
		vectra.register{
			id = "star-tool",
			description = "draws stars",
			dependencies = {"selection"},
			shortcuts = {
				{ chord = "s", description = "star tool" },
			},
		}
	`, host)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer tool.Close()

	p := tool.Plugin()
	if p.ID != "star-tool" || p.Description != "draws stars" {
		t.Errorf("plugin = %+v", p)
	}
	if len(p.Dependencies) != 1 || p.Dependencies[0] != "selection" {
		t.Errorf("dependencies = %v", p.Dependencies)
	}
	if len(p.Shortcuts) != 1 || p.Shortcuts[0].Chord != "s" {
		t.Errorf("shortcuts = %+v", p.Shortcuts)
	}
	if p.OnPointer != nil {
		t.Error("plugin has a pointer handler without on_pointer")
	}
}

func TestLoadErrors(t *testing.T) {
	host, _ := testHost(t)

	if _, err := Load(`local x = 1`, host); err == nil {
		t.Error("script without register accepted")
	}
	if _, err := Load(`this is not lua`, host); err == nil {
		t.Error("broken script accepted")
	}
	if _, err := Load(`require("vectra").register{ description = "anonymous" }`, host); err == nil {
		t.Error("tool without id accepted")
	}
	if _, err := Load(`x=1`, Host{}); err == nil {
		t.Error("host without store accepted")
	}
}

func TestOnPointerClaims(t *testing.T) {
	host, st := testHost(t)
	tool, err := Load(`
		local vectra = require("vectra")
		vectra.register{ id = "probe" }
		function on_pointer(ev)
			if ev.phase == "down" and ev.command_id ~= "" then
				vectra.select_command(ev.command_id, false)
				return true
			end
			return false
		end
	`, host)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer tool.Close()

	p := tool.Plugin()
	if p.OnPointer == nil {
		t.Fatal("no pointer handler")
	}

	down := pointer.Event{
		Point:  geom.Pt(5, 5),
		Phase:  pointer.PhaseDown,
		Target: &pointer.Target{ElementID: "p", CommandID: "p-2"},
	}
	if !p.OnPointer(down) {
		t.Error("down on a command not claimed")
	}
	sel := st.SelectedCommands()
	if len(sel) != 1 || sel[0] != "p-2" {
		t.Errorf("selection = %v", sel)
	}

	move := down
	move.Phase = pointer.PhaseMove
	if p.OnPointer(move) {
		t.Error("move claimed")
	}
}

func TestScriptEditsDocument(t *testing.T) {
	host, st := testHost(t)
	tool, err := Load(`
		local vectra = require("vectra")
		vectra.register{ id = "nudge" }
		function on_shortcut(chord)
			vectra.update_command("p-2", { x2 = 25, y2 = -15 })
			vectra.move_command("p-2", 31, 1)
			vectra.set_mode("curves")
		end
	`, host)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer tool.Close()

	if err := tool.callShortcut("n"); err != nil {
		t.Fatalf("callShortcut: %v", err)
	}

	cmd := st.Command("p-2")
	if cmd.X2 != 25 || cmd.Y2 != -15 {
		t.Errorf("command after edit = (%v,%v)", cmd.X2, cmd.Y2)
	}
	if cmd.Anchor() != geom.Pt(31, 1) {
		t.Errorf("anchor after move = %v", cmd.Anchor())
	}
	if host.Modes.Current() != mode.Curves {
		t.Errorf("mode after edit = %v", host.Modes.Current())
	}
}

func TestSandboxBlocksEscapes(t *testing.T) {
	host, _ := testHost(t)

	// Hostile scripts fail at load or when the escape runs.
	hostile := []string{
		`require("vectra").register{id="x"} dofile("/etc/passwd")`,
		`require("vectra").register{id="x"} local f = load("return 1") f()`,
		`local io = require("io")`,
		`local os = require("os")`,
	}
	for _, src := range hostile {
		if tool, err := Load(src, host); err == nil {
			tool.Close()
			t.Errorf("hostile script loaded: %s", src)
		}
	}

	// Safe built-ins still work.
	tool, err := Load(`
		local s = require("string")
		require("vectra").register{ id = s.lower("OK") }
	`, host)
	if err != nil {
		t.Fatalf("safe require failed: %v", err)
	}
	defer tool.Close()
	if !strings.EqualFold(tool.Plugin().ID, "ok") {
		t.Errorf("plugin ID = %q", tool.Plugin().ID)
	}
}
