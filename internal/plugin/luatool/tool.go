package luatool

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/vectra-editor/vectra/internal/geom"
	"github.com/vectra-editor/vectra/internal/input/mode"
	"github.com/vectra-editor/vectra/internal/input/pointer"
	"github.com/vectra-editor/vectra/internal/logging"
	"github.com/vectra-editor/vectra/internal/plugin"
	"github.com/vectra-editor/vectra/internal/scene"
)

// moduleName is the module scripts require for editor access.
const moduleName = "vectra"

// Host gives a script its view of the editor. Store is required; Modes
// and Log may be nil.
type Host struct {
	Store scene.Store
	Modes *mode.Manager
	Log   *logging.Logger
}

// Tool is a loaded Lua tool plugin.
type Tool struct {
	L      *lua.LState
	plugin plugin.Plugin
}

// registration captures the script's vectra.register call.
type registration struct {
	id           string
	description  string
	dependencies []string
	shortcuts    []plugin.Shortcut
	registered   bool
}

// Load runs a tool script and returns the Tool it registered.
func Load(script string, host Host) (*Tool, error) {
	if host.Store == nil {
		return nil, errors.New("luatool: host has no store")
	}
	if host.Log == nil {
		host.Log = logging.Null
	}

	L := lua.NewState()
	installSandbox(L)

	var reg registration
	L.PreloadModule(moduleName, moduleLoader(host, &reg))

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("luatool: %w", err)
	}
	if !reg.registered {
		L.Close()
		return nil, errors.New("luatool: script never called vectra.register")
	}
	if reg.id == "" {
		L.Close()
		return nil, errors.New("luatool: registered tool has no id")
	}

	t := &Tool{L: L}
	t.plugin = plugin.Plugin{
		ID:           reg.id,
		Description:  reg.description,
		Dependencies: reg.dependencies,
		Shortcuts:    make([]plugin.Shortcut, len(reg.shortcuts)),
	}
	for i, sc := range reg.shortcuts {
		chord := sc.Chord
		t.plugin.Shortcuts[i] = plugin.Shortcut{
			Chord:       chord,
			Description: sc.Description,
			Action: func() {
				if err := t.callShortcut(chord); err != nil {
					host.Log.Error("tool %q shortcut %q: %v", reg.id, chord, err)
				}
			},
		}
	}
	if L.GetGlobal("on_pointer") != lua.LNil {
		t.plugin.OnPointer = func(ev pointer.Event) bool {
			claimed, err := t.callPointer(ev)
			if err != nil {
				host.Log.Error("tool %q on_pointer: %v", reg.id, err)
				return false
			}
			return claimed
		}
	}
	return t, nil
}

// LoadFile reads and loads a tool script from disk.
func LoadFile(path string, host Host) (*Tool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("luatool: %w", err)
	}
	return Load(string(src), host)
}

// Plugin returns the plugin to register with the plugin registry.
func (t *Tool) Plugin() plugin.Plugin {
	return t.plugin
}

// Close releases the Lua state.
func (t *Tool) Close() {
	t.L.Close()
}

// callPointer invokes the script's on_pointer with an event table.
func (t *Tool) callPointer(ev pointer.Event) (bool, error) {
	fn := t.L.GetGlobal("on_pointer")
	if fn == lua.LNil {
		return false, nil
	}

	tbl := t.L.NewTable()
	t.L.SetField(tbl, "x", lua.LNumber(ev.Point.X))
	t.L.SetField(tbl, "y", lua.LNumber(ev.Point.Y))
	t.L.SetField(tbl, "phase", lua.LString(ev.Phase.String()))
	t.L.SetField(tbl, "button", lua.LString(ev.Button.String()))
	t.L.SetField(tbl, "device", lua.LString(ev.Device.String()))
	if ev.Target != nil {
		t.L.SetField(tbl, "element_id", lua.LString(ev.Target.ElementID))
		t.L.SetField(tbl, "command_id", lua.LString(ev.Target.CommandID))
	}

	if err := t.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, tbl); err != nil {
		return false, err
	}
	ret := t.L.Get(-1)
	t.L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// callShortcut invokes the script's on_shortcut, if defined.
func (t *Tool) callShortcut(chord string) error {
	fn := t.L.GetGlobal("on_shortcut")
	if fn == lua.LNil {
		return nil
	}
	return t.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LString(chord))
}

// moduleLoader builds the vectra module table for one script.
func moduleLoader(host Host, reg *registration) lua.LGFunction {
	return func(L *lua.LState) int {
		exports := map[string]lua.LGFunction{
			"register": func(L *lua.LState) int {
				tbl := L.CheckTable(1)
				reg.registered = true
				reg.id = lua.LVAsString(L.GetField(tbl, "id"))
				reg.description = lua.LVAsString(L.GetField(tbl, "description"))
				if deps, ok := L.GetField(tbl, "dependencies").(*lua.LTable); ok {
					deps.ForEach(func(_, v lua.LValue) {
						reg.dependencies = append(reg.dependencies, lua.LVAsString(v))
					})
				}
				if scs, ok := L.GetField(tbl, "shortcuts").(*lua.LTable); ok {
					scs.ForEach(func(_, v lua.LValue) {
						sc, ok := v.(*lua.LTable)
						if !ok {
							return
						}
						reg.shortcuts = append(reg.shortcuts, plugin.Shortcut{
							Chord:       lua.LVAsString(L.GetField(sc, "chord")),
							Description: lua.LVAsString(L.GetField(sc, "description")),
						})
					})
				}
				return 0
			},
			"select_command": func(L *lua.LState) int {
				host.Store.SelectCommand(L.CheckString(1), L.OptBool(2, false))
				return 0
			},
			"clear_selection": func(L *lua.LState) int {
				host.Store.ClearSelection()
				return 0
			},
			"update_command": func(L *lua.LState) int {
				id := L.CheckString(1)
				tbl := L.CheckTable(2)
				var upd scene.CommandUpdate
				setField := func(name string, dst **float64) {
					if n, ok := L.GetField(tbl, name).(lua.LNumber); ok {
						*dst = scene.F(float64(n))
					}
				}
				setField("x", &upd.X)
				setField("y", &upd.Y)
				setField("x1", &upd.X1)
				setField("y1", &upd.Y1)
				setField("x2", &upd.X2)
				setField("y2", &upd.Y2)
				if !host.Store.UpdateCommand(id, upd) {
					L.RaiseError("update_command: unknown command %q", id)
				}
				return 0
			},
			"move_command": func(L *lua.LState) int {
				id := L.CheckString(1)
				to := geom.Pt(float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
				if !host.Store.MoveCommand(id, to) {
					L.RaiseError("move_command: unknown command %q", id)
				}
				return 0
			},
			"set_mode": func(L *lua.LState) int {
				if host.Modes == nil {
					return 0
				}
				if err := host.Modes.Switch(mode.Mode(L.CheckString(1))); err != nil {
					L.RaiseError("set_mode: %v", err)
				}
				return 0
			},
			"log": func(L *lua.LState) int {
				host.Log.Info("%s", L.CheckString(1))
				return 0
			},
		}
		mod := L.SetFuncs(L.NewTable(), exports)
		L.Push(mod)
		return 1
	}
}
