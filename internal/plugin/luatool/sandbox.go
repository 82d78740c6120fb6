package luatool

import (
	lua "github.com/yuin/gopher-lua"
)

// safeModules are the gopher-lua built-ins scripts may require.
var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// installSandbox strips the escape hatches from a fresh state: no file
// loading, no disk-backed require, no os or io.
func installSandbox(L *lua.LState) {
	// lua.NewState opens the full stdlib; drop the dangerous globals.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "io", "os", "debug", "channel"} {
		L.SetGlobal(name, lua.LNil)
	}

	// Clear package.path and package.cpath so nothing loads from disk.
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	originalRequire := L.GetGlobal("require")
	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)
		if !safeModules[modName] && modName != moduleName {
			L.RaiseError("module %q is not available", modName)
			return 0 // unreachable
		}
		L.Push(originalRequire)
		L.Push(lua.LString(modName))
		L.Call(1, 1)
		return 1
	}))
}
