// Package luatool loads tool plugins written in Lua.
//
// A tool script calls vectra.register{...} to declare its plugin ID,
// description, and shortcuts, and defines global on_pointer and
// on_shortcut functions for its behavior. Scripts run inside a sandbox
// with file loading removed and require restricted to the safe Lua
// built-ins plus the vectra module.
//
// gopher-lua's LState is not goroutine-safe. Loaded tools run their
// handlers on the dispatch goroutine, which is also the goroutine that
// loaded the script, so no cross-goroutine marshalling is needed.
package luatool
