// Package scene holds the editor's document model: paths, sub-paths,
// and the drawing commands they own, plus the Store interface through
// which the interaction core reads and mutates the document.
//
// The core never touches commands directly during an interaction; all
// writes go through Store capability calls (UpdateCommand, MoveCommand,
// PushToHistory, SelectCommand, ClearSelection) so a host can swap in
// its own persistence layer. MemStore is the in-memory implementation
// used by the demo host and the tests.
//
// Identity is by opaque string ID, stable across mutation. A Path
// exclusively owns its SubPaths; a SubPath exclusively owns its ordered
// Commands.
package scene
