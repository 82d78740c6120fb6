package app

import (
	"fmt"

	"github.com/vectra-editor/vectra/internal/dispatch"
	"github.com/vectra-editor/vectra/internal/input/key"
	"github.com/vectra-editor/vectra/internal/input/mode"
	"github.com/vectra-editor/vectra/internal/input/pointer"
	"github.com/vectra-editor/vectra/internal/plugin"
	"github.com/vectra-editor/vectra/internal/scene"
	"github.com/vectra-editor/vectra/internal/text"
)

// builtinPlugins assembles the built-in interaction plugins. Order
// matters: it is the base dispatch order.
func (a *App) builtinPlugins() []plugin.Plugin {
	return []plugin.Plugin{
		a.selectionPlugin(),
		a.pointerInteractionPlugin(),
		a.transformPlugin(),
		a.contextMenuPlugin(),
		a.textEditPlugin(),
		a.gesturesPlugin(),
		a.creationPlugin(mode.Curves, "p", "pen tool"),
		a.creationPlugin(mode.Shapes, "r", "shape tool"),
		a.creationPlugin(mode.Pencil, "n", "pencil tool"),
		a.creationPlugin(mode.TextPlacement, "t", "text tool"),
	}
}

// selectionPlugin carries the global selection shortcuts.
func (a *App) selectionPlugin() plugin.Plugin {
	return plugin.Plugin{
		ID:          "selection",
		Description: "selection management",
		Shortcuts: []plugin.Shortcut{
			{Chord: "escape", Description: "clear selection", Action: func() {
				if a.Modes.Current() == mode.TextEdit {
					a.Modes.Revert()
					return
				}
				a.Store.ClearSelection()
			}},
			{Chord: "v", Description: "select tool", Action: func() {
				a.Modes.Switch(mode.Select)
			}},
		},
	}
}

// pointerInteractionPlugin owns clicks on elements and control points,
// including control-point drags.
func (a *App) pointerInteractionPlugin() plugin.Plugin {
	log := a.Log.WithComponent(dispatch.PluginPointerInteraction)
	// anchorDrag is the command whose anchor is being dragged, or "".
	var anchorDrag string
	return plugin.Plugin{
		ID:          dispatch.PluginPointerInteraction,
		Description: "element and control point interaction",
		OnPointer: func(ev pointer.Event) bool {
			switch ev.Phase {
			case pointer.PhaseDown:
				anchorDrag = ""
				t := ev.Target
				if t.IsControlPoint() {
					if !a.Session.Start(t.CommandID, t.Field, ev.Point, ev.Time) {
						return false
					}
					a.Store.SelectCommand(t.CommandID, ev.Modifiers.Has(key.ModShift))
					return true
				}
				if t != nil && t.CommandID != "" {
					a.Store.SelectCommand(t.CommandID, ev.Modifiers.Has(key.ModShift))
					anchorDrag = t.CommandID
					return true
				}
				if t != nil {
					log.Debug("element %s selected", t.ElementID)
					return true
				}
				if a.Modes.Current() == mode.Select {
					a.Store.ClearSelection()
					return true
				}
				return false

			case pointer.PhaseMove:
				if a.Session.IsDragging() {
					a.Session.Move(ev.Point, ev.Modifiers.Has(key.ModAlt), ev.Time)
					return true
				}
				if anchorDrag != "" {
					a.Store.MoveCommand(anchorDrag, ev.Point)
					return true
				}
				return false

			case pointer.PhaseUp, pointer.PhaseCancel:
				if a.Session.IsDragging() {
					a.Session.End()
					a.Store.PushToHistory()
					return true
				}
				if anchorDrag != "" {
					anchorDrag = ""
					a.Store.PushToHistory()
					return true
				}
				return false
			}
			return false
		},
	}
}

// transformPlugin claims presses on selection transform handles.
func (a *App) transformPlugin() plugin.Plugin {
	log := a.Log.WithComponent(dispatch.PluginTransform)
	return plugin.Plugin{
		ID:           dispatch.PluginTransform,
		Description:  "scale and rotate via selection handles",
		Dependencies: []string{"selection"},
		OnPointer: func(ev pointer.Event) bool {
			if ev.Phase != pointer.PhaseDown || !ev.Target.IsHandle() {
				return false
			}
			if ev.Target.RotationHandle {
				log.Debug("rotation handle grabbed")
			} else {
				log.Debug("scale handle grabbed")
			}
			return true
		},
	}
}

// contextMenuPlugin claims secondary-button presses.
func (a *App) contextMenuPlugin() plugin.Plugin {
	log := a.Log.WithComponent(dispatch.PluginContextMenu)
	return plugin.Plugin{
		ID:          dispatch.PluginContextMenu,
		Description: "context menu",
		OnPointer: func(ev pointer.Event) bool {
			if ev.Phase != pointer.PhaseDown || ev.Button != pointer.ButtonRight {
				return false
			}
			log.Debug("context menu at (%.0f,%.0f)", ev.Point.X, ev.Point.Y)
			return true
		},
	}
}

// textEditPlugin enters text-edit mode on double click and edits the
// buffer while the mode is active.
func (a *App) textEditPlugin() plugin.Plugin {
	buf := text.NewBuffer("")
	return plugin.Plugin{
		ID:          dispatch.PluginTextEdit,
		Description: "in-place text editing",
		Shortcuts: []plugin.Shortcut{
			{Chord: "enter", Description: "edit selected text", Action: func() {
				if a.Store.HasTextSelection() {
					a.Modes.Switch(mode.TextEdit)
				}
			}},
			{Chord: "f2", Description: "edit selected text", Action: func() {
				if a.Store.HasTextSelection() {
					a.Modes.Switch(mode.TextEdit)
				}
			}},
		},
		OnPointer: func(ev pointer.Event) bool {
			if ev.Phase == pointer.PhaseDown && ev.DoubleClick && ev.Target.IsText() {
				a.Modes.Switch(mode.TextEdit)
				return true
			}
			return false
		},
		OnKeyDown: func(ev key.Event) bool {
			if a.Modes.Current() != mode.TextEdit {
				return false
			}
			switch ev.Key {
			case key.KeyRune:
				buf.Insert(string(ev.Rune))
			case key.KeySpace:
				buf.Insert(" ")
			case key.KeyBackspace:
				buf.DeleteBackward()
			case key.KeyDelete:
				buf.DeleteForward()
			case key.KeyLeft:
				buf.MoveLeft()
			case key.KeyRight:
				buf.MoveRight()
			case key.KeyHome:
				buf.MoveHome()
			case key.KeyEnd:
				buf.MoveEnd()
			default:
				return false
			}
			return true
		},
	}
}

// gesturesPlugin claims all touch input.
func (a *App) gesturesPlugin() plugin.Plugin {
	log := a.Log.WithComponent(dispatch.PluginGestures)
	return plugin.Plugin{
		ID:          dispatch.PluginGestures,
		Description: "touch gestures",
		OnPointer: func(ev pointer.Event) bool {
			if !ev.IsTouch() {
				return false
			}
			log.Debug("touch %s at (%.0f,%.0f)", ev.Phase, ev.Point.X, ev.Point.Y)
			return true
		},
	}
}

// creationPlugin builds a tool plugin for one creation mode: a
// shortcut that activates the mode and a pointer handler that creates
// content on empty-canvas presses.
func (a *App) creationPlugin(m mode.Mode, chord, description string) plugin.Plugin {
	log := a.Log.WithComponent(string(m))
	var pathSeq int
	return plugin.Plugin{
		ID:          string(m),
		Description: description,
		Shortcuts: []plugin.Shortcut{
			{Chord: chord, Description: description, Action: func() {
				a.Modes.Switch(m)
			}},
		},
		OnPointer: func(ev pointer.Event) bool {
			if ev.Phase != pointer.PhaseDown || ev.Target != nil || a.Modes.Current() != m {
				return false
			}
			if m == mode.Curves || m == mode.Pencil {
				pathSeq++
				id := fmt.Sprintf("%s-%d", m, pathSeq)
				x, y := ev.Point.X, ev.Point.Y
				// Seed a short cubic segment at the press point.
				d := fmt.Sprintf("M%g,%g C%g,%g,%g,%g,%g,%g",
					x, y, x+5, y-5, x+15, y-5, x+20, y)
				if _, err := a.Store.AddPathData(id, d, scene.Style{Stroke: "#000000", StrokeWidth: 1}); err != nil {
					log.Error("create path: %v", err)
					return false
				}
				a.Store.PushToHistory()
			} else {
				log.Debug("%s placement at (%.0f,%.0f)", m, ev.Point.X, ev.Point.Y)
			}
			return true
		},
	}
}
