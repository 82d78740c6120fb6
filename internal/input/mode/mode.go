package mode

// Mode names a tool mode. The zero value is not a valid mode; use
// Select as the default.
type Mode string

const (
	// Select is the default mode: hit testing, selection, dragging.
	Select Mode = "select"

	// Curves is the Bézier pen tool.
	Curves Mode = "curves"

	// Shapes is the primitive shape tool.
	Shapes Mode = "shapes"

	// Pencil is the freehand drawing tool.
	Pencil Mode = "pencil"

	// TextPlacement places new text elements.
	TextPlacement Mode = "text-placement"

	// TextEdit is the in-place text editing mode.
	TextEdit Mode = "text-edit"
)

// Valid reports whether m names a known mode.
func (m Mode) Valid() bool {
	switch m {
	case Select, Curves, Shapes, Pencil, TextPlacement, TextEdit:
		return true
	}
	return false
}

// IsCreation reports whether the mode creates new content on
// empty-canvas clicks.
func (m Mode) IsCreation() bool {
	switch m {
	case Curves, Shapes, Pencil, TextPlacement:
		return true
	}
	return false
}

// PluginID returns the ID of the tool plugin that owns this mode's
// canvas clicks, or "" for modes without one.
func (m Mode) PluginID() string {
	if m.IsCreation() {
		return string(m)
	}
	return ""
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}
