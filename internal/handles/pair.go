package handles

import (
	"github.com/vectra-editor/vectra/internal/geom"
	"github.com/vectra-editor/vectra/internal/scene"
)

// Field names a control-point slot on a command.
type Field uint8

const (
	// FieldControl1 is a command's (X1,Y1): the handle leaving the
	// previous command's anchor.
	FieldControl1 Field = iota
	// FieldControl2 is a command's (X2,Y2): the handle entering the
	// command's own anchor.
	FieldControl2
)

// String returns a short name for the field.
func (f Field) String() string {
	if f == FieldControl1 {
		return "control1"
	}
	return "control2"
}

// Handle locates one concrete control point in the document.
type Handle struct {
	// CommandID is the command whose fields store the handle.
	CommandID string

	// Field selects which control slot.
	Field Field

	// Pos is the handle's position at resolution time.
	Pos geom.Point
}

// PosIn reads the handle's live position from the store.
// ok is false when the command is gone.
func (h Handle) PosIn(st scene.Store) (geom.Point, bool) {
	cmd := st.Command(h.CommandID)
	if cmd == nil {
		return geom.Point{}, false
	}
	if h.Field == FieldControl1 {
		return cmd.Control1(), true
	}
	return cmd.Control2(), true
}

// Update builds the store update that writes pos into the handle's slot.
func (h Handle) Update(pos geom.Point) scene.CommandUpdate {
	if h.Field == FieldControl1 {
		return scene.CommandUpdate{X1: scene.F(pos.X), Y1: scene.F(pos.Y)}
	}
	return scene.CommandUpdate{X2: scene.F(pos.X), Y2: scene.F(pos.Y)}
}

// PairInfo describes a dragged handle, its shared anchor, and its
// partner on the other side of that anchor.
type PairInfo struct {
	// AnchorID is the command owning the shared anchor point.
	AnchorID string

	// Anchor is the shared anchor position.
	Anchor geom.Point

	// Moved is the dragged handle.
	Moved Handle

	// Partner is the paired handle, nil when unresolvable.
	Partner *Handle

	// Type is the classification at resolution time.
	Type PairType
}

// ResolvePair locates the pair for a drag starting on the given
// command's control slot. A missing command, a non-cubic dragged
// command, or an unresolvable partner all degrade to an Independent
// pair (Partner nil) — never an error.
func ResolvePair(st scene.Store, commandID string, field Field) (PairInfo, bool) {
	cmd := st.Command(commandID)
	if cmd == nil || cmd.Kind != scene.KindCubic {
		return PairInfo{}, false
	}

	info := PairInfo{
		Moved: Handle{CommandID: commandID, Field: field},
	}

	switch field {
	case FieldControl2:
		// Dragging the handle entering cmd's anchor; the partner leaves
		// that anchor on the next command.
		info.Moved.Pos = cmd.Control2()
		info.AnchorID = cmd.ID
		info.Anchor = cmd.Anchor()
		if _, next := st.Neighbors(commandID); next != nil && next.Kind == scene.KindCubic {
			info.Partner = &Handle{
				CommandID: next.ID,
				Field:     FieldControl1,
				Pos:       next.Control1(),
			}
		}

	case FieldControl1:
		// Dragging the handle leaving the previous anchor; the partner
		// enters that anchor on the previous command.
		info.Moved.Pos = cmd.Control1()
		prev, _ := st.Neighbors(commandID)
		if prev == nil || !prev.HasAnchor() {
			return PairInfo{}, false
		}
		info.AnchorID = prev.ID
		info.Anchor = prev.Anchor()
		if prev.Kind == scene.KindCubic {
			info.Partner = &Handle{
				CommandID: prev.ID,
				Field:     FieldControl2,
				Pos:       prev.Control2(),
			}
		}
	}

	info.Type = classifyPair(info)
	return info, true
}

// classifyPair classifies using the pair's current handle positions.
func classifyPair(info PairInfo) PairType {
	if info.Partner == nil {
		return Independent
	}
	moved := info.Moved.Pos
	partner := info.Partner.Pos
	return Classify(info.Anchor, &moved, &partner)
}

// Reclassify re-runs classification against live positions with a
// caller-supplied tolerance, for drag-time re-coupling.
func (p PairInfo) Reclassify(moved geom.Point, dotThreshold float64) PairType {
	if p.Partner == nil {
		return Independent
	}
	partner := p.Partner.Pos
	return ClassifyTol(p.Anchor, &moved, &partner, dotThreshold)
}
