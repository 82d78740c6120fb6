package pointer

import (
	"time"

	"github.com/vectra-editor/vectra/internal/geom"
	"github.com/vectra-editor/vectra/internal/handles"
	"github.com/vectra-editor/vectra/internal/input/key"
)

// Device identifies the input device behind a pointer event.
type Device uint8

const (
	// DeviceMouse is a mouse or trackpad pointer.
	DeviceMouse Device = iota
	// DeviceTouch is a direct touch contact.
	DeviceTouch
	// DevicePen is a stylus.
	DevicePen
)

// String returns the device name.
func (d Device) String() string {
	switch d {
	case DeviceTouch:
		return "touch"
	case DevicePen:
		return "pen"
	default:
		return "mouse"
	}
}

// Button identifies a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button (hover moves).
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonMiddle is the wheel button.
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// Phase identifies where in the pointer lifecycle an event sits.
type Phase uint8

const (
	// PhaseDown is a button or contact press.
	PhaseDown Phase = iota
	// PhaseMove is pointer movement.
	PhaseMove
	// PhaseUp is a button or contact release.
	PhaseUp
	// PhaseCancel is a host-aborted interaction.
	PhaseCancel
	// PhaseWheel is scroll wheel movement.
	PhaseWheel
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return "wheel"
	}
}

// ElementType classifies the document element under the pointer.
type ElementType string

const (
	// ElementPath is a vector path.
	ElementPath ElementType = "path"
	// ElementText is a text element.
	ElementText ElementType = "text"
	// ElementGroup is a group container.
	ElementGroup ElementType = "group"
)

// Target describes what the hit test found under the pointer.
// A nil *Target means empty canvas.
type Target struct {
	// ElementType classifies the hit element.
	ElementType ElementType

	// ElementID is the hit element's ID.
	ElementID string

	// DataElementID is the logical ID carried by text-bearing elements.
	// Rendered text may be rebuilt between frames; the logical ID stays
	// stable across rebuilds where ElementID does not.
	DataElementID string

	// CommandID is set when the pointer is over a path command's
	// control point, together with Field.
	CommandID string

	// ControlPoint reports whether the hit is a control-point grip.
	ControlPoint bool

	// Field selects which control slot when ControlPoint is set.
	Field handles.Field

	// TransformHandle reports a hit on a selection scale handle.
	TransformHandle bool

	// RotationHandle reports a hit on a selection rotation handle.
	RotationHandle bool
}

// IsHandle reports a hit on any selection transform handle.
func (t *Target) IsHandle() bool {
	return t != nil && (t.TransformHandle || t.RotationHandle)
}

// IsControlPoint reports a hit on a path control-point grip.
func (t *Target) IsControlPoint() bool {
	return t != nil && t.ControlPoint
}

// IsText reports a hit on a text-bearing element.
func (t *Target) IsText() bool {
	return t != nil && t.ElementType == ElementText
}

// LogicalID is the identity used for click-sequence matching: the
// stable data ID when present, the element ID otherwise.
func (t *Target) LogicalID() string {
	if t == nil {
		return ""
	}
	if t.DataElementID != "" {
		return t.DataElementID
	}
	return t.ElementID
}

// SameAs reports whether two targets are the same for click-sequence
// purposes. Two empty-canvas hits match; a canvas hit never matches an
// element hit.
func (t *Target) SameAs(o *Target) bool {
	if t == nil || o == nil {
		return t == nil && o == nil
	}
	return t.LogicalID() == o.LogicalID()
}

// Event is one pointer event from the host surface.
type Event struct {
	// Point is the position in document coordinates.
	Point geom.Point

	// Button is the pressed button, ButtonNone for hover and touch.
	Button Button

	// Device is the originating input device.
	Device Device

	// Phase is the lifecycle phase.
	Phase Phase

	// Modifiers holds the keyboard modifier state at event time.
	Modifiers key.Modifier

	// Target is the hit-test result, nil over empty canvas.
	Target *Target

	// WheelDelta is the scroll amount for PhaseWheel events.
	WheelDelta geom.Point

	// ClickCount and DoubleClick are stamped by the dispatcher on
	// PhaseDown events before any plugin sees them. Hosts leave them
	// zero.
	ClickCount  int
	DoubleClick bool

	// Time is when the event occurred.
	Time time.Time
}

// IsTouch reports whether the event came from a touch contact.
func (e Event) IsTouch() bool {
	return e.Device == DeviceTouch
}
