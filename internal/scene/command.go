package scene

import (
	"fmt"

	"github.com/vectra-editor/vectra/internal/geom"
)

// Kind identifies a path-drawing instruction.
type Kind uint8

const (
	// KindMove starts a new sub-path at the anchor.
	KindMove Kind = iota
	// KindLine draws a straight segment to the anchor.
	KindLine
	// KindCubic draws a cubic Bézier segment; X1,Y1 and X2,Y2 are the
	// control points and X,Y the end anchor.
	KindCubic
	// KindClose closes the current sub-path. It has no anchor.
	KindClose
)

// String returns the SVG letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "M"
	case KindLine:
		return "L"
	case KindCubic:
		return "C"
	case KindClose:
		return "Z"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Command is one path-drawing instruction.
type Command struct {
	// ID is the stable opaque identifier.
	ID string

	// Kind discriminates the instruction.
	Kind Kind

	// X, Y is the end anchor. Unused for KindClose.
	X float64
	Y float64

	// X1, Y1 is the first control point (leaving the previous anchor).
	// Only meaningful for KindCubic.
	X1 float64
	Y1 float64

	// X2, Y2 is the second control point (entering this anchor).
	// Only meaningful for KindCubic.
	X2 float64
	Y2 float64
}

// Anchor returns the command's end anchor.
func (c *Command) Anchor() geom.Point {
	return geom.Pt(c.X, c.Y)
}

// Control1 returns the first control point (X1,Y1).
func (c *Command) Control1() geom.Point {
	return geom.Pt(c.X1, c.Y1)
}

// Control2 returns the second control point (X2,Y2).
func (c *Command) Control2() geom.Point {
	return geom.Pt(c.X2, c.Y2)
}

// HasAnchor returns true if the command carries an anchor point.
func (c *Command) HasAnchor() bool {
	return c.Kind != KindClose
}

// Clone returns a copy of the command.
func (c *Command) Clone() *Command {
	cp := *c
	return &cp
}

// SubPath is an ordered sequence of commands, open or closed.
type SubPath struct {
	// ID is the stable opaque identifier.
	ID string

	// Closed marks an explicitly closed contour.
	Closed bool

	// Commands is the ordered instruction list. The first command is
	// always a KindMove.
	Commands []*Command
}

// Index returns the position of the command with the given ID, or -1.
func (sp *SubPath) Index(id string) int {
	for i, c := range sp.Commands {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Path is a drawable element owning one or more sub-paths.
type Path struct {
	// ID is the stable opaque identifier.
	ID string

	// Style holds the paint attributes.
	Style Style

	// SubPaths is the ordered contour list.
	SubPaths []*SubPath
}
