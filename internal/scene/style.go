package scene

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Style holds the paint attributes of a path element.
type Style struct {
	// Fill is the fill paint as written in the document ("#ff8800",
	// "none", a named color). Empty means inherit.
	Fill string

	// Stroke is the stroke paint, same forms as Fill.
	Stroke string

	// StrokeWidth is the stroke width in user units.
	StrokeWidth float64
}

// namedColors covers the handful of SVG color keywords the editor's
// tool palettes emit. Anything else must be written as hex.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
}

// ParseColor resolves a paint string to a color.
// Returns false for "", "none", and anything unparsable.
func ParseColor(paint string) (colorful.Color, bool) {
	paint = strings.ToLower(strings.TrimSpace(paint))
	if paint == "" || paint == "none" {
		return colorful.Color{}, false
	}

	if hex, ok := namedColors[paint]; ok {
		paint = hex
	}

	// Expand #rgb to #rrggbb.
	if len(paint) == 4 && paint[0] == '#' {
		paint = "#" + strings.Repeat(string(paint[1]), 2) +
			strings.Repeat(string(paint[2]), 2) +
			strings.Repeat(string(paint[3]), 2)
	}

	c, err := colorful.Hex(paint)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// FillColor resolves the fill paint. ok is false when there is no fill.
func (s Style) FillColor() (colorful.Color, bool) {
	return ParseColor(s.Fill)
}

// StrokeColor resolves the stroke paint. ok is false when there is no stroke.
func (s Style) StrokeColor() (colorful.Color, bool) {
	return ParseColor(s.Stroke)
}
