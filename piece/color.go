package piece

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is the tag a settled cell carries. ColorNone marks an empty cell.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

var palette = [...]color.RGBA{
	ColorNone:   {0, 0, 0, 255},
	ColorCyan:   {0, 240, 240, 255},
	ColorYellow: {240, 240, 0, 255},
	ColorPurple: {160, 0, 240, 255},
	ColorGreen:  {0, 240, 0, 255},
	ColorRed:    {240, 0, 0, 255},
	ColorBlue:   {0, 0, 240, 255},
	ColorOrange: {240, 160, 0, 255},
}

// Empty reports whether c is the empty cell tag.
func (c Color) Empty() bool {
	return c == ColorNone
}

// RGBA returns the display color. Unknown tags render as black.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[ColorNone]
	}
	return palette[c]
}

// Hex returns the display color as a #rrggbb string.
func (c Color) Hex() string {
	clr, _ := colorful.MakeColor(c.RGBA())
	return clr.Hex()
}

// Kind returns the piece kind whose cells carry this color.
func (c Color) Kind() (Kind, bool) {
	if c == ColorNone || int(c) > KindCount {
		return 0, false
	}
	return Kind(c - 1), true
}
