// Package paint implements the stroke canvas, toolbar palette, gesture mode
// resolution and frame compositing for the air painter.
package paint

import (
	"fmt"
	"image"
	"image/color"
)

// ToolbarBand is the height in pixels of the toolbar hit band at the top of
// the frame. Fingertips above this line can select a swatch.
const ToolbarBand = 100

// Swatch binds a toolbar hit region to a header image and a drawing color.
// The x interval is open on both ends; the y band is 0..ToolbarBand.
type Swatch struct {
	XMin        int
	XMax        int
	HeaderIndex int
	Color       color.RGBA
}

// Palette is the ordered set of toolbar swatches.
type Palette []Swatch

// Drawing colors in the palette. Mats are BGR but gocv draw calls take
// color.RGBA, so these read naturally. Black doubles as the eraser: black
// strokes fall below the compositing mask threshold and restore the live
// frame underneath.
var (
	Red   = color.RGBA{R: 255}
	Blue  = color.RGBA{B: 255}
	Green = color.RGBA{G: 255}
	Black = color.RGBA{}
)

// DefaultPalette returns the four fixed toolbar regions for a 1280 px wide
// frame: red, blue, green and the black eraser.
func DefaultPalette() Palette {
	return Palette{
		{XMin: 60, XMax: 230, HeaderIndex: 0, Color: Red},
		{XMin: 380, XMax: 550, HeaderIndex: 1, Color: Blue},
		{XMin: 700, XMax: 870, HeaderIndex: 2, Color: Green},
		{XMin: 1030, XMax: 1250, HeaderIndex: 3, Color: Black},
	}
}

// Hit returns the swatch under the given fingertip position, if any.
func (p Palette) Hit(pt image.Point) (Swatch, bool) {
	if pt.Y >= ToolbarBand {
		return Swatch{}, false
	}
	for _, s := range p {
		if pt.X > s.XMin && pt.X < s.XMax {
			return s, true
		}
	}
	return Swatch{}, false
}

// ByIndex returns the swatch bound to the given header index.
func (p Palette) ByIndex(index int) (Swatch, error) {
	for _, s := range p {
		if s.HeaderIndex == index {
			return s, nil
		}
	}
	return Swatch{}, fmt.Errorf("no swatch with header index %d", index)
}
