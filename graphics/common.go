// Package graphics is the kernel's first output stack: a pixel writer over
// the loader's frame buffer, a fixed-cell bitmap font and a scrolling text
// console, plus the process-wide instances the print functions go through.
package graphics

import "image/color"

// PixelColor is an opaque 24-bit color.
type PixelColor struct {
	R, G, B uint8
}

// RGBA converts c to an opaque color.RGBA.
func (c PixelColor) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Coord is a position in either pixel space or character-grid space.
// Callers convert between the two by scaling with Font.CharSize.
type Coord struct {
	X, Y int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Size is a width/height pair.
type Size struct {
	W, H int
}

var (
	Black = PixelColor{0, 0, 0}
	White = PixelColor{255, 255, 255}
)
