// Package vga8x16 embeds the kernel's console glyphs: the standard 8x16 VGA
// bitmaps for code points 0x00-0x7f.
package vga8x16

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	width    = 8
	height   = 16
	baseline = 12 // rows above the baseline, descenders below
)

// Font exposes Glyphs through tinyfont. Unlike the console renderer it only
// paints set bits, so text drawn with it is transparent.
//
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font8x16{}

type font8x16 struct {
	g glyph
}

type glyph struct {
	r rune
}

func glyphIndex(r rune) int {
	if r < 0 || int(r) >= len(Glyphs)/height {
		return '?'
	}
	return int(r)
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	base := glyphIndex(g.r) * height
	for row := 0; row < height; row++ {
		b := Glyphs[base+row]
		for col := 0; col < width; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-baseline+int16(row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    width,
		Height:   height,
		XAdvance: width,
		XOffset:  0,
		YOffset:  -baseline,
	}
}

func (f *font8x16) GetYAdvance() uint8 { return height }

func (f *font8x16) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}
