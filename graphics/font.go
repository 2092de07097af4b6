package graphics

import "fmt"

const (
	// GlyphWidth and GlyphHeight are the bitmap size of one glyph; each row is
	// one byte, most significant bit leftmost.
	GlyphWidth  = 8
	GlyphHeight = 16

	// CellPadding is the blank space right of and below every glyph.
	CellPadding = 2

	fallbackGlyph = '?'
)

// Font is an immutable monospaced bitmap font. Safe for concurrent use.
type Font struct {
	table  []byte
	glyphs int
}

// NewFont wraps a glyph table of GlyphHeight bytes per code point, starting
// at code point 0. The table must at least cover the fallback glyph '?'.
func NewFont(table []byte) *Font {
	if len(table)%GlyphHeight != 0 || len(table) < (fallbackGlyph+1)*GlyphHeight {
		panic(fmt.Sprintf("graphics: glyph table of %d bytes", len(table)))
	}
	return &Font{table: table, glyphs: len(table) / GlyphHeight}
}

// CharSize is the cell one character occupies, padding included.
func (f *Font) CharSize() Size {
	return Size{W: GlyphWidth + CellPadding, H: GlyphHeight + CellPadding}
}

// Glyphs is the number of code points the table covers.
func (f *Font) Glyphs() int { return f.glyphs }

// lookup maps r to the code point that is actually drawn.
func (f *Font) lookup(r rune) byte {
	if r < 0 || int(r) >= f.glyphs {
		return fallbackGlyph
	}
	return byte(r)
}

// DrawChar paints the full cell of r with its top-left corner at pos: glyph
// bits in fg, everything else in bg. Runes outside the table draw as '?'.
func (f *Font) DrawChar(d PixelDrawer, pos Coord, fg, bg PixelColor, r rune) {
	glyph := f.table[int(f.lookup(r))*GlyphHeight:][:GlyphHeight]
	cell := f.CharSize()
	for dy := 0; dy < cell.H; dy++ {
		var row byte
		if dy < GlyphHeight {
			row = glyph[dy]
		}
		for dx := 0; dx < cell.W; dx++ {
			c := bg
			if dx < GlyphWidth && row&(0x80>>dx) != 0 {
				c = fg
			}
			d.DrawPixel(Coord{X: pos.X + dx, Y: pos.Y + dy}, c)
		}
	}
}

// DrawStr draws s on one line starting at pos. No wrapping.
func (f *Font) DrawStr(d PixelDrawer, pos Coord, fg, bg PixelColor, s string) {
	w := f.CharSize().W
	for _, r := range s {
		f.DrawChar(d, pos, fg, bg, r)
		pos.X += w
	}
}
