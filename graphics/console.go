package graphics

import (
	"io"
	"unicode/utf8"
)

// ConsoleConfig selects the console colors.
type ConsoleConfig struct {
	Foreground PixelColor
	Background PixelColor
}

// DefaultConsoleConfig is white text on black.
func DefaultConsoleConfig() ConsoleConfig {
	return ConsoleConfig{Foreground: White, Background: Black}
}

// Console is a character grid over the frame buffer.
//
// cells mirrors the screen: every non-zero cell is painted with its glyph and
// zero cells are background. Writing into the last column is dropped, not
// wrapped. A newline on the last row scrolls by repainting everything.
type Console struct {
	resolution Size
	bounds     Rect
	rows       int
	columns    int
	cursor     Coord
	font       *Font
	fg, bg     PixelColor
	cells      []byte
}

// NewConsole returns a console covering resolution with the default colors.
// It draws nothing until Flush.
func NewConsole(resolution Size, font *Font) *Console {
	return NewConsoleWithConfig(resolution, font, DefaultConsoleConfig())
}

func NewConsoleWithConfig(resolution Size, font *Font, cfg ConsoleConfig) *Console {
	cell := font.CharSize()
	rows := resolution.H / cell.H
	columns := resolution.W / cell.W
	return &Console{
		resolution: resolution,
		bounds:     NewRect(Coord{}, resolution),
		rows:       rows,
		columns:    columns,
		font:       font,
		fg:         cfg.Foreground,
		bg:         cfg.Background,
		cells:      make([]byte, rows*columns),
	}
}

func (c *Console) Rows() int        { return c.rows }
func (c *Console) Columns() int     { return c.columns }
func (c *Console) Cursor() Coord    { return c.cursor }
func (c *Console) Resolution() Size { return c.resolution }

// Colors returns the foreground and background colors.
func (c *Console) Colors() (fg, bg PixelColor) {
	return c.fg, c.bg
}

// Cell returns the character stored at grid position (x, y), 0 if blank or
// outside the grid.
func (c *Console) Cell(x, y int) byte {
	if x < 0 || x >= c.columns || y < 0 || y >= c.rows {
		return 0
	}
	return c.cells[y*c.columns+x]
}

// Line returns row y up to its first blank cell.
func (c *Console) Line(y int) string {
	if y < 0 || y >= c.rows {
		return ""
	}
	row := c.row(y)
	for i, b := range row {
		if b == 0 {
			return string(row[:i])
		}
	}
	return string(row)
}

// Lines returns every row as Line does.
func (c *Console) Lines() []string {
	out := make([]string, c.rows)
	for y := range out {
		out[y] = c.Line(y)
	}
	return out
}

// Flush paints the whole resolution with the background color.
func (c *Console) Flush(d PixelDrawer) {
	FillRect(d, c.clip(d).clip, c.bg)
}

// Clear blanks the buffer, homes the cursor and flushes.
func (c *Console) Clear(d PixelDrawer) {
	clear(c.cells)
	c.cursor = Coord{}
	c.Flush(d)
}

// PutString writes s at the cursor.
func (c *Console) PutString(d PixelDrawer, s string) {
	for _, r := range s {
		c.put(d, r)
	}
}

// Writer returns an io.Writer that feeds UTF-8 text into the console through d.
// Invalid encodings are written as '?'. Writes never fail.
func (c *Console) Writer(d PixelDrawer) io.Writer {
	return consoleWriter{c: c, d: d}
}

type consoleWriter struct {
	c *Console
	d PixelDrawer
}

func (w consoleWriter) Write(p []byte) (int, error) {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		w.c.put(w.d, r)
		i += size
	}
	return len(p), nil
}

func (c *Console) put(d PixelDrawer, r rune) {
	if r == '\n' {
		c.newline(d)
		return
	}
	if c.cursor.X >= c.columns-1 || c.rows == 0 {
		return
	}
	ch := c.font.lookup(r)
	c.drawCell(d, c.cursor, ch)
	c.cells[c.cursor.Y*c.columns+c.cursor.X] = ch
	c.cursor.X++
}

func (c *Console) newline(d PixelDrawer) {
	c.cursor.X = 0
	if c.cursor.Y < c.rows-1 {
		c.cursor.Y++
		return
	}
	if c.rows > 0 {
		c.scroll(d)
	}
}

// scroll shifts every row up by one and repaints the whole screen from the
// buffer. The cursor stays on the last row.
func (c *Console) scroll(d PixelDrawer) {
	c.Flush(d)
	for y := 0; y < c.rows-1; y++ {
		copy(c.row(y), c.row(y+1))
		c.redrawRow(d, y)
	}
	clear(c.row(c.rows - 1))
}

func (c *Console) redrawRow(d PixelDrawer, y int) {
	for x, ch := range c.row(y) {
		if ch == 0 {
			continue
		}
		c.drawCell(d, Coord{X: x, Y: y}, ch)
	}
}

func (c *Console) drawCell(d PixelDrawer, grid Coord, ch byte) {
	cell := c.font.CharSize()
	pos := Coord{X: grid.X * cell.W, Y: grid.Y * cell.H}
	c.font.DrawChar(c.clip(d), pos, c.fg, c.bg, rune(ch))
}

// clip restricts d to the console's resolution and, when d reports its own
// Bounds, to the frame buffer as well.
func (c *Console) clip(d PixelDrawer) clipDrawer {
	r := c.bounds
	if b, ok := d.(interface{ Bounds() Rect }); ok {
		r = r.Intersect(b.Bounds())
	}
	return clipDrawer{base: d, clip: r}
}

func (c *Console) row(y int) []byte {
	return c.cells[y*c.columns : (y+1)*c.columns]
}
