package graphics

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"aios/hal"

	"tinygo.org/x/drivers"
)

// ErrUnsupportedPixelFormat is the panic value for a frame buffer layout the
// writer cannot draw to.
var ErrUnsupportedPixelFormat = errors.New("graphics: unsupported pixel format")

// PixelDrawer is anything a glyph can be rasterized onto.
type PixelDrawer interface {
	DrawPixel(pos Coord, c PixelColor)
}

// pixelEncoder stores one color into a pixel slot; chosen once per writer.
type pixelEncoder interface {
	put(slot []byte, c PixelColor)
}

type rgbEncoder struct{}

func (rgbEncoder) put(slot []byte, c PixelColor) {
	slot[0] = c.R
	slot[1] = c.G
	slot[2] = c.B
}

type bgrEncoder struct{}

func (bgrEncoder) put(slot []byte, c PixelColor) {
	slot[0] = c.B
	slot[1] = c.G
	slot[2] = c.R
}

// PixelWriter draws single pixels into a linear 32-bit frame buffer.
type PixelWriter struct {
	fb     hal.FrameBuffer
	bounds Rect
	enc    pixelEncoder
}

// NewPixelWriter binds a writer to fb. Layouts other than RGB/BGR with a
// reserved byte panic with ErrUnsupportedPixelFormat.
func NewPixelWriter(fb hal.FrameBuffer) *PixelWriter {
	var enc pixelEncoder
	switch fb.Format {
	case hal.PixelFormatRGBReserved8:
		enc = rgbEncoder{}
	case hal.PixelFormatBGRReserved8:
		enc = bgrEncoder{}
	default:
		panic(fmt.Errorf("%w: %s", ErrUnsupportedPixelFormat, fb.Format))
	}
	return &PixelWriter{
		fb:     fb,
		bounds: NewRect(Coord{}, Size{W: fb.Width, H: fb.Height}),
		enc:    enc,
	}
}

// DrawPixel writes c at pos. pos is not checked against Bounds; callers clip.
// Only the three color bytes of the slot are touched.
func (w *PixelWriter) DrawPixel(pos Coord, c PixelColor) {
	off := (pos.Y*w.fb.Stride + pos.X) * hal.BytesPerPixel
	w.enc.put(w.fb.Buf[off:off+3:off+3], c)
}

func (w *PixelWriter) Width() int  { return w.fb.Width }
func (w *PixelWriter) Height() int { return w.fb.Height }

// Bounds is the visible area of the frame buffer.
func (w *PixelWriter) Bounds() Rect { return w.bounds }

// FrameBuffer returns the descriptor the writer was built from.
func (w *PixelWriter) FrameBuffer() hal.FrameBuffer { return w.fb }

// FillRect paints every pixel of r with c. r is not clipped.
func FillRect(d PixelDrawer, r Rect, c PixelColor) {
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			d.DrawPixel(Coord{X: r.X + dx, Y: r.Y + dy}, c)
		}
	}
}

// clipDrawer drops pixels outside clip before they reach the writer.
type clipDrawer struct {
	base PixelDrawer
	clip Rect
}

func (d clipDrawer) DrawPixel(pos Coord, c PixelColor) {
	if !d.clip.Contains(pos) {
		return
	}
	d.base.DrawPixel(pos, c)
}

// Displayer adapts w to the TinyGo drivers interface, clipped to Bounds.
// The adapter must only be used while w is held. drivers coordinates are
// int16, so Size saturates at 32767 and pixels beyond that are unreachable.
func (w *PixelWriter) Displayer() drivers.Displayer {
	return displayer{w: w}
}

type displayer struct {
	w *PixelWriter
}

func (d displayer) Size() (x, y int16) {
	return clampInt16(d.w.fb.Width), clampInt16(d.w.fb.Height)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	p := Coord{X: int(x), Y: int(y)}
	if !d.w.bounds.Contains(p) {
		return
	}
	d.w.DrawPixel(p, PixelColor{R: c.R, G: c.G, B: c.B})
}

func (d displayer) Display() error { return nil }

func clampInt16(v int) int16 {
	return int16(min(max(v, 0), math.MaxInt16))
}
