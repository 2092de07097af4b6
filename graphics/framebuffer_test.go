package graphics

import (
	"errors"
	"image/color"
	"testing"

	"aios/hal"
)

func newTestFrameBuffer(width, height, stride int, format hal.PixelFormat) hal.FrameBuffer {
	return hal.FrameBuffer{
		Buf:    make([]byte, stride*height*hal.BytesPerPixel),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

func slotAt(fb hal.FrameBuffer, x, y int) []byte {
	off := (y*fb.Stride + x) * hal.BytesPerPixel
	return fb.Buf[off : off+hal.BytesPerPixel]
}

func TestDrawPixelByteOrder(t *testing.T) {
	for _, tc := range []struct {
		format hal.PixelFormat
		want   [3]byte
	}{
		{hal.PixelFormatRGBReserved8, [3]byte{0x11, 0x22, 0x33}},
		{hal.PixelFormatBGRReserved8, [3]byte{0x33, 0x22, 0x11}},
	} {
		fb := newTestFrameBuffer(4, 3, 4, tc.format)
		slot := slotAt(fb, 2, 1)
		slot[3] = 0xEE

		w := NewPixelWriter(fb)
		w.DrawPixel(Coord{X: 2, Y: 1}, PixelColor{R: 0x11, G: 0x22, B: 0x33})

		if slot[0] != tc.want[0] || slot[1] != tc.want[1] || slot[2] != tc.want[2] {
			t.Fatalf("%s: slot = % x, want % x", tc.format, slot[:3], tc.want)
		}
		if slot[3] != 0xEE {
			t.Fatalf("%s: reserved byte = %#x, want 0xee", tc.format, slot[3])
		}
	}
}

func TestDrawPixelHonorsStride(t *testing.T) {
	fb := newTestFrameBuffer(3, 2, 5, hal.PixelFormatRGBReserved8)
	w := NewPixelWriter(fb)
	w.DrawPixel(Coord{X: 0, Y: 1}, White)

	for i, b := range fb.Buf {
		want := byte(0)
		if i >= 20 && i < 23 {
			want = 0xFF
		}
		if b != want {
			t.Fatalf("Buf[%d] = %#x, want %#x", i, b, want)
		}
	}
}

func TestNewPixelWriterUnsupportedFormat(t *testing.T) {
	for _, f := range []hal.PixelFormat{hal.PixelFormatBitMask, hal.PixelFormatBltOnly, hal.PixelFormat(42)} {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrUnsupportedPixelFormat) {
					t.Fatalf("format %d: recover() = %v, want ErrUnsupportedPixelFormat", f, err)
				}
			}()
			NewPixelWriter(newTestFrameBuffer(2, 2, 2, f))
		}()
	}
}

func TestPixelWriterBounds(t *testing.T) {
	w := NewPixelWriter(newTestFrameBuffer(7, 5, 8, hal.PixelFormatRGBReserved8))
	if got := w.Bounds(); got != (Rect{W: 7, H: 5}) {
		t.Fatalf("Bounds() = %+v, want {0 0 7 5}", got)
	}
	if w.Width() != 7 || w.Height() != 5 {
		t.Fatalf("size = %dx%d, want 7x5", w.Width(), w.Height())
	}
}

func TestFillRect(t *testing.T) {
	fb := newTestFrameBuffer(4, 4, 4, hal.PixelFormatRGBReserved8)
	w := NewPixelWriter(fb)
	FillRect(w, Rect{X: 1, Y: 1, W: 2, H: 2}, PixelColor{R: 9})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			if got := slotAt(fb, x, y)[0] == 9; got != inside {
				t.Fatalf("pixel (%d,%d) painted = %v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestDisplayerClips(t *testing.T) {
	fb := newTestFrameBuffer(2, 2, 2, hal.PixelFormatBGRReserved8)
	d := NewPixelWriter(fb).Displayer()

	if x, y := d.Size(); x != 2 || y != 2 {
		t.Fatalf("Size() = %d,%d, want 2,2", x, y)
	}
	d.SetPixel(-1, 0, color.RGBA{R: 1, A: 255})
	d.SetPixel(2, 1, color.RGBA{R: 1, A: 255})
	d.SetPixel(0, 2, color.RGBA{R: 1, A: 255})
	for i, b := range fb.Buf {
		if b != 0 {
			t.Fatalf("Buf[%d] = %#x after out-of-bounds SetPixel", i, b)
		}
	}

	d.SetPixel(1, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	if s := slotAt(fb, 1, 1); s[0] != 3 || s[1] != 2 || s[2] != 1 {
		t.Fatalf("slot = % x, want 03 02 01", s[:3])
	}
	if err := d.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
}

func TestDisplayerSizeSaturates(t *testing.T) {
	fb := newTestFrameBuffer(40000, 1, 40000, hal.PixelFormatRGBReserved8)
	if x, y := NewPixelWriter(fb).Displayer().Size(); x != 32767 || y != 1 {
		t.Fatalf("Size() = %d,%d, want 32767,1", x, y)
	}
}
