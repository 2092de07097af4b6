//go:build !tinygo

package hal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unsafe"
)

func TestParsePixelFormat(t *testing.T) {
	for f := PixelFormatRGBReserved8; f <= PixelFormatBltOnly; f++ {
		got, ok := ParsePixelFormat(f.String())
		if !ok || got != f {
			t.Fatalf("ParsePixelFormat(%q) = %v, %v, want %v, true", f.String(), got, ok, f)
		}
	}
	if _, ok := ParsePixelFormat("rgb565"); ok {
		t.Fatal("expected rgb565 to be rejected")
	}
}

func TestBootFrameBufferAliasesRegion(t *testing.T) {
	region := make([]byte, 4*3*2)
	boot := &BootFrameBuffer{
		Base:   uintptr(unsafe.Pointer(&region[0])),
		Size:   uintptr(len(region)),
		Width:  2,
		Height: 2,
		Stride: 3,
		Format: PixelFormatBGRReserved8,
	}

	fb := boot.FrameBuffer()
	if fb.Size() != len(region) {
		t.Fatalf("Size() = %d, want %d", fb.Size(), len(region))
	}
	if fb.Width != 2 || fb.Height != 2 || fb.Stride != 3 || fb.Format != PixelFormatBGRReserved8 {
		t.Fatalf("unexpected descriptor: %+v", fb)
	}

	fb.Buf[5] = 0xAB
	if region[5] != 0xAB {
		t.Fatal("expected descriptor buffer to alias the boot region")
	}
}

func TestBootFrameBufferZeroBase(t *testing.T) {
	fb := (&BootFrameBuffer{Width: 10, Height: 10}).FrameBuffer()
	if fb.Buf != nil {
		t.Fatal("expected nil buffer for zero base")
	}
}

func TestHostFrameBufferGeometry(t *testing.T) {
	fb := newHostFrameBuffer(8, 4, 0, PixelFormatRGBReserved8)
	if fb.Stride != 8 {
		t.Fatalf("Stride = %d, want 8", fb.Stride)
	}
	if fb.Size() != 8*4*BytesPerPixel {
		t.Fatalf("Size() = %d, want %d", fb.Size(), 8*4*BytesPerPixel)
	}
	if fb.Base != uintptr(unsafe.Pointer(&fb.Buf[0])) {
		t.Fatal("Base does not match buffer address")
	}

	padded := newHostFrameBuffer(8, 4, 10, PixelFormatRGBReserved8)
	if padded.Size() != 10*4*BytesPerPixel {
		t.Fatalf("Size() = %d, want %d", padded.Size(), 10*4*BytesPerPixel)
	}
}

func TestToRGBAChannelOrder(t *testing.T) {
	for _, tc := range []struct {
		format PixelFormat
		slot   [4]byte
	}{
		{PixelFormatRGBReserved8, [4]byte{10, 20, 30, 0}},
		{PixelFormatBGRReserved8, [4]byte{30, 20, 10, 0}},
	} {
		fb := newHostFrameBuffer(2, 2, 3, tc.format)
		off := (1*fb.Stride + 1) * BytesPerPixel
		copy(fb.Buf[off:], tc.slot[:])

		img := ToRGBA(fb)
		c := img.RGBAAt(1, 1)
		if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 0xFF {
			t.Fatalf("%s: RGBAAt(1,1) = %+v, want {10 20 30 255}", tc.format, c)
		}
		if z := img.RGBAAt(0, 0); z.R != 0 || z.A != 0xFF {
			t.Fatalf("%s: RGBAAt(0,0) = %+v, want opaque black", tc.format, z)
		}
	}
}

func TestHostLoggerWritesLines(t *testing.T) {
	var out bytes.Buffer
	h := New(HostConfig{Width: 4, Height: 4, Format: PixelFormatRGBReserved8, LogLevel: "info", LogOut: &out})
	h.Logger().WriteLineString("fb ready")
	h.Logger().WriteLineBytes([]byte("console ready"))

	s := out.String()
	if !strings.Contains(s, "fb ready") || !strings.Contains(s, "console ready") {
		t.Fatalf("log output = %q", s)
	}
	if HostLog(h) == nil {
		t.Fatal("expected structured logger")
	}
}

func TestSavePNG(t *testing.T) {
	fb := newHostFrameBuffer(4, 4, 0, PixelFormatBGRReserved8)
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := SavePNG(fb, path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("expected PNG signature")
	}

	fb.Format = PixelFormatBltOnly
	if err := SavePNG(fb, path); err == nil {
		t.Fatal("expected error for blt-only format")
	}
}
