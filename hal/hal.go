package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat is the byte layout of one 32-bit pixel slot. Values match the
// UEFI GOP pixel format enumeration handed over by the loader.
type PixelFormat uint32

const (
	// PixelFormatRGBReserved8 is r, g, b, reserved.
	PixelFormatRGBReserved8 PixelFormat = iota
	// PixelFormatBGRReserved8 is b, g, r, reserved.
	PixelFormatBGRReserved8
	// PixelFormatBitMask uses per-channel masks; not drawable by the kernel.
	PixelFormatBitMask
	// PixelFormatBltOnly has no linear frame buffer at all.
	PixelFormatBltOnly
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBReserved8:
		return "rgb"
	case PixelFormatBGRReserved8:
		return "bgr"
	case PixelFormatBitMask:
		return "bitmask"
	case PixelFormatBltOnly:
		return "blt-only"
	default:
		return "unknown"
	}
}

// ParsePixelFormat maps "rgb"/"bgr"/"bitmask"/"blt-only" back to a tag.
func ParsePixelFormat(s string) (PixelFormat, bool) {
	for f := PixelFormatRGBReserved8; f <= PixelFormatBltOnly; f++ {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// BytesPerPixel is the slot size of every linear frame buffer layout.
const BytesPerPixel = 4

// FrameBuffer describes a mapped video memory region.
//
// Buf is a view of the whole region; the kernel owns it exclusively for the
// process lifetime. Nothing here checks that the region matches the geometry.
type FrameBuffer struct {
	Base   uintptr
	Buf    []byte
	Width  int
	Height int
	Stride int // pixels per scanline, >= Width
	Format PixelFormat
}

// Size returns the region length in bytes.
func (fb FrameBuffer) Size() int { return len(fb.Buf) }

// HAL is the kernel's only contact point with the platform.
type HAL interface {
	Logger() Logger
	FrameBuffer() FrameBuffer
}
