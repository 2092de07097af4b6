//go:build !tinygo

package hal

import "unsafe"

// newHostFrameBuffer allocates an in-memory region standing in for the
// loader-mapped one.
func newHostFrameBuffer(width, height, stride int, format PixelFormat) FrameBuffer {
	if stride < width {
		stride = width
	}
	buf := make([]byte, stride*height*BytesPerPixel)
	var base uintptr
	if len(buf) > 0 {
		base = uintptr(unsafe.Pointer(&buf[0]))
	}
	return FrameBuffer{
		Base:   base,
		Buf:    buf,
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}
