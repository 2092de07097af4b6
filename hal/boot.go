package hal

import "unsafe"

// BootFrameBuffer is the frame buffer record the loader passes to the kernel
// entry point. Field order and widths are part of the loader ABI.
type BootFrameBuffer struct {
	Base   uintptr
	Size   uintptr
	Width  uintptr
	Height uintptr
	Format PixelFormat
	_      uint32
	Stride uintptr
}

// FrameBuffer returns a descriptor whose Buf aliases the loader's region.
// The loader is trusted: base and size are not validated.
func (b *BootFrameBuffer) FrameBuffer() FrameBuffer {
	var buf []byte
	if b.Base != 0 && b.Size != 0 {
		buf = unsafe.Slice((*byte)(unsafe.Pointer(b.Base)), int(b.Size))
	}
	return FrameBuffer{
		Base:   b.Base,
		Buf:    buf,
		Width:  int(b.Width),
		Height: int(b.Height),
		Stride: int(b.Stride),
		Format: b.Format,
	}
}
