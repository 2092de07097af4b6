package hal

import "image"

// ToRGBA copies the visible part of fb into an RGBA image, honoring stride
// and channel order. Formats without a linear layout yield a black image.
func ToRGBA(fb FrameBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	ToRGBAInto(fb, img)
	return img
}

// ToRGBAInto is ToRGBA into a caller-owned image of at least fb's size.
func ToRGBAInto(fb FrameBuffer, dst *image.RGBA) {
	var ri, bi int
	switch fb.Format {
	case PixelFormatRGBReserved8:
		ri, bi = 0, 2
	case PixelFormatBGRReserved8:
		ri, bi = 2, 0
	default:
		return
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			off := (y*fb.Stride + x) * BytesPerPixel
			if off+BytesPerPixel > len(fb.Buf) {
				return
			}
			j := dst.PixOffset(x, y)
			if j+3 >= len(dst.Pix) {
				return
			}
			dst.Pix[j+0] = fb.Buf[off+ri]
			dst.Pix[j+1] = fb.Buf[off+1]
			dst.Pix[j+2] = fb.Buf[off+bi]
			dst.Pix[j+3] = 0xFF
		}
	}
}
