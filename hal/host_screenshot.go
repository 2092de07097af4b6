//go:build !tinygo

package hal

import (
	"fmt"

	"github.com/fogleman/gg"
)

// SavePNG writes the visible frame buffer to path as a PNG image.
func SavePNG(fb FrameBuffer, path string) error {
	switch fb.Format {
	case PixelFormatRGBReserved8, PixelFormatBGRReserved8:
	default:
		return fmt.Errorf("screenshot: %w for format %s", ErrNotImplemented, fb.Format)
	}
	dc := gg.NewContextForRGBA(ToRGBA(fb))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return nil
}
