//go:build !tinygo && cgo

package hal

import (
	"image"

	"aios/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window mirroring the frame buffer and calls step
// once per frame. It blocks until the window closes.
func RunWindow(h HAL, step func() error) error {
	fb := h.FrameBuffer()
	g := &hostGame{fb: fb, step: step}
	ebiten.SetWindowTitle("AIOS (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(fb.Width, fb.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	fb    FrameBuffer
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.fb.Width, g.fb.Height))
		g.fbImg = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}

	// Update and Draw share ebiten's goroutine, so the kernel is not
	// writing while we copy.
	ToRGBAInto(g.fb, g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
