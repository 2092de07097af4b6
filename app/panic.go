package app

import (
	"fmt"
	"image/color"
	"strings"

	"aios/fonts/vga8x16"
	"aios/graphics"
	"aios/hal"
	"aios/kernel"

	"tinygo.org/x/tinyfont"
)

var panicColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		step := lastBootStep()
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("AIOS Panic: %v (during %s)", info.Value, step))
			for _, line := range strings.Split(string(info.Stack), "\n") {
				if line == "" {
					continue
				}
				l.WriteLineString(line)
			}
		}

		switch {
		case graphics.ConsoleReady():
			if !printPanic(info) {
				if l := h.Logger(); l != nil {
					l.WriteLineString("AIOS Panic: console busy, message not shown")
				}
			}
		case graphics.PixelWriterReady():
			drawPanic(info, step)
		}
		// Neither singleton exists: the log above is all there is.
	})
}

// printPanic writes the panic line through the console. It reports false
// instead of spinning when the console or the writer is held.
func printPanic(info kernel.PanicInfo) bool {
	printed := false
	graphics.TryLockConsole(func(c *graphics.Console) {
		graphics.TryLockPixelWriter(func(w *graphics.PixelWriter) {
			fmt.Fprintf(c.Writer(w), "panic: %v\n", info.Value)
			printed = true
		})
	})
	return printed
}

// drawPanic writes straight to the frame buffer when the console never came
// up. A busy writer is skipped rather than waited on.
func drawPanic(info kernel.PanicInfo, step string) {
	lines := []string{
		fmt.Sprintf("panic: %v", info.Value),
		"during: " + step,
	}
	graphics.TryLockPixelWriter(func(w *graphics.PixelWriter) {
		graphics.FillRect(w, w.Bounds(), graphics.Black)

		d := w.Displayer()
		lineHeight := int16(vga8x16.Font.GetYAdvance())
		y := -int16(vga8x16.Font.GetGlyph(' ').Info().YOffset)
		for _, line := range lines {
			if int(y) >= w.Height() {
				break
			}
			tinyfont.WriteLine(d, vga8x16.Font, 0, y, line, panicColor)
			y += lineHeight
		}
	})
}
