package app

import (
	"fmt"

	"aios/fonts/vga8x16"
	"aios/graphics"
	"aios/hal"
	"aios/kernel"
)

// Greeting is the first line the kernel prints.
const Greeting = "AIOS"

type Config struct {
	Console graphics.ConsoleConfig

	// Heartbeat prints one line per step.
	Heartbeat bool
}

// DefaultConfig is white on black with no heartbeat.
func DefaultConfig() Config {
	return Config{Console: graphics.DefaultConsoleConfig()}
}

type system struct {
	h     hal.HAL
	cfg   Config
	steps uint64
}

// New boots the kernel with the default config and returns its step func.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig boots the kernel against h. The returned step func fails
// once the kernel has panicked.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

// Run boots the kernel and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{h: h, cfg: cfg}
	installPanicHandler(h)

	kernel.Guard(func() {
		fb := h.FrameBuffer()
		bootStep(h, fmt.Sprintf("frame buffer %dx%d stride=%d format=%s", fb.Width, fb.Height, fb.Stride, fb.Format))

		graphics.InitPixelWriter(fb)
		bootStep(h, "pixel writer ready")

		graphics.InitConsoleWithConfig(
			graphics.Size{W: fb.Width, H: fb.Height},
			graphics.NewFont(vga8x16.Glyphs),
			cfg.Console,
		)
		bootStep(h, "console ready")

		graphics.Printfln("Hello, %s!", Greeting)
		bootStep(h, "boot complete")
	})
	return s
}

func (s *system) step() error {
	if kernel.InPanicMode() {
		return ErrHalted
	}
	if !s.cfg.Heartbeat {
		return nil
	}
	s.steps++
	kernel.Guard(func() {
		graphics.Printfln("tick %d", s.steps)
	})
	return nil
}
