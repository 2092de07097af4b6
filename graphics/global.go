package graphics

import (
	"fmt"
	"io"

	"aios/hal"
	"aios/kernel"
)

var (
	pixelWriter kernel.Global[PixelWriter]
	console     kernel.Global[Console]
)

// InitPixelWriter creates the process-wide writer for fb. Later calls are
// no-ops; an unsupported layout panics.
func InitPixelWriter(fb hal.FrameBuffer) {
	pixelWriter.Init(func() PixelWriter { return *NewPixelWriter(fb) })
}

// LockPixelWriter runs fn with exclusive access to the writer. It panics if
// InitPixelWriter has not run.
func LockPixelWriter(fn func(w *PixelWriter)) {
	pixelWriter.With(fn)
}

// InitConsole creates the process-wide console and clears the screen.
// The writer must already exist.
func InitConsole(resolution Size, font *Font) {
	InitConsoleWithConfig(resolution, font, DefaultConsoleConfig())
}

func InitConsoleWithConfig(resolution Size, font *Font, cfg ConsoleConfig) {
	if !console.Init(func() Console { return *NewConsoleWithConfig(resolution, font, cfg) }) {
		return
	}
	LockConsole(func(c *Console) {
		LockPixelWriter(func(w *PixelWriter) { c.Flush(w) })
	})
}

// LockConsole runs fn with exclusive access to the console. It panics if
// InitConsole has not run.
func LockConsole(fn func(c *Console)) {
	console.With(fn)
}

// PixelWriterReady and ConsoleReady report whether the singletons exist.
func PixelWriterReady() bool { return pixelWriter.Initialized() }
func ConsoleReady() bool     { return console.Initialized() }

// TryLockConsole is LockConsole for fault paths: it returns false instead of
// waiting when the console is missing or busy.
func TryLockConsole(fn func(c *Console)) bool {
	return console.TryWith(fn)
}

// TryLockPixelWriter is the LockPixelWriter counterpart of TryLockConsole.
func TryLockPixelWriter(fn func(w *PixelWriter)) bool {
	return pixelWriter.TryWith(fn)
}

// Print formats like fmt.Print straight into the console. Output of one
// call is never interleaved with another's.
func Print(a ...any) {
	output(func(w io.Writer) error {
		_, err := fmt.Fprint(w, a...)
		return err
	})
}

// Println formats like fmt.Println into the console.
func Println(a ...any) {
	output(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, a...)
		return err
	})
}

// Printf formats like fmt.Printf into the console.
func Printf(format string, a ...any) {
	output(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format, a...)
		return err
	})
}

// Printfln is Printf followed by a newline.
func Printfln(format string, a ...any) {
	output(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, format, a...); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	})
}

// output runs fn against the console while holding the console and then the
// writer. A formatting error is fatal: there is no other output path.
func output(fn func(w io.Writer) error) {
	LockConsole(func(c *Console) {
		LockPixelWriter(func(w *PixelWriter) {
			if err := fn(c.Writer(w)); err != nil {
				panic(fmt.Errorf("graphics: console output: %w", err))
			}
		})
	})
}
