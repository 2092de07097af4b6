//go:build !tinygo

package hal

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// HostConfig describes the simulated frame buffer and logging of the host
// platform.
type HostConfig struct {
	Width    int
	Height   int
	Stride   int // 0 means Width
	Format   PixelFormat
	LogLevel string
	LogOut   io.Writer // defaults to os.Stderr
}

type hostHAL struct {
	logger *hostLogger
	fb     FrameBuffer
}

// New returns a host HAL implementation backed by an in-memory frame buffer.
func New(cfg HostConfig) HAL {
	out := cfg.LogOut
	if out == nil {
		out = os.Stderr
	}
	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "aios",
	})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		l.SetLevel(lvl)
	}

	return &hostHAL{
		logger: &hostLogger{l: l},
		fb:     newHostFrameBuffer(cfg.Width, cfg.Height, cfg.Stride, cfg.Format),
	}
}

func (h *hostHAL) Logger() Logger           { return h.logger }
func (h *hostHAL) FrameBuffer() FrameBuffer { return h.fb }

// Log exposes the structured logger for host-only tooling.
func (h *hostHAL) Log() *log.Logger { return h.logger.l }

// HostLog returns the structured logger behind a host HAL, or nil.
func HostLog(h HAL) *log.Logger {
	if hh, ok := h.(*hostHAL); ok {
		return hh.Log()
	}
	return nil
}

type hostLogger struct {
	l *log.Logger
}

func (l *hostLogger) WriteLineString(s string) {
	l.l.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.l.Info(string(b))
}
