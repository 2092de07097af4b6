//go:build tinygo && baremetal

package hal

import "machine"

type tinyGoHAL struct {
	logger *serialLogger
	fb     FrameBuffer
}

// New returns the bare-metal HAL for the frame buffer the loader handed over.
// Logging goes to the default serial port.
func New(boot *BootFrameBuffer) HAL {
	h := &tinyGoHAL{logger: &serialLogger{}}
	if boot != nil {
		h.fb = boot.FrameBuffer()
	}
	return h
}

func (h *tinyGoHAL) Logger() Logger           { return h.logger }
func (h *tinyGoHAL) FrameBuffer() FrameBuffer { return h.fb }

type serialLogger struct{}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		machine.Serial.WriteByte(b[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}
