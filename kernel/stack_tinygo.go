//go:build tinygo

package kernel

// TinyGo has no runtime stack walker on bare metal.
func captureStack() []byte { return nil }
