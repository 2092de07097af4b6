//go:build !tinygo

package kernel

import "runtime"

const maxStackBytes = 8 << 10

func captureStack() []byte {
	buf := make([]byte, maxStackBytes)
	return buf[:runtime.Stack(buf, false)]
}
