package kernel

import "sync/atomic"

// PanicInfo contains details about a recovered panic.
type PanicInfo struct {
	Value any
	Stack []byte
}

var (
	panicActive  atomic.Bool
	panicHandler atomic.Pointer[func(PanicInfo)]
)

// InPanicMode reports whether the kernel is in panic mode.
func InPanicMode() bool {
	return panicActive.Load()
}

// SetPanicHandler installs a process-wide panic handler.
//
// The handler is invoked at most once (on the first panic).
func SetPanicHandler(fn func(PanicInfo)) {
	if fn == nil {
		panicHandler.Store(nil)
		return
	}
	panicHandler.Store(&fn)
}

// Guard runs fn and turns a panic inside it into a call of the panic handler.
// It reports whether fn panicked.
func Guard(fn func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			triggerPanic(PanicInfo{Value: r})
		}
	}()
	fn()
	return false
}

func triggerPanic(info PanicInfo) {
	if !panicActive.CompareAndSwap(false, true) {
		return
	}
	info.Stack = captureStack()
	fn := panicHandler.Load()
	if fn == nil || *fn == nil {
		return
	}
	// A fault inside the handler must not re-enter it.
	defer func() { _ = recover() }()
	(*fn)(info)
}
