package kernel

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNotInitialized is the panic value for using a Global before Init.
var ErrNotInitialized = errors.New("kernel: global used before init")

// Global is a process-wide singleton: constructed once, then only reachable
// through its lock. The zero value is empty and ready for Init.
type Global[T any] struct {
	_       [0]func() // prevent accidental copying.
	claimed atomic.Bool
	ready   atomic.Bool
	mu      SpinLock
	v       T
}

// Init constructs the value with fn unless another caller already did.
// It reports whether this call performed the construction.
func (g *Global[T]) Init(fn func() T) bool {
	if !g.claimed.CompareAndSwap(false, true) {
		return false
	}
	g.v = fn()
	g.ready.Store(true)
	return true
}

// Initialized reports whether Init has completed.
func (g *Global[T]) Initialized() bool {
	return g.ready.Load()
}

// With runs fn with exclusive access to the value. The lock is released on
// every exit path, including a panic inside fn.
func (g *Global[T]) With(fn func(v *T)) {
	if !g.ready.Load() {
		panic(fmt.Errorf("%w: %T", ErrNotInitialized, g.v))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.v)
}

// TryWith is With that gives up instead of spinning when the lock is held or
// the value does not exist yet. Used by fault paths that must not deadlock
// against the code they interrupted.
func (g *Global[T]) TryWith(fn func(v *T)) bool {
	if !g.ready.Load() || !g.mu.TryLock() {
		return false
	}
	defer g.mu.Unlock()
	fn(&g.v)
	return true
}
