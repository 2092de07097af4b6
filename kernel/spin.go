package kernel

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a busy-wait mutual exclusion lock for code that runs before any
// scheduler exists. The zero value is unlocked. It is not reentrant.
type SpinLock struct {
	_    [0]func() // prevent accidental copying.
	held atomic.Bool
}

// TryLock acquires the lock if it is free.
func (l *SpinLock) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

// Lock spins until the lock is acquired.
func (l *SpinLock) Lock() {
	for !l.TryLock() {
		runtime.Gosched()
	}
}

// Unlock releases the lock. Unlocking a free lock is a programming error.
func (l *SpinLock) Unlock() {
	if !l.held.CompareAndSwap(true, false) {
		panic("kernel: unlock of unlocked SpinLock")
	}
}
