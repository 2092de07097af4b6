package app

import (
	"errors"
	"sync"

	"aios/hal"
)

// ErrHalted is returned by the step func after a kernel panic.
var ErrHalted = errors.New("kernel halted")

var (
	bootDiagMu   sync.Mutex
	bootDiagStep string
)

// bootStep records msg as the current boot milestone and logs it.
func bootStep(h hal.HAL, msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()

	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("boot: " + msg)
	}
}

// lastBootStep returns the most recent milestone, or "<none>".
func lastBootStep() string {
	bootDiagMu.Lock()
	defer bootDiagMu.Unlock()
	if bootDiagStep == "" {
		return "<none>"
	}
	return bootDiagStep
}
