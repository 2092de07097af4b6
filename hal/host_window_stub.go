//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow needs ebiten, which needs cgo on the host. Without it only the
// headless runner is available.
func RunWindow(_ HAL, _ func() error) error {
	return errors.New("hal: preview window unavailable without cgo; use --headless or CGO_ENABLED=1")
}
