//go:build !tinygo

package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"aios/app"
	"aios/graphics"
	"aios/hal"
)

var ErrInvalid = errors.New("invalid config")

// ParseColor parses "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (graphics.PixelColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return graphics.PixelColor{}, fmt.Errorf("%w: color %q: want #rrggbb", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return graphics.PixelColor{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	return graphics.PixelColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: display %dx%d", ErrInvalid, d.Width, d.Height)
	}
	if d.Stride != 0 && d.Stride < d.Width {
		return fmt.Errorf("%w: stride %d < width %d", ErrInvalid, d.Stride, d.Width)
	}
	if _, ok := hal.ParsePixelFormat(d.Format); !ok {
		return fmt.Errorf("%w: pixel format %q", ErrInvalid, d.Format)
	}
	if c.Headless.Hz <= 0 {
		return fmt.Errorf("%w: headless hz %d", ErrInvalid, c.Headless.Hz)
	}
	if _, err := ParseColor(c.Console.Foreground); err != nil {
		return err
	}
	if _, err := ParseColor(c.Console.Background); err != nil {
		return err
	}
	return nil
}

// HostConfig converts the display and log sections for hal.New.
func (c Config) HostConfig(logOut io.Writer) (hal.HostConfig, error) {
	if err := c.Validate(); err != nil {
		return hal.HostConfig{}, err
	}
	format, _ := hal.ParsePixelFormat(c.Display.Format)
	return hal.HostConfig{
		Width:    c.Display.Width,
		Height:   c.Display.Height,
		Stride:   c.Display.Stride,
		Format:   format,
		LogLevel: c.Log.Level,
		LogOut:   logOut,
	}, nil
}

// AppConfig converts the console section for app.NewWithConfig.
func (c Config) AppConfig() (app.Config, error) {
	fg, err := ParseColor(c.Console.Foreground)
	if err != nil {
		return app.Config{}, err
	}
	bg, err := ParseColor(c.Console.Background)
	if err != nil {
		return app.Config{}, err
	}
	return app.Config{
		Console:   graphics.ConsoleConfig{Foreground: fg, Background: bg},
		Heartbeat: c.Console.Heartbeat,
	}, nil
}

// HeadlessConfig converts the headless section for hal.RunHeadless.
func (c Config) HeadlessConfig(enabled bool) hal.HeadlessConfig {
	return hal.HeadlessConfig{
		Enabled: enabled,
		Hz:      c.Headless.Hz,
		Ticks:   c.Headless.Ticks,
	}
}
