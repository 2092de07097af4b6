package config

import (
	_ "embed"
)

//go:embed defaults/aios.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:  800,
			Height: 450,
			Format: "bgr",
		},
		Console: ConsoleConfig{
			Foreground: "#ffffff",
			Background: "#000000",
		},
		Log: LogConfig{
			Level: "info",
		},
		Headless: HeadlessConfig{
			Hz: 60,
		},
	}
}
