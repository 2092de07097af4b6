// Package config loads the host runner's YAML configuration.
package config

// Config is the top-level host configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Console  ConsoleConfig  `yaml:"console"`
	Log      LogConfig      `yaml:"log"`
	Headless HeadlessConfig `yaml:"headless"`
}

// DisplayConfig describes the simulated frame buffer.
type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Stride int    `yaml:"stride"` // pixels per scanline, 0 = width
	Format string `yaml:"format"` // rgb | bgr
}

// ConsoleConfig holds the text console colors as "#rrggbb".
type ConsoleConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Heartbeat  bool   `yaml:"heartbeat"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type HeadlessConfig struct {
	Hz    int    `yaml:"hz"`
	Ticks uint64 `yaml:"ticks"`
}
