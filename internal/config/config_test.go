//go:build !tinygo

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"aios/graphics"
	"aios/hal"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("embedded default = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestLoadExplicitPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("display:\n  width: 640\n  format: rgb\nconsole:\n  foreground: \"#00ff00\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Width != 640 || cfg.Display.Format != "rgb" {
		t.Fatalf("display = %+v, want width 640 rgb", cfg.Display)
	}
	if cfg.Display.Height != 450 || cfg.Headless.Hz != 60 {
		t.Fatalf("missing keys did not keep defaults: %+v", cfg)
	}

	ac, err := cfg.AppConfig()
	if err != nil {
		t.Fatalf("AppConfig() error = %v", err)
	}
	if ac.Console.Foreground != (graphics.PixelColor{G: 0xff}) || ac.Console.Background != graphics.Black {
		t.Fatalf("AppConfig() = %+v", ac)
	}
}

func TestLoadExplicitPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load(missing) error = nil")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("display: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load(bad yaml) error = nil")
	}
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	if err != nil || cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, %v, want embedded default", cfg, err)
	}

	if err := os.WriteFile(FileName, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want graphics.PixelColor
		ok   bool
	}{
		{"#ffffff", graphics.White, true},
		{"102030", graphics.PixelColor{R: 0x10, G: 0x20, B: 0x30}, true},
		{" #0A0b0C ", graphics.PixelColor{R: 0x0a, G: 0x0b, B: 0x0c}, true},
		{"#fff", graphics.PixelColor{}, false},
		{"#gggggg", graphics.PixelColor{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if !tt.ok && !errors.Is(err, ErrInvalid) {
			t.Fatalf("ParseColor(%q) error = %v, want ErrInvalid", tt.in, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"zero width", func(c *Config) { c.Display.Width = 0 }},
		{"short stride", func(c *Config) { c.Display.Stride = 10 }},
		{"unknown format", func(c *Config) { c.Display.Format = "rgb565" }},
		{"zero hz", func(c *Config) { c.Headless.Hz = 0 }},
		{"bad background", func(c *Config) { c.Console.Background = "black" }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.edit(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: Validate() = %v, want ErrInvalid", tt.name, err)
		}
		if _, err := cfg.HostConfig(nil); err == nil {
			t.Fatalf("%s: HostConfig() error = nil", tt.name)
		}
	}
}

func TestHostConfig(t *testing.T) {
	cfg := Default()
	cfg.Display.Stride = 832
	hc, err := cfg.HostConfig(nil)
	if err != nil {
		t.Fatalf("HostConfig() error = %v", err)
	}
	want := hal.HostConfig{Width: 800, Height: 450, Stride: 832, Format: hal.PixelFormatBGRReserved8, LogLevel: "info"}
	if hc != want {
		t.Fatalf("HostConfig() = %+v, want %+v", hc, want)
	}
	if hh := cfg.HeadlessConfig(true); !hh.Enabled || hh.Hz != 60 || hh.Ticks != 0 {
		t.Fatalf("HeadlessConfig() = %+v", hh)
	}
}
