//go:build !tinygo

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"aios/graphics"
	"aios/internal/buildinfo"
	"aios/internal/config"
)

func TestRenderDumpPlain(t *testing.T) {
	got := renderDump([]string{"Hello, AIOS!", "", "x", "", ""}, 20, false)
	if want := "Hello, AIOS!\n\nx\n"; got != want {
		t.Fatalf("renderDump() = %q, want %q", got, want)
	}
	if got := renderDump([]string{"", ""}, 20, false); got != "" {
		t.Fatalf("renderDump(blank) = %q, want empty", got)
	}
}

func TestRenderDumpStyled(t *testing.T) {
	got := renderDump([]string{"ab", "c", ""}, 6, true)
	rows := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(rows) != 4 {
		t.Fatalf("renderDump() has %d rows, want 4:\n%s", len(rows), got)
	}
	if !strings.Contains(rows[1], "ab    ") || !strings.Contains(rows[2], "c     ") {
		t.Fatalf("rows not padded to the grid width:\n%s", got)
	}
	if !strings.Contains(rows[0], "╭") {
		t.Fatalf("missing border:\n%s", got)
	}
}

func TestApplyFlags(t *testing.T) {
	defer func() {
		rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}()
	if err := rootCmd.Flags().Parse([]string{"--width", "640", "--format", "rgb", "--heartbeat"}); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	applyFlags(rootCmd, &cfg)
	if cfg.Display.Width != 640 || cfg.Display.Format != "rgb" || !cfg.Console.Heartbeat {
		t.Fatalf("applyFlags() = %+v", cfg)
	}
	if cfg.Display.Height != 450 || cfg.Log.Level != "info" {
		t.Fatalf("unset flags changed the config: %+v", cfg)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	if got := strings.TrimSpace(out.String()); got != buildinfo.String() {
		t.Fatalf("version output = %q, want %q", got, buildinfo.String())
	}
}

func TestHeadlessRun(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	png := filepath.Join(dir, "screen.png")

	rootCmd.SetArgs([]string{"--headless", "--ticks", "2", "--hz", "1000", "--width", "200", "--height", "90", "--screenshot", png, "--log-level", "error"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if st, err := os.Stat(png); err != nil || st.Size() == 0 {
		t.Fatalf("screenshot: %v", err)
	}
	if !graphics.TryLockConsole(func(c *graphics.Console) {
		if c.Columns() != 20 || c.Rows() != 5 {
			t.Fatalf("grid = %dx%d, want 20x5", c.Columns(), c.Rows())
		}
		if got := c.Line(0); got != "Hello, AIOS!" {
			t.Fatalf("Line(0) = %q, want %q", got, "Hello, AIOS!")
		}
	}) {
		t.Fatal("console not initialized after the run")
	}

	var out bytes.Buffer
	if err := dumpConsole(&out); err != nil {
		t.Fatalf("dumpConsole() error = %v", err)
	}
	if out.String() != "Hello, AIOS!\n" {
		t.Fatalf("dumpConsole() = %q", out.String())
	}
}
