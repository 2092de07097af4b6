//go:build !tinygo

// aios boots the kernel's graphics console against an in-memory frame
// buffer, either in a preview window or headless.
//
// Usage:
//
//	aios                          - open a preview window
//	aios --headless --ticks 120   - run 120 steps without a window
//	aios --headless --ticks 1 --dump --screenshot out.png
//	aios version                  - print build information
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"aios/app"
	"aios/hal"
	"aios/internal/buildinfo"
	"aios/internal/config"
)

var (
	flagConfig     string
	flagHeadless   bool
	flagHz         int
	flagTicks      uint64
	flagWidth      int
	flagHeight     int
	flagStride     int
	flagFormat     string
	flagHeartbeat  bool
	flagScreenshot string
	flagDump       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aios",
	Short: "Boot the AIOS graphics console on the host",
	Long: `Boots the kernel against a simulated UEFI frame buffer.

Settings come from --config, ./aios.yaml, ~/.config/aios/aios.yaml or the
built-in defaults, in that order; flags override the file.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	f.BoolVar(&flagHeadless, "headless", false, "Run without a window")
	f.IntVar(&flagHz, "hz", 60, "Step rate in headless mode")
	f.Uint64Var(&flagTicks, "ticks", 0, "Stop after N steps in headless mode (0 = run until interrupted)")
	f.IntVar(&flagWidth, "width", 800, "Frame buffer width in pixels")
	f.IntVar(&flagHeight, "height", 450, "Frame buffer height in pixels")
	f.IntVar(&flagStride, "stride", 0, "Pixels per scanline (0 = width)")
	f.StringVar(&flagFormat, "format", "bgr", "Pixel format: rgb, bgr, bitmask or blt-only")
	f.BoolVar(&flagHeartbeat, "heartbeat", false, "Print a line on every step")
	f.StringVar(&flagScreenshot, "screenshot", "", "Write the final frame buffer to a PNG file")
	f.BoolVar(&flagDump, "dump", false, "Print the console text grid on exit")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(versionCmd)
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("hz") {
		cfg.Headless.Hz = flagHz
	}
	if f.Changed("ticks") {
		cfg.Headless.Ticks = flagTicks
	}
	if f.Changed("width") {
		cfg.Display.Width = flagWidth
	}
	if f.Changed("height") {
		cfg.Display.Height = flagHeight
	}
	if f.Changed("stride") {
		cfg.Display.Stride = flagStride
	}
	if f.Changed("format") {
		cfg.Display.Format = flagFormat
	}
	if f.Changed("heartbeat") {
		cfg.Console.Heartbeat = flagHeartbeat
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	hc, err := cfg.HostConfig(os.Stderr)
	if err != nil {
		return err
	}
	ac, err := cfg.AppConfig()
	if err != nil {
		return err
	}

	h := hal.New(hc)
	if l := hal.HostLog(h); l != nil {
		l.Debug("starting", "version", buildinfo.Short(), "config", flagConfig, "headless", flagHeadless)
	}
	step := app.NewWithConfig(h, ac)

	runErr := run(h, step, cfg.HeadlessConfig(flagHeadless))

	if flagScreenshot != "" {
		if err := hal.SavePNG(h.FrameBuffer(), flagScreenshot); err != nil {
			return err
		}
	}
	if flagDump {
		if err := dumpConsole(os.Stdout); err != nil {
			return err
		}
	}
	return runErr
}

func run(h hal.HAL, step func() error, hc hal.HeadlessConfig) error {
	if !hc.Enabled {
		return hal.RunWindow(h, step)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := hal.RunHeadless(ctx, h, step, hc)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
