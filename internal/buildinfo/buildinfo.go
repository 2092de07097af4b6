// Package buildinfo carries version stamps set with -ldflags, e.g.
//
//	go build -ldflags "-X aios/internal/buildinfo.Version=v0.1.0"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String is the full stamp printed by the version command.
func String() string {
	return fmt.Sprintf("aios %s (commit %s, built %s)", Version, Commit, Date)
}
