//go:build !tinygo

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"aios/graphics"
)

var errNoConsole = errors.New("console not initialized")

var dumpStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

// dumpConsole prints the console's text grid to w, framed when w is a
// terminal.
func dumpConsole(w io.Writer) error {
	var (
		lines []string
		cols  int
	)
	if !graphics.TryLockConsole(func(c *graphics.Console) {
		lines = c.Lines()
		cols = c.Columns()
	}) {
		return errNoConsole
	}

	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	_, err := io.WriteString(w, renderDump(lines, cols, styled))
	return err
}

// renderDump trims trailing blank rows. The styled form pads every row to
// the grid width so the frame matches the screen.
func renderDump(lines []string, cols int, styled bool) string {
	n := len(lines)
	for n > 0 && lines[n-1] == "" {
		n--
	}
	lines = lines[:n]

	if !styled {
		var b strings.Builder
		for _, l := range lines {
			b.WriteString(l)
			b.WriteByte('\n')
		}
		return b.String()
	}

	padded := make([]string, len(lines))
	for i, l := range lines {
		padded[i] = fmt.Sprintf("%-*s", cols, l)
	}
	return dumpStyle.Render(strings.Join(padded, "\n")) + "\n"
}
