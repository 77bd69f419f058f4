package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isStderrTTY reports whether stderr is attached to a terminal. The TUI
// renders there, so it decides whether browsing is possible at all.
func isStderrTTY() bool {
	return isTerminal(os.Stderr.Fd())
}

// isTerminal reports whether fd is a terminal, including Cygwin/MSYS ptys.
func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorFor reports whether w is a terminal that should get ANSI colors.
// NO_COLOR disables colors everywhere.
func colorFor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f.Fd())
}
