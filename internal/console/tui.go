package console

import (
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

var tuiEnabled atomic.Bool

// IsTUIEnabled returns true while the TUI owns the terminal.
func IsTUIEnabled() bool {
	return tuiEnabled.Load()
}

// SetTUIEnabled marks whether the TUI owns the terminal. Console logging is
// muted while it does.
func SetTUIEnabled(enabled bool) {
	tuiEnabled.Store(enabled)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
