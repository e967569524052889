// Package ui provides terminal output helpers including pager support.
//
// The pager command comes from --pager, config or $PAGER and is executed as
// given, the same way git and man treat their pager settings.
package ui

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/footprint-tools/argspec/internal/config"
)

var (
	pagerDisabled bool
	pagerOverride string
	quietMode     bool
	pagerMu       sync.RWMutex
)

// DisablePager disables the pager globally (used by --no-pager flag).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager sets a pager override for this invocation (used by --pager flag).
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

// EnableQuiet suppresses non-essential output (used by --quiet/-q flag).
func EnableQuiet() {
	pagerMu.Lock()
	quietMode = true
	pagerMu.Unlock()
}

// IsQuiet returns true if quiet mode is enabled.
func IsQuiet() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return quietMode
}

// Printf prints formatted output unless quiet mode is enabled.
func Printf(format string, args ...any) (int, error) {
	if IsQuiet() {
		return 0, nil
	}
	return fmt.Printf(format, args...)
}

// Println prints a line unless quiet mode is enabled.
func Println(args ...any) (int, error) {
	if IsQuiet() {
		return 0, nil
	}
	return fmt.Println(args...)
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout width, or fallback when unknown.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Pager writes content to stdout through the configured pager.
// See Writer.Pager for the resolution order.
func Pager(content string) {
	NewWriter(globalOptions()...).Pager(content)
}

// globalOptions turns the process-wide flags into Writer options.
func globalOptions() []WriterOption {
	pagerMu.RLock()
	defer pagerMu.RUnlock()

	opts := []WriterOption{WithConfigGetter(config.Get)}
	if pagerDisabled {
		opts = append(opts, WithPagerDisabled())
	}
	if pagerOverride != "" {
		opts = append(opts, WithPagerOverride(pagerOverride))
	}
	return opts
}
