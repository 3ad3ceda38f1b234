// Package display provides terminal output formatting: ANSI styling,
// human-readable sizes and durations, and the startup banner.
package display

import (
	"os"
	"strings"

	"github.com/strandway/clipchron/internal/config"
)

// Style selects the ANSI rendition applied by [Styler.Render].
type Style int

const (
	StylePlain Style = iota
	StyleHeader
	StyleInfo
	StyleSuccess
	StyleWarn
	StyleError
	StyleProgress
	StyleBold
)

var ansiCodes = map[Style]string{
	StyleHeader:   "\033[1;95m",
	StyleInfo:     "\033[96m",
	StyleSuccess:  "\033[92m",
	StyleWarn:     "\033[93m",
	StyleError:    "\033[91m",
	StyleProgress: "\033[96m",
	StyleBold:     "\033[1m",
}

const ansiReset = "\033[0m"

// Styler renders styled strings. It carries only the resolved enable flag,
// so rendering is a pure function of (style, message) with no process-wide
// state.
type Styler struct {
	enabled bool
}

// NewStyler resolves the color mode (TTY detection, NO_COLOR, TERM) and
// returns a Styler. Call once during startup and pass the value around.
func NewStyler(mode config.ColorMode) Styler {
	switch mode {
	case config.ColorAlways:
		return Styler{enabled: true}
	case config.ColorNever:
		return Styler{enabled: false}
	default:
		return Styler{enabled: IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"}
	}
}

// Render returns msg wrapped in the ANSI codes for s, or msg unchanged when
// colors are disabled or the style is plain.
func (st Styler) Render(s Style, msg string) string {
	if !st.enabled || s == StylePlain {
		return msg
	}
	code, ok := ansiCodes[s]
	if !ok {
		return msg
	}
	return code + msg + ansiReset
}

// Enabled reports whether ANSI output is active.
func (st Styler) Enabled() bool { return st.enabled }

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
