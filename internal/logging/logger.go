// Package logging provides leveled, optionally colored logging with an
// optional file sink. Color rendering is delegated to a display.Styler
// value held by the Logger, so no package-level state exists.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/strandway/clipchron/internal/display"
)

// Logger writes timestamped, leveled lines to stdout (errors to stderr)
// and, when configured, appends plain copies to a log file.
type Logger struct {
	mu      sync.Mutex
	styler  display.Styler
	verbose bool
	file    *os.File
}

// NewLogger builds a Logger. When logFile is non-empty its parent directory
// is created and the file opened for appending; call Close when done.
func NewLogger(styler display.Styler, verbose bool, logFile string) (*Logger, error) {
	l := &Logger{styler: styler, verbose: verbose}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// Styler returns the styler this logger renders with.
func (l *Logger) Styler() display.Styler { return l.styler }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, style display.Style, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	_, _ = io.WriteString(out, ts+" "+l.styler.Render(style, "["+level+"]")+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", display.StyleInfo, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", display.StyleSuccess, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", display.StyleWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", display.StyleError, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose mode is on.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", display.StyleProgress, fmt.Sprintf(format, args...))
}
