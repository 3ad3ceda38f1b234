package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/strandway/clipchron/internal/display"
	"github.com/strandway/clipchron/internal/planner"
)

// Executor runs one plan item's ffmpeg process at a time, scanning the
// combined output stream for progress markers. The status line is purely
// an observability side effect; success is determined by the exit code
// alone.
type Executor struct {
	Styler       display.Styler
	ShowProgress bool
	Out          io.Writer // Defaults to os.Stdout.
}

// Run spawns the item's materialized command and blocks until it exits.
// Returns nil iff the process exits with status 0. Context cancellation
// kills the active process.
func (e *Executor) Run(ctx context.Context, item *planner.Item) error {
	args := item.Args
	if len(args) == 0 {
		return fmt.Errorf("plan item %s has no argument list", item.ID)
	}

	out := e.Out
	if out == nil {
		out = os.Stdout
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	// ffmpeg writes progress to stderr; combine both streams and read
	// line-by-line while the process runs.
	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		return fmt.Errorf("spawn %s: %w", args[0], err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.scanProgress(pr, out)
	}()

	err := cmd.Wait()
	pw.Close()
	<-done

	if e.ShowProgress {
		fmt.Fprintln(out)
	}
	if err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

// scanProgress reads the combined stream and rewrites a single status line
// whenever a progress marker (frame=/time=/speed=) appears.
func (e *Executor) scanProgress(r io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(scanLinesCR)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !e.ShowProgress || !isProgressLine(line) {
			continue
		}
		fmt.Fprintf(out, "\r%s", e.Styler.Render(display.StyleProgress, line))
	}
}

// isProgressLine reports whether a line carries an ffmpeg progress token.
func isProgressLine(line string) bool {
	return strings.Contains(line, "frame=") ||
		strings.Contains(line, "time=") ||
		strings.Contains(line, "speed=")
}

// scanLinesCR splits on \n or \r, since ffmpeg rewrites its progress line
// with bare carriage returns.
func scanLinesCR(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
