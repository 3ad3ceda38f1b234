package probe

import (
	"fmt"
	"time"
)

// ClipMetadata holds the resolved metadata for one source clip. It is
// created once by [Probe], never mutated afterwards, and exists only for
// files that resolved successfully.
type ClipMetadata struct {
	Path         string
	CreationTime time.Time // Always set: tag chain with mtime fallback.
	Duration     float64   // Seconds; always positive after resolution.
	Width        int       // 0 means unknown (e.g. audio-only clip).
	Height       int       // 0 means unknown.
	Codec        string    // "unknown" when no video stream exists.
	FrameRate    float64   // Reduced rational; 30.0 when no video stream.
	SizeBytes    int64
}

// ResolutionError reports a file that could not be resolved. The batch
// scanner skips such files and carries on.
type ResolutionError struct {
	Path string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
