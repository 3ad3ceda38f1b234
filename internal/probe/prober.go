// Package probe resolves clip metadata from a single ffprobe JSON call:
// duration, dimensions, codec, frame rate, and a best-effort creation
// timestamp with a filesystem fallback.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Probe runs ffprobe against path and resolves its ClipMetadata. Any
// non-zero ffprobe exit, malformed output, or missing duration surfaces
// as a *ResolutionError.
func Probe(ctx context.Context, path string) (ClipMetadata, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return ClipMetadata{}, &ResolutionError{Path: path, Err: err}
	}

	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return ClipMetadata{}, &ResolutionError{Path: path, Err: fmt.Errorf("ffprobe: %w", err)}
	}

	return FromJSON(out, path, fi.Size(), fi.ModTime())
}

// FromJSON converts raw ffprobe JSON output into a ClipMetadata. The file
// size and modification time are passed in so parsing is testable without
// a real ffprobe binary or filesystem.
func FromJSON(data []byte, path string, size int64, mtime time.Time) (ClipMetadata, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return ClipMetadata{}, &ResolutionError{Path: path, Err: fmt.Errorf("parse ffprobe JSON: %w", err)}
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(raw.Format.Duration), 64)
	if err != nil || duration < 0 {
		return ClipMetadata{}, &ResolutionError{Path: path, Err: errors.New("missing or non-numeric format.duration")}
	}

	meta := ClipMetadata{
		Path:      path,
		Duration:  duration,
		Codec:     "unknown",
		FrameRate: 30.0,
		SizeBytes: size,
	}

	// First video stream wins; none at all is permissive (audio-only clips
	// keep the 0/"unknown"/30.0 defaults and stay in the batch).
	for i := range raw.Streams {
		s := &raw.Streams[i]
		if s.CodecType != "video" {
			continue
		}
		meta.Width = s.Width
		meta.Height = s.Height
		if s.CodecName != "" {
			meta.Codec = s.CodecName
		}
		fps, err := parseFrameRate(s.RFrameRate)
		if err != nil {
			return ClipMetadata{}, &ResolutionError{Path: path, Err: err}
		}
		meta.FrameRate = fps
		break
	}

	meta.CreationTime = resolveCreationTime(raw.Format.Tags, mtime)
	return meta, nil
}

// parseFrameRate evaluates a rational like "30000/1001" by explicit
// numerator/denominator parsing. An empty string keeps the default.
func parseFrameRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0/0" {
		return 30.0, nil
	}
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		f, err := strconv.ParseFloat(num, 64)
		if err != nil || f <= 0 {
			return 0, fmt.Errorf("malformed frame rate %q", s)
		}
		return f, nil
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed frame rate %q", s)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("malformed frame rate %q", s)
	}
	f := n / d
	if f <= 0 {
		return 0, fmt.Errorf("malformed frame rate %q", s)
	}
	return f, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string            `json:"duration"`
	Tags     map[string]string `json:"tags"`
}

type ffprobeStream struct {
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
}
