// Package batch discovers candidate clips in a directory, resolves their
// metadata, and establishes the deterministic chronological processing
// order for a run.
package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/strandway/clipchron/internal/probe"
)

// clipExtension is the container extension accepted by the scanner,
// matched case-insensitively.
const clipExtension = ".mp4"

// ErrEmptyBatch is returned when no file in the directory resolves
// successfully. Callers report it and exit non-zero; it is never treated
// as success.
var ErrEmptyBatch = errors.New("no usable video files found")

// Resolver resolves one file path into its metadata. Injected so the
// scanner is testable without an ffprobe binary.
type Resolver func(ctx context.Context, path string) (probe.ClipMetadata, error)

// Skip records a file excluded at resolution time, with its cause. Skips
// are always surfaced to the user, never silently dropped.
type Skip struct {
	Path string
	Err  error
}

// OrderedBatch is the chronologically ordered clip sequence for one run.
// Sorted ascending by creation time; ties keep discovery order.
type OrderedBatch []probe.ClipMetadata

// TotalBytes sums the source sizes of every clip in the batch.
func (b OrderedBatch) TotalBytes() int64 {
	var n int64
	for i := range b {
		n += b[i].SizeBytes
	}
	return n
}

// TotalDuration sums the source durations, in seconds.
func (b OrderedBatch) TotalDuration() float64 {
	var d float64
	for i := range b {
		d += b[i].Duration
	}
	return d
}

// Scan lists dir (non-recursive), resolves every regular file with the
// clip extension, and returns the chronological batch plus the files
// skipped at resolution. Directories and symlinks are excluded from the
// candidate set entirely. Returns ErrEmptyBatch when nothing resolves.
func Scan(ctx context.Context, dir string, resolve Resolver) (OrderedBatch, []Skip, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var clips OrderedBatch
	var skips []Skip
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), clipExtension) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		meta, err := resolve(ctx, path)
		if err != nil {
			skips = append(skips, Skip{Path: path, Err: err})
			continue
		}
		clips = append(clips, meta)
	}

	if len(clips) == 0 {
		return nil, skips, ErrEmptyBatch
	}

	// Stable sort keeps discovery order for equal timestamps, so runs
	// over the same directory are reproducible.
	sort.SliceStable(clips, func(i, j int) bool {
		return clips[i].CreationTime.Before(clips[j].CreationTime)
	})
	return clips, skips, nil
}
