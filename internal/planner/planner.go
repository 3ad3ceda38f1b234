// Package planner turns a validated configuration and an ordered batch
// into concrete plan items: one per clip, or a single concatenation item
// in merge mode.
package planner

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/strandway/clipchron/internal/batch"
	"github.com/strandway/clipchron/internal/config"
	"github.com/strandway/clipchron/internal/probe"
)

// State tracks an item through the batch run.
type State int

const (
	StatePending State = iota
	StateRunning
	StateSucceeded
	StateFailed
	StateNotAttempted // Skipped after an interruption; distinct from Failed.
)

// Item is one unit of encode work. Per-item mode pairs a single clip with
// its output path; merge mode references the whole batch plus a concat
// manifest. Args is materialized once, before any process is spawned.
type Item struct {
	ID    string // uuid, used for manifest temp names and verbose logging.
	State State

	Clip  *probe.ClipMetadata // Per-item mode; nil in merge mode.
	Clips batch.OrderedBatch  // Merge mode; nil in per-item mode.
	Merge bool

	Index        int // 1-based position in the batch (per-item mode).
	OutputPath   string
	ManifestPath string // Merge mode only.
	Args         []string
}

// InputName returns the identifying source filename for reports: the clip
// basename per-item, the first clip's basename in merge mode.
func (it *Item) InputName() string {
	if it.Merge {
		if len(it.Clips) == 0 {
			return ""
		}
		return filepath.Base(it.Clips[0].Path)
	}
	return filepath.Base(it.Clip.Path)
}

// InputBytes returns the total source size feeding this item.
func (it *Item) InputBytes() int64 {
	if it.Merge {
		return it.Clips.TotalBytes()
	}
	return it.Clip.SizeBytes
}

// SourceDuration returns the total source duration feeding this item.
func (it *Item) SourceDuration() float64 {
	if it.Merge {
		return it.Clips.TotalDuration()
	}
	return it.Clip.Duration
}

// BuildItems produces one plan item per clip, in batch order. now is the
// generation instant used by the timestamped naming scheme, passed in so
// naming is deterministic under test.
func BuildItems(opts *config.Options, clips batch.OrderedBatch, outputDir string, now time.Time) []*Item {
	items := make([]*Item, 0, len(clips))
	for i := range clips {
		clip := &clips[i]
		items = append(items, &Item{
			ID:         uuid.NewString(),
			Clip:       clip,
			Index:      i + 1,
			OutputPath: filepath.Join(outputDir, OutputName(clip, opts, i+1, now)),
		})
	}
	return items
}

// BuildMerge produces the single merge-mode item covering the whole batch.
func BuildMerge(opts *config.Options, clips batch.OrderedBatch, outputDir string, now time.Time) *Item {
	id := uuid.NewString()
	return &Item{
		ID:           id,
		Clips:        clips,
		Merge:        true,
		Index:        1,
		OutputPath:   filepath.Join(outputDir, MergeName(clips, opts, now)),
		ManifestPath: filepath.Join(outputDir, "concat_"+id+".txt"),
	}
}
