package planner

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/strandway/clipchron/internal/batch"
	"github.com/strandway/clipchron/internal/config"
	"github.com/strandway/clipchron/internal/probe"
)

const outputExtension = ".mp4"

// OutputName derives the per-item output filename for clip at 1-based
// index, following the selected naming scheme. Deterministic given the
// configuration and generation instant.
func OutputName(clip *probe.ClipMetadata, opts *config.Options, index int, now time.Time) string {
	stem := clipStem(clip.Path)
	switch opts.Naming {
	case config.NamingSequential:
		return fmt.Sprintf("%03d_%s%s", index, opts.CodecLabel(), outputExtension)
	case config.NamingTimestamped:
		return fmt.Sprintf("%s_%s%s", stem, now.Format("20060102_150405"), outputExtension)
	default: // stem-suffix
		return fmt.Sprintf("%s_%s%s", stem, opts.CodecLabel(), outputExtension)
	}
}

// MergeName derives the merge-mode output filename: first clip's date,
// codec label, generation instant.
func MergeName(clips batch.OrderedBatch, opts *config.Options, now time.Time) string {
	firstDate := clips[0].CreationTime.Format("20060102")
	return fmt.Sprintf("merged_%s_%s_%s%s",
		firstDate, opts.CodecLabel(), now.Format("20060102_150405"), outputExtension)
}

func clipStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
