// Package pipeline drives the batch: it runs each plan item's external
// encode process strictly one at a time, isolates per-item failures,
// observes interruption, and aggregates the final report.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/strandway/clipchron/internal/config"
	"github.com/strandway/clipchron/internal/display"
	"github.com/strandway/clipchron/internal/ffmpeg"
	"github.com/strandway/clipchron/internal/logging"
	"github.com/strandway/clipchron/internal/planner"
)

// Runner executes one plan item's external process. The production
// implementation is *ffmpeg.Executor; tests inject mocks that record
// active intervals.
type Runner interface {
	Run(ctx context.Context, item *planner.Item) error
}

// Run materializes every item's argument list up front, then processes the
// items sequentially: Pending -> Running -> Succeeded/Failed. A cancelled
// context terminates the active process and marks it and every remaining
// item NotAttempted. Exactly one item is ever Running.
func Run(ctx context.Context, opts *config.Options, log *logging.Logger, items []*planner.Item, run Runner) *Report {
	report := &Report{Total: len(items)}
	for _, item := range items {
		item.Args = ffmpeg.BuildArgs(opts, item)
		report.TotalInputBytes += item.InputBytes()
		report.TotalSourceDuration += item.SourceDuration()
	}

	start := time.Now()
	for i, item := range items {
		if ctx.Err() != nil {
			markRemaining(items[i:], report)
			report.Aborted = true
			break
		}

		if item.Merge {
			log.Info("Merging %d clips -> %s", len(item.Clips), filepath.Base(item.OutputPath))
			log.Info("Command: %s", strings.Join(item.Args, " "))
		} else {
			log.Info("[%d/%d] %s -> %s", item.Index, len(items),
				item.InputName(), filepath.Base(item.OutputPath))
			log.Info("  Size: %s | Duration: %s",
				display.FormatBytes(item.InputBytes()),
				display.FormatDuration(item.SourceDuration()))
		}
		log.Debug("  job %s", item.ID)

		if item.Merge {
			if err := ffmpeg.WriteManifest(item.ManifestPath, item.Clips); err != nil {
				log.Error("Cannot write concat manifest: %v", err)
				failItem(item, report)
				continue
			}
		}

		item.State = planner.StateRunning
		itemStart := time.Now()
		err := run.Run(ctx, item)

		if item.Merge {
			os.Remove(item.ManifestPath)
		}

		if ctx.Err() != nil {
			// The active process was terminated by the interruption; the
			// item was never given a full attempt.
			log.Warn("Interrupted, stopping batch")
			markRemaining(items[i:], report)
			report.Aborted = true
			break
		}

		if err != nil {
			log.Error("Encode failed: %s (%v)", item.InputName(), err)
			failItem(item, report)
			continue
		}

		item.State = planner.StateSucceeded
		report.Succeeded++
		finishItem(log, report, item, time.Since(itemStart))
	}
	report.Elapsed = time.Since(start)

	logSummary(log, report)
	return report
}

// failItem records a per-item failure; the batch continues.
func failItem(item *planner.Item, report *Report) {
	item.State = planner.StateFailed
	report.Failed++
	report.FailedFiles = append(report.FailedFiles, item.InputName())
}

// markRemaining marks items not yet completed as NotAttempted.
func markRemaining(rest []*planner.Item, report *Report) {
	for _, item := range rest {
		if item.State == planner.StateSucceeded || item.State == planner.StateFailed {
			continue
		}
		item.State = planner.StateNotAttempted
		report.NotAttempted++
	}
}

// finishItem measures the output and logs the per-item outcome. A missing
// output despite exit 0 is logged but still counts as success.
func finishItem(log *logging.Logger, report *Report, item *planner.Item, elapsed time.Duration) {
	var outSize int64
	if fi, err := os.Stat(item.OutputPath); err == nil {
		outSize = fi.Size()
	} else {
		log.Warn("Output missing despite successful exit: %s", item.OutputPath)
	}
	report.TotalOutputBytes += outSize

	in := item.InputBytes()
	if outSize > 0 && in > 0 {
		ratio := 1 - float64(outSize)/float64(in)
		log.Success("Encoded in %s | output %s (%s)",
			display.FormatDuration(elapsed.Seconds()),
			display.FormatBytes(outSize),
			display.FormatRatio(ratio))
		return
	}
	log.Success("Encoded in %s", display.FormatDuration(elapsed.Seconds()))
}

// logSummary emits the final report. Failed filenames are always
// enumerated, never just counted.
func logSummary(log *logging.Logger, report *Report) {
	log.Info("==============================")
	log.Info("Total time: %s", display.FormatDuration(report.Elapsed.Seconds()))
	log.Success("Succeeded: %d/%d", report.Succeeded, report.Total)
	if report.Failed > 0 {
		log.Error("Failed: %d/%d", report.Failed, report.Total)
		for _, name := range report.FailedFiles {
			log.Error("  - %s", name)
		}
	}
	if report.NotAttempted > 0 {
		log.Warn("Not attempted: %d (batch interrupted)", report.NotAttempted)
	}

	if ratio, ok := report.CompressionRatio(); ok {
		log.Info("Total input:  %s", display.FormatBytes(report.TotalInputBytes))
		log.Info("Total output: %s (%s)",
			display.FormatBytes(report.TotalOutputBytes), display.FormatRatio(ratio))
	}
	if speed, ok := report.SpeedFactor(); ok {
		log.Info("Average speed: %.2fx realtime", speed)
	}
}
