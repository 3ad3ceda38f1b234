// Command clipchron is the CLI entrypoint for the chronological clip batch
// encoder/merger.
//
// It discovers clips in a directory, orders them by creation time, asks
// for (or takes from flags) the encoding configuration, and drives the
// sequential batch of ffmpeg encodes — or a single concatenated merge.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/strandway/clipchron/internal/batch"
	"github.com/strandway/clipchron/internal/check"
	"github.com/strandway/clipchron/internal/config"
	"github.com/strandway/clipchron/internal/display"
	"github.com/strandway/clipchron/internal/ffmpeg"
	"github.com/strandway/clipchron/internal/logging"
	"github.com/strandway/clipchron/internal/pipeline"
	"github.com/strandway/clipchron/internal/planner"
	"github.com/strandway/clipchron/internal/probe"
	"github.com/strandway/clipchron/internal/prompt"
)

// version is injected at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	opts := config.Defaults()
	if err := config.ParseFlags(&opts, os.Args[1:], version); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "clipchron: %v\n", err)
		return 1
	}

	styler := display.NewStyler(opts.ColorMode)
	log, err := logging.NewLogger(styler, opts.Verbose, opts.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clipchron: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(styler)

	// Fail fast if the external tools are missing. The NVENC capability
	// check runs again after the backend is final.
	if err := check.CheckDeps(config.BackendSoftware); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 2: Signal handling. Cancelling the context terminates the
	// active ffmpeg process and skips the remaining items.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	prompter := prompt.New(os.Stdin, os.Stdout, styler)

	// Phase 3: Input directory and discovery.
	if opts.InputDir == "" {
		if opts.AssumeYes {
			opts.InputDir = "."
		} else {
			opts.InputDir = prompter.Ask("Enter input directory", ".")
		}
	}
	fi, err := os.Stat(opts.InputDir)
	if err != nil || !fi.IsDir() {
		log.Error("Directory not found: %s", opts.InputDir)
		return 1
	}

	log.Info("Scanning directory: %s", opts.InputDir)
	clips, skips, err := batch.Scan(ctx, opts.InputDir, probe.Probe)
	for _, s := range skips {
		log.Warn("Skipped at resolution: %s (%v)", filepath.Base(s.Path), s.Err)
	}
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Success("Found %d video files", len(clips))
	printChronology(log, clips)

	if !opts.AssumeYes && !prompter.Confirm("Proceed with batch encoding?", true) {
		log.Info("Cancelled by user")
		return 0
	}

	// Phase 4: Configuration. Prompts fill whatever the flags left at
	// defaults; --yes skips straight to validation.
	if !opts.AssumeYes {
		display.PrintHeader(styler, "ENCODING OPTIONS")
		prompt.Configure(prompter, &opts)
	}
	if err := opts.Validate(); err != nil {
		log.Error("%v", err)
		return 1
	}
	if err := check.CheckDeps(opts.Backend); err != nil {
		log.Error("%v", err)
		return 1
	}
	if opts.Stabilize {
		// vidstabtransform normally needs a vidstabdetect analysis pass;
		// without one the transform file is absent and the filter may be
		// a no-op or fail outright.
		log.Warn("Stabilization runs vidstabtransform without a detect pass; results may be unstabilized")
	}

	// Phase 5: Output directory.
	if opts.OutputDir == "" {
		opts.OutputDir = opts.DefaultOutputDir()
		if !opts.AssumeYes {
			opts.OutputDir = prompter.Ask("Output directory", opts.OutputDir)
		}
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", opts.OutputDir)
		return 1
	}

	// Phase 6: Plan and execute.
	now := time.Now()
	var items []*planner.Item
	if opts.Merge {
		items = []*planner.Item{planner.BuildMerge(&opts, clips, opts.OutputDir, now)}
		display.PrintHeader(styler, "STARTING VIDEO MERGE")
	} else {
		items = planner.BuildItems(&opts, clips, opts.OutputDir, now)
		display.PrintHeader(styler, "STARTING BATCH ENCODE")
	}
	log.Info("Output directory: %s", opts.OutputDir)
	log.Info("Encoder: %s | preset %s | %d Mbps", opts.Encoder(), opts.EffectivePreset(), opts.BitrateMbps)

	exec := &ffmpeg.Executor{Styler: styler, ShowProgress: true}
	report := pipeline.Run(ctx, &opts, log, items, exec)

	if report.Aborted || report.Failed > 0 {
		return 1
	}
	display.PrintHeader(styler, "DONE!")
	log.Success("All videos processed")
	log.Info("Output location: %s", opts.OutputDir)
	return 0
}

// printChronology lists the ordered batch with timestamps, durations, and
// sizes, plus the pre-batch totals.
func printChronology(log *logging.Logger, clips batch.OrderedBatch) {
	log.Info("Files in chronological order:")
	for i, c := range clips {
		log.Info("  %2d. %-30s | %s | %s | %s",
			i+1, filepath.Base(c.Path),
			c.CreationTime.Format("2006-01-02 15:04:05"),
			display.FormatDuration(c.Duration),
			display.FormatBytes(c.SizeBytes))
	}
	log.Info("Total size: %s", display.FormatBytes(clips.TotalBytes()))
	log.Info("Total duration: %s", display.FormatDuration(clips.TotalDuration()))
}
