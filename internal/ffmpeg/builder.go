// Package ffmpeg builds and executes ffmpeg commands: the shared argument
// skeleton, the concat manifest, and the process runner with live progress
// observation.
package ffmpeg

import (
	"strings"

	"github.com/strandway/clipchron/internal/config"
	"github.com/strandway/clipchron/internal/planner"
)

// BuildArgs constructs the complete ffmpeg argument slice for a plan item.
// Section order: overwrite flag, input(s), filter chain, video codec,
// rate control, audio, output.
func BuildArgs(opts *config.Options, item *planner.Item) []string {
	args := make([]string, 0, 32)
	args = append(args, "ffmpeg", "-y")

	// --- Input ---
	if item.Merge {
		args = append(args, "-f", "concat", "-safe", "0", "-i", item.ManifestPath)
	} else {
		args = append(args, "-i", item.Clip.Path)
	}

	// --- Filter chain ---
	if chain := FilterChain(opts); chain != "" {
		args = append(args, "-vf", chain)
	}

	// --- Video codec ---
	args = append(args, "-c:v", opts.Encoder())
	args = appendRateControl(args, opts)

	// --- Audio (fixed) ---
	args = append(args, "-c:a", "aac", "-b:a", "192k")

	// --- Output ---
	args = append(args, item.OutputPath)
	return args
}

// FilterChain builds the comma-joined -vf argument: stabilization, scale,
// frame rate, in that order. Empty when nothing is selected.
func FilterChain(opts *config.Options) string {
	var filters []string
	if opts.Stabilize {
		filters = append(filters, "vidstabtransform=smoothing=30:zoom=5")
	}
	if scale := opts.ScaleTarget(); scale != "" {
		filters = append(filters, "scale="+scale+":flags=lanczos")
	}
	if opts.FrameRate != config.OriginalSetting {
		filters = append(filters, "fps="+opts.FrameRate)
	}
	return strings.Join(filters, ",")
}

// appendRateControl adds the codec-family rate-control flags. The hardware
// path uses constrained VBR with lookahead and adaptive quantization; HEVC
// additionally gets the high-tier flag (and only HEVC does). The software
// path uses preset + CRF + explicit target bitrate.
func appendRateControl(args []string, opts *config.Options) []string {
	if opts.Backend == config.BackendHardware {
		args = append(args,
			"-preset", opts.EffectivePreset(),
			"-b:v", opts.Bitrate(),
			"-maxrate", opts.Bitrate(),
			"-bufsize", opts.BufferSize(),
			"-rc", "vbr",
			"-rc-lookahead", "32",
			"-spatial-aq", "1",
			"-temporal-aq", "1",
		)
		if opts.Codec == config.CodecHEVC {
			args = append(args, "-tier", "high")
		}
		return args
	}
	return append(args,
		"-preset", opts.EffectivePreset(),
		"-crf", config.SoftwareCRF,
		"-b:v", opts.Bitrate(),
	)
}
