// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. Defaults match the interactive prompt defaults so the
// --yes path behaves exactly like accepting every prompt.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConfiguration is wrapped by every validation failure so callers
// can classify the whole category with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// --- Enum types for validated string fields ---

// Backend selects the encoding backend.
type Backend string

const (
	BackendHardware Backend = "hardware" // NVENC via NVIDIA GPU (default).
	BackendSoftware Backend = "software" // libx264/libx265 on the CPU.
)

// Codec is the target video codec family.
type Codec string

const (
	CodecH264 Codec = "h264" // Best compatibility (default).
	CodecHEVC Codec = "hevc" // Better compression.
	CodecAV1  Codec = "av1"  // Hardware only.
)

// NamingScheme selects how per-item output filenames are derived.
type NamingScheme string

const (
	NamingStemSuffix  NamingScheme = "stem-suffix" // GH011595_h264.mp4 (default).
	NamingSequential  NamingScheme = "sequential"  // 001_h264.mp4
	NamingTimestamped NamingScheme = "timestamped" // GH011595_20260116_073000.mp4
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// OriginalSetting is the sentinel for "keep the source value" in the
// resolution and frame-rate selections.
const OriginalSetting = "original"

// resolutions maps the recognized resolution selections to scale targets.
var resolutions = map[string]string{
	"3840x2160": "3840:2160",
	"2560x1440": "2560:1440",
	"1920x1080": "1920:1080",
	"1280x720":  "1280:720",
}

// frameRates is the set of recognized frame-rate selections.
var frameRates = map[string]bool{"60": true, "30": true}

// hardwarePresets is the set of valid NVENC preset names.
var hardwarePresets = map[string]bool{"p1": true, "p4": true, "p7": true}

// SoftwarePreset is the fixed preset used on the software path.
const SoftwarePreset = "medium"

// SoftwareCRF is the fixed constant-rate-factor used on the software path.
const SoftwareCRF = "23"

// Options holds all runtime settings. It is populated by [Defaults], then
// mutated by [ParseFlags] and (unless --yes) the interactive prompt
// sequence, validated once, and shared read-only by every item in a batch.
type Options struct {
	// Paths.
	InputDir  string
	OutputDir string // Empty until resolved; defaults derive from InputDir.

	// Mode.
	Merge bool // Concatenate all clips into one output instead of per-item encodes.

	// Encoding.
	Backend     Backend
	Codec       Codec
	Resolution  string // "3840x2160" | ... | "original".
	FrameRate   string // "60" | "30" | "original".
	Stabilize   bool
	Preset      string // NVENC p1/p4/p7; software path is fixed to "medium".
	BitrateMbps int    // Target video bitrate, positive.

	// Output naming (per-item mode only).
	Naming NamingScheme

	// Behavior.
	AssumeYes bool // Skip all prompts, take defaults + flags.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string
}

// Defaults returns Options matching the stated prompt defaults: hardware
// H.264 at 50 Mbps, original resolution and frame rate, no stabilization,
// balanced preset, stem-suffix naming.
func Defaults() Options {
	return Options{
		Backend:     BackendHardware,
		Codec:       CodecH264,
		Resolution:  OriginalSetting,
		FrameRate:   OriginalSetting,
		Stabilize:   false,
		Preset:      "p4",
		BitrateMbps: 50,
		Naming:      NamingStemSuffix,
		ColorMode:   ColorAuto,
	}
}

// Validate checks every encoding selection once, before any plan is built
// or process spawned. All failures wrap [ErrInvalidConfiguration].
func (o *Options) Validate() error {
	switch o.Backend {
	case BackendHardware, BackendSoftware:
	default:
		return fmt.Errorf("%w: backend %q (use 'hardware' or 'software')", ErrInvalidConfiguration, o.Backend)
	}

	switch o.Codec {
	case CodecH264, CodecHEVC:
	case CodecAV1:
		if o.Backend == BackendSoftware {
			return fmt.Errorf("%w: av1 is hardware-only", ErrInvalidConfiguration)
		}
	default:
		return fmt.Errorf("%w: codec %q (use 'h264', 'hevc' or 'av1')", ErrInvalidConfiguration, o.Codec)
	}

	if o.Resolution != OriginalSetting {
		if _, ok := resolutions[o.Resolution]; !ok {
			return fmt.Errorf("%w: resolution %q", ErrInvalidConfiguration, o.Resolution)
		}
	}

	if o.FrameRate != OriginalSetting && !frameRates[o.FrameRate] {
		return fmt.Errorf("%w: frame rate %q (use '60', '30' or 'original')", ErrInvalidConfiguration, o.FrameRate)
	}

	if o.Backend == BackendHardware && !hardwarePresets[o.Preset] {
		return fmt.Errorf("%w: preset %q (use 'p1', 'p4' or 'p7')", ErrInvalidConfiguration, o.Preset)
	}

	if o.BitrateMbps <= 0 {
		return fmt.Errorf("%w: bitrate must be positive (got %d)", ErrInvalidConfiguration, o.BitrateMbps)
	}

	switch o.Naming {
	case NamingStemSuffix, NamingSequential, NamingTimestamped:
	default:
		return fmt.Errorf("%w: naming scheme %q", ErrInvalidConfiguration, o.Naming)
	}

	return nil
}

// Encoder returns the ffmpeg video encoder name for the selected backend
// and codec family.
func (o *Options) Encoder() string {
	if o.Backend == BackendHardware {
		return string(o.Codec) + "_nvenc"
	}
	switch o.Codec {
	case CodecHEVC:
		return "libx265"
	default:
		return "libx264"
	}
}

// CodecLabel returns the simplified codec label used in output filenames:
// "h264_nvenc" -> "h264", "libx264" -> "x264".
func (o *Options) CodecLabel() string {
	enc := o.Encoder()
	enc = strings.TrimSuffix(enc, "_nvenc")
	return strings.TrimPrefix(enc, "lib")
}

// ScaleTarget returns the "W:H" scale filter argument, or "" when the
// original resolution is kept.
func (o *Options) ScaleTarget() string {
	return resolutions[o.Resolution]
}

// Bitrate returns the ffmpeg bitrate argument, e.g. "50M".
func (o *Options) Bitrate() string {
	return strconv.Itoa(o.BitrateMbps) + "M"
}

// BufferSize returns the rate-control buffer size, twice the target bitrate.
func (o *Options) BufferSize() string {
	return strconv.Itoa(o.BitrateMbps*2) + "M"
}

// EffectivePreset returns the preset actually passed to ffmpeg: the chosen
// NVENC preset on the hardware path, the fixed software preset otherwise.
func (o *Options) EffectivePreset() string {
	if o.Backend == BackendHardware {
		return o.Preset
	}
	return SoftwarePreset
}

// DefaultOutputDir derives the output directory from the input directory:
// encoded_output for per-item mode, merged_output for merge mode.
func (o *Options) DefaultOutputDir() string {
	sub := "encoded_output"
	if o.Merge {
		sub = "merged_output"
	}
	return strings.TrimRight(o.InputDir, "/") + "/" + sub
}
