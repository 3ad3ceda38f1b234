// Package prompt implements the interactive configuration sequence. Input
// and output are injected, so the sequence is testable without a terminal;
// the planner only ever sees the resulting Options value.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/strandway/clipchron/internal/config"
	"github.com/strandway/clipchron/internal/display"
)

// Prompter reads answers line-by-line from an input stream and writes
// styled questions to an output stream.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styler display.Styler
}

// New builds a Prompter over the given streams.
func New(in io.Reader, out io.Writer, styler display.Styler) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, styler: styler}
}

// Ask prints a free-form question and returns the trimmed answer, or the
// default when the answer is empty (including on EOF).
func (p *Prompter) Ask(question, def string) string {
	if def != "" {
		fmt.Fprint(p.out, p.styler.Render(display.StyleProgress,
			fmt.Sprintf("%s (default: %s): ", question, def)))
	} else {
		fmt.Fprint(p.out, p.styler.Render(display.StyleProgress, question+": "))
	}
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" || (err != nil && line == "") {
		return def
	}
	return line
}

// Confirm prints a yes/no question. Empty input takes the default.
func (p *Prompter) Confirm(question string, def bool) bool {
	suffix := "[Y/n]"
	if !def {
		suffix = "[y/N]"
	}
	answer := strings.ToLower(p.Ask(question+" "+suffix, ""))
	if answer == "" {
		return def
	}
	return answer == "y" || answer == "yes"
}

// Select prints a numbered menu and returns the chosen 1-based option.
// Out-of-range or non-numeric input falls back to the default.
func (p *Prompter) Select(title string, options []string, def int) int {
	fmt.Fprintln(p.out, p.styler.Render(display.StyleBold, title))
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt)
	}
	answer := p.Ask(fmt.Sprintf("Select [1-%d]", len(options)), strconv.Itoa(def))
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return def
	}
	return n
}

// Configure runs the full encoding-option sequence, mutating opts in
// place. Values already set by flags are presented as the defaults.
func Configure(p *Prompter, opts *config.Options) {
	// Backend.
	backendDef := 1
	if opts.Backend == config.BackendSoftware {
		backendDef = 2
	}
	switch p.Select("Encoding method:", []string{
		"NVIDIA NVENC (hardware, recommended)",
		"CPU (software, slower)",
	}, backendDef) {
	case 2:
		opts.Backend = config.BackendSoftware
	default:
		opts.Backend = config.BackendHardware
	}

	// Codec. AV1 is offered on the hardware path only.
	if opts.Backend == config.BackendHardware {
		def := 1
		switch opts.Codec {
		case config.CodecHEVC:
			def = 2
		case config.CodecAV1:
			def = 3
		}
		switch p.Select("Output codec:", []string{
			"H.264 (h264_nvenc) - best compatibility",
			"H.265/HEVC (hevc_nvenc) - better compression",
			"AV1 (av1_nvenc) - newest, best quality/size",
		}, def) {
		case 2:
			opts.Codec = config.CodecHEVC
		case 3:
			opts.Codec = config.CodecAV1
		default:
			opts.Codec = config.CodecH264
		}
	} else {
		def := 1
		if opts.Codec == config.CodecHEVC {
			def = 2
		}
		switch p.Select("Output codec:", []string{
			"H.264 (libx264)",
			"H.265/HEVC (libx265)",
		}, def) {
		case 2:
			opts.Codec = config.CodecHEVC
		default:
			opts.Codec = config.CodecH264
		}
	}

	// Resolution.
	resChoices := []string{"3840x2160", "2560x1440", "1920x1080", "1280x720", config.OriginalSetting}
	resDef := 5
	for i, r := range resChoices {
		if r == opts.Resolution {
			resDef = i + 1
		}
	}
	opts.Resolution = resChoices[p.Select("Output resolution:", []string{
		"4K (3840x2160)",
		"2K (2560x1440)",
		"1080p (1920x1080)",
		"720p (1280x720)",
		"Keep original",
	}, resDef)-1]

	// Frame rate.
	fpsChoices := []string{"60", "30", config.OriginalSetting}
	fpsDef := 3
	for i, f := range fpsChoices {
		if f == opts.FrameRate {
			fpsDef = i + 1
		}
	}
	opts.FrameRate = fpsChoices[p.Select("Output frame rate:", []string{
		"60 fps", "30 fps", "Keep original",
	}, fpsDef)-1]

	// Stabilization.
	stabDef := 2
	if opts.Stabilize {
		stabDef = 1
	}
	opts.Stabilize = p.Select("Video stabilization:", []string{"Yes", "No"}, stabDef) == 1

	// Preset (hardware only; software path is fixed).
	if opts.Backend == config.BackendHardware {
		presetChoices := []string{"p1", "p4", "p7"}
		presetDef := 2
		for i, pr := range presetChoices {
			if pr == opts.Preset {
				presetDef = i + 1
			}
		}
		opts.Preset = presetChoices[p.Select("Encoding preset (quality vs speed):", []string{
			"p1 (fastest, lower quality)",
			"p4 (balanced)",
			"p7 (slower, best quality)",
		}, presetDef)-1]
	}

	// Bitrate.
	answer := p.Ask("Bitrate in Mbps", strconv.Itoa(opts.BitrateMbps))
	if n, err := strconv.Atoi(answer); err == nil {
		opts.BitrateMbps = n
	}

	// Output naming (per-item mode only).
	if !opts.Merge {
		nameChoices := []config.NamingScheme{
			config.NamingStemSuffix, config.NamingSequential, config.NamingTimestamped,
		}
		nameDef := 1
		for i, n := range nameChoices {
			if n == opts.Naming {
				nameDef = i + 1
			}
		}
		opts.Naming = nameChoices[p.Select("Output filename format:", []string{
			"Keep original name + codec suffix (GH011595_h264.mp4)",
			"Sequential numbering (001_h264.mp4)",
			"Add timestamp (GH011595_20260116_073000.mp4)",
		}, nameDef)-1]
	}
}
