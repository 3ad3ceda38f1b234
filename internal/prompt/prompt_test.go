package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/strandway/clipchron/internal/config"
	"github.com/strandway/clipchron/internal/display"
)

func scripted(answers ...string) *Prompter {
	return New(strings.NewReader(strings.Join(answers, "\n")+"\n"),
		&bytes.Buffer{}, display.Styler{})
}

func TestAsk(t *testing.T) {
	p := scripted("  hello  ", "")
	if got := p.Ask("q", "def"); got != "hello" {
		t.Errorf("Ask = %q, want trimmed %q", got, "hello")
	}
	if got := p.Ask("q", "def"); got != "def" {
		t.Errorf("empty answer: Ask = %q, want default", got)
	}
	// Exhausted input (EOF) also takes the default.
	if got := p.Ask("q", "fallback"); got != "fallback" {
		t.Errorf("EOF: Ask = %q, want default", got)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		def    bool
		want   bool
	}{
		{"y", false, true},
		{"yes", false, true},
		{"Y", false, true},
		{"n", true, false},
		{"no", true, false},
		{"", true, true},
		{"", false, false},
		{"garbage", true, false},
	}
	for _, tt := range tests {
		p := scripted(tt.answer)
		if got := p.Confirm("proceed?", tt.def); got != tt.want {
			t.Errorf("Confirm(%q, def=%v) = %v, want %v", tt.answer, tt.def, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	opts := []string{"one", "two", "three"}
	tests := []struct {
		answer string
		def    int
		want   int
	}{
		{"2", 1, 2},
		{"", 3, 3},
		{"0", 2, 2},   // below range
		{"4", 2, 2},   // above range
		{"abc", 1, 1}, // non-numeric
	}
	for _, tt := range tests {
		p := scripted(tt.answer)
		if got := p.Select("pick", opts, tt.def); got != tt.want {
			t.Errorf("Select(%q, def=%d) = %d, want %d", tt.answer, tt.def, got, tt.want)
		}
	}
}

func TestSelectPrintsMenu(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("1\n"), &out, display.Styler{})
	p.Select("Encoding method:", []string{"alpha", "beta"}, 1)
	for _, want := range []string{"Encoding method:", "1. alpha", "2. beta", "Select [1-2]"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("menu output missing %q:\n%s", want, out.String())
		}
	}
}

func TestConfigureAllDefaults(t *testing.T) {
	// Empty lines everywhere: the sequence must leave the defaults intact.
	opts := config.Defaults()
	p := scripted("", "", "", "", "", "", "", "")

	Configure(p, &opts)

	if opts.Backend != config.BackendHardware {
		t.Errorf("Backend = %v", opts.Backend)
	}
	if opts.Codec != config.CodecH264 {
		t.Errorf("Codec = %v", opts.Codec)
	}
	if opts.Resolution != config.OriginalSetting {
		t.Errorf("Resolution = %q", opts.Resolution)
	}
	if opts.FrameRate != config.OriginalSetting {
		t.Errorf("FrameRate = %q", opts.FrameRate)
	}
	if opts.Stabilize {
		t.Error("Stabilize should default off")
	}
	if opts.Preset != "p4" {
		t.Errorf("Preset = %q", opts.Preset)
	}
	if opts.BitrateMbps != 50 {
		t.Errorf("BitrateMbps = %d", opts.BitrateMbps)
	}
	if opts.Naming != config.NamingStemSuffix {
		t.Errorf("Naming = %v", opts.Naming)
	}
}

func TestConfigureHardwareSequence(t *testing.T) {
	opts := config.Defaults()
	// backend=1 (nvenc), codec=3 (av1), resolution=3 (1080p), fps=1 (60),
	// stabilize=1 (yes), preset=3 (p7), bitrate=25, naming=2 (sequential).
	p := scripted("1", "3", "3", "1", "1", "3", "25", "2")

	Configure(p, &opts)

	if opts.Backend != config.BackendHardware {
		t.Errorf("Backend = %v", opts.Backend)
	}
	if opts.Codec != config.CodecAV1 {
		t.Errorf("Codec = %v, want av1", opts.Codec)
	}
	if opts.Resolution != "1920x1080" {
		t.Errorf("Resolution = %q", opts.Resolution)
	}
	if opts.FrameRate != "60" {
		t.Errorf("FrameRate = %q", opts.FrameRate)
	}
	if !opts.Stabilize {
		t.Error("Stabilize should be on")
	}
	if opts.Preset != "p7" {
		t.Errorf("Preset = %q", opts.Preset)
	}
	if opts.BitrateMbps != 25 {
		t.Errorf("BitrateMbps = %d", opts.BitrateMbps)
	}
	if opts.Naming != config.NamingSequential {
		t.Errorf("Naming = %v", opts.Naming)
	}
}

func TestConfigureSoftwareSkipsPreset(t *testing.T) {
	opts := config.Defaults()
	var out bytes.Buffer
	// backend=2 (cpu), codec=2 (hevc), resolution/fps/stab defaults,
	// bitrate default, naming default. No preset answer is consumed.
	p := New(strings.NewReader("2\n2\n\n\n\n\n\n"), &out, display.Styler{})

	Configure(p, &opts)

	if opts.Backend != config.BackendSoftware {
		t.Errorf("Backend = %v", opts.Backend)
	}
	if opts.Codec != config.CodecHEVC {
		t.Errorf("Codec = %v", opts.Codec)
	}
	if strings.Contains(out.String(), "preset") {
		t.Error("software path must not prompt for an NVENC preset")
	}
	if strings.Contains(out.String(), "AV1") {
		t.Error("software path must not offer AV1")
	}
}

func TestConfigureMergeSkipsNaming(t *testing.T) {
	opts := config.Defaults()
	opts.Merge = true
	var out bytes.Buffer
	p := New(strings.NewReader(strings.Repeat("\n", 8)), &out, display.Styler{})

	Configure(p, &opts)

	if strings.Contains(out.String(), "filename format") {
		t.Error("merge mode must not prompt for per-item naming")
	}
}

func TestConfigureFlagValuesBecomeDefaults(t *testing.T) {
	opts := config.Defaults()
	opts.Backend = config.BackendSoftware
	opts.Codec = config.CodecHEVC
	opts.Resolution = "1280x720"
	opts.BitrateMbps = 8
	// Accept every presented default.
	p := scripted("", "", "", "", "", "", "")

	Configure(p, &opts)

	if opts.Backend != config.BackendSoftware {
		t.Errorf("Backend default not honored: %v", opts.Backend)
	}
	if opts.Codec != config.CodecHEVC {
		t.Errorf("Codec default not honored: %v", opts.Codec)
	}
	if opts.Resolution != "1280x720" {
		t.Errorf("Resolution default not honored: %q", opts.Resolution)
	}
	if opts.BitrateMbps != 8 {
		t.Errorf("BitrateMbps default not honored: %d", opts.BitrateMbps)
	}
}
