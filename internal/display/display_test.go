package display

import (
	"testing"

	"github.com/strandway/clipchron/internal/config"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{734003200, "700.0 MiB"},
		{1073741824, "1.0 GiB"},
		{5368709120, "5.0 GiB"},
		{1099511627776, "1.0 TiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{59.9, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{3725.4, "01:02:05"},
		{86400, "24:00:00"},
		{-5, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0.35, "+35.0%"},
		{0, "+0.0%"},
		{-0.125, "-12.5%"},
		{1, "+100.0%"},
	}
	for _, tt := range tests {
		if got := FormatRatio(tt.ratio); got != tt.want {
			t.Errorf("FormatRatio(%v) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestStylerRender(t *testing.T) {
	on := Styler{enabled: true}
	off := Styler{enabled: false}

	if got := on.Render(StyleError, "x"); got != "\033[91mx\033[0m" {
		t.Errorf("enabled error render = %q", got)
	}
	if got := on.Render(StylePlain, "x"); got != "x" {
		t.Errorf("plain style must pass through, got %q", got)
	}
	if got := off.Render(StyleError, "x"); got != "x" {
		t.Errorf("disabled styler must pass through, got %q", got)
	}
	if got := on.Render(Style(99), "x"); got != "x" {
		t.Errorf("unknown style must pass through, got %q", got)
	}
}

func TestNewStylerExplicitModes(t *testing.T) {
	if !NewStyler(config.ColorAlways).Enabled() {
		t.Error("ColorAlways must enable styling regardless of TTY")
	}
	if NewStyler(config.ColorNever).Enabled() {
		t.Error("ColorNever must disable styling")
	}
}

func TestNewStylerAutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if NewStyler(config.ColorAuto).Enabled() {
		t.Error("NO_COLOR must disable auto styling")
	}
}
