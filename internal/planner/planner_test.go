package planner

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/strandway/clipchron/internal/batch"
	"github.com/strandway/clipchron/internal/config"
	"github.com/strandway/clipchron/internal/probe"
)

var genTime = time.Date(2026, 1, 16, 7, 30, 0, 0, time.UTC)

func testBatch(n int) batch.OrderedBatch {
	clips := make(batch.OrderedBatch, 0, n)
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		clips = append(clips, probe.ClipMetadata{
			Path:         fmt.Sprintf("/media/GH01%04d.MP4", 1595+i),
			CreationTime: base.Add(time.Duration(i) * time.Minute),
			Duration:     60,
			SizeBytes:    1 << 20,
		})
	}
	return clips
}

func TestOutputName_Schemes(t *testing.T) {
	clip := &probe.ClipMetadata{Path: "/media/GH011595.MP4"}
	tests := []struct {
		name   string
		scheme config.NamingScheme
		index  int
		want   string
	}{
		{"stem suffix", config.NamingStemSuffix, 1, "GH011595_h264.mp4"},
		{"sequential", config.NamingSequential, 7, "007_h264.mp4"},
		{"timestamped", config.NamingTimestamped, 1, "GH011595_20260116_073000.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := config.Defaults()
			opts.Naming = tt.scheme
			got := OutputName(clip, &opts, tt.index, genTime)
			if got != tt.want {
				t.Errorf("OutputName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputName_SequentialDistinctAndMonotonic(t *testing.T) {
	opts := config.Defaults()
	opts.Naming = config.NamingSequential
	clip := &probe.ClipMetadata{Path: "/media/GH011595.MP4"}

	seen := make(map[string]bool)
	prev := ""
	for i := 1; i <= 120; i++ {
		name := OutputName(clip, &opts, i, genTime)
		if seen[name] {
			t.Fatalf("duplicate name %q at index %d", name, i)
		}
		seen[name] = true
		if name <= prev {
			t.Fatalf("names not monotonically increasing: %q after %q", name, prev)
		}
		prev = name
		if !strings.HasPrefix(name, fmt.Sprintf("%03d_", i)) {
			t.Fatalf("name %q missing 3-digit zero-padded index %d", name, i)
		}
	}
}

func TestMergeName(t *testing.T) {
	opts := config.Defaults()
	opts.Codec = config.CodecHEVC
	clips := testBatch(3)
	got := MergeName(clips, &opts, genTime)
	want := "merged_20260110_hevc_20260116_073000.mp4"
	if got != want {
		t.Errorf("MergeName = %q, want %q", got, want)
	}
}

func TestBuildItems(t *testing.T) {
	opts := config.Defaults()
	clips := testBatch(3)
	items := BuildItems(&opts, clips, "/out", genTime)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i, item := range items {
		if item.Merge {
			t.Errorf("item %d should not be merge mode", i)
		}
		if item.Index != i+1 {
			t.Errorf("item %d index = %d", i, item.Index)
		}
		if item.State != StatePending {
			t.Errorf("item %d should start Pending", i)
		}
		if item.ID == "" {
			t.Errorf("item %d missing id", i)
		}
		if filepath.Dir(item.OutputPath) != "/out" {
			t.Errorf("item %d output %q not under /out", i, item.OutputPath)
		}
		if item.Clip != &clips[i] {
			t.Errorf("item %d not paired with clip %d", i, i)
		}
	}
}

func TestBuildMerge(t *testing.T) {
	opts := config.Defaults()
	clips := testBatch(4)
	item := BuildMerge(&opts, clips, "/out", genTime)
	if !item.Merge {
		t.Fatal("merge item should have Merge set")
	}
	if len(item.Clips) != 4 {
		t.Errorf("merge item covers %d clips, want 4", len(item.Clips))
	}
	if item.ManifestPath == "" || filepath.Dir(item.ManifestPath) != "/out" {
		t.Errorf("manifest path %q not under /out", item.ManifestPath)
	}
	if !strings.Contains(item.ManifestPath, item.ID) {
		t.Errorf("manifest name %q should embed the job id", item.ManifestPath)
	}
	if item.InputBytes() != clips.TotalBytes() {
		t.Errorf("InputBytes = %d, want batch total %d", item.InputBytes(), clips.TotalBytes())
	}
	if item.SourceDuration() != clips.TotalDuration() {
		t.Errorf("SourceDuration = %f, want %f", item.SourceDuration(), clips.TotalDuration())
	}
	if item.InputName() != "GH011595.MP4" {
		t.Errorf("InputName = %q, want first clip basename", item.InputName())
	}
}
