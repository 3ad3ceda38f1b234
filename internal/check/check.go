// Package check validates the external tool dependencies before any work
// starts: ffmpeg, ffprobe, and NVENC support for the hardware backend.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/strandway/clipchron/internal/config"
)

// Sentinel errors for missing or unsupported dependencies. All are fatal
// and abort before any file is touched.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrNVENCMissing    = errors.New("ffmpeg has no NVENC encoders (hardware backend unavailable)")
)

// CheckDeps verifies that ffmpeg and ffprobe are on PATH and, when the
// hardware backend is selected, that ffmpeg lists NVENC encoders.
func CheckDeps(backend config.Backend) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if backend == config.BackendHardware && !hasNVENC() {
		return ErrNVENCMissing
	}
	return nil
}

// hasNVENC reports whether ffmpeg's encoder list mentions NVENC.
func hasNVENC() bool {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(out)), "nvenc")
}
