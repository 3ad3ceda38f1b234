package ffmpeg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/strandway/clipchron/internal/batch"
)

// WriteManifest writes the concat demuxer manifest: one absolute path per
// line, single-quoted with embedded quotes escaped for the demuxer's
// quoting rules.
func WriteManifest(path string, clips batch.OrderedBatch) error {
	var b strings.Builder
	for i := range clips {
		abs, err := filepath.Abs(clips[i].Path)
		if err != nil {
			return err
		}
		b.WriteString("file '")
		b.WriteString(escapeManifestPath(abs))
		b.WriteString("'\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// escapeManifestPath escapes single quotes the way the concat demuxer
// expects: close the quote, emit an escaped quote, reopen.
func escapeManifestPath(p string) string {
	return strings.ReplaceAll(p, "'", `'\''`)
}
