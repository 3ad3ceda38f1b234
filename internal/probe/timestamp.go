package probe

import (
	"strings"
	"time"
)

// creationTags is the tag probe order: the standard creation-time tag, the
// generic date tag, then the QuickTime vendor tag. First parseable wins.
var creationTags = []string{
	"creation_time",
	"date",
	"com.apple.quicktime.creationdate",
}

// timestampLayouts covers the tag formats cameras actually write.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// resolveCreationTime walks the tag chain and falls back to the file's
// modification time, so the result is always set.
func resolveCreationTime(tags map[string]string, mtime time.Time) time.Time {
	for _, tag := range creationTags {
		v, ok := tags[tag]
		if !ok {
			continue
		}
		if t, ok := parseTimestamp(v); ok {
			return t
		}
	}
	return mtime
}

// parseTimestamp tries each known layout against the tag value.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
