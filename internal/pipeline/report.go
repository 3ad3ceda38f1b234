package pipeline

import "time"

// Report accumulates per-item outcomes and pre-batch totals. Only the
// driver mutates it; batch-wide percentages are computed here and nowhere
// else.
type Report struct {
	Total        int
	Succeeded    int
	Failed       int
	NotAttempted int
	FailedFiles  []string

	TotalInputBytes     int64
	TotalOutputBytes    int64 // Succeeded items only.
	TotalSourceDuration float64
	Elapsed             time.Duration

	Aborted bool // An interruption cut the batch short.
}

// CompressionRatio returns 1 - totalOutput/totalInput. Only reported when
// total output bytes are positive.
func (r *Report) CompressionRatio() (float64, bool) {
	if r.TotalOutputBytes <= 0 || r.TotalInputBytes <= 0 {
		return 0, false
	}
	return 1 - float64(r.TotalOutputBytes)/float64(r.TotalInputBytes), true
}

// SpeedFactor returns the average real-time speed factor,
// totalSourceDuration / totalWallClock. Only reported when wall-clock time
// is positive.
func (r *Report) SpeedFactor() (float64, bool) {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0, false
	}
	return r.TotalSourceDuration / secs, true
}
