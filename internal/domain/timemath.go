package domain

import (
	"fmt"
	"time"
)

// DurationSeconds returns the whole-second span between start and the given
// end, substituting now when end is nil (running entry). The computation is
// over absolute instants, so crossing a DST transition cannot skew the
// result. Never negative; partial seconds are truncated.
func DurationSeconds(start time.Time, end *time.Time, now time.Time) int {
	effective := now
	if end != nil {
		effective = *end
	}
	d := effective.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// FormatHMS renders a second count as zero-padded HH:MM:SS. Hours are not
// wrapped at 24 (90000 renders as "25:00:00"); negative input renders as
// "00:00:00".
func FormatHMS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
