package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationSeconds_ExplicitEnd(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	got := DurationSeconds(start, &end, time.Now())
	assert.Equal(t, 5400, got)
}

func TestDurationSeconds_NilEndUsesNow(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	now := start.Add(42 * time.Second)

	got := DurationSeconds(start, nil, now)
	assert.Equal(t, 42, got)
}

func TestDurationSeconds_EndBeforeStartReturnsZero(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	got := DurationSeconds(start, &end, time.Now())
	assert.Equal(t, 0, got)
}

func TestDurationSeconds_TruncatesPartialSeconds(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(10*time.Second + 900*time.Millisecond)

	got := DurationSeconds(start, &end, time.Now())
	assert.Equal(t, 10, got)
}

func TestDurationSeconds_AcrossDSTUsesAbsoluteTime(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Fall-back night 2023-11-05: 00:30 EDT to 02:30 EST is three elapsed
	// hours even though the wall clock only advanced two.
	start := time.Date(2023, 11, 5, 0, 30, 0, 0, loc)
	end := time.Date(2023, 11, 5, 2, 30, 0, 0, loc)

	got := DurationSeconds(start, &end, time.Now())
	assert.Equal(t, 10800, got)
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"mixed fields", 3661, "01:01:01"},
		{"negative clamps to zero", -5, "00:00:00"},
		{"hours beyond 24 not wrapped", 90000, "25:00:00"},
		{"hours beyond two digits", 360000, "100:00:00"},
		{"just under a minute", 59, "00:00:59"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHMS(tt.seconds))
		})
	}
}
