package domain

import (
	"strings"
	"time"
)

// TimeEntry is one tracked interval. A nil End marks the entry as running.
type TimeEntry struct {
	ID        string
	ProjectID string
	Start     time.Time
	End       *time.Time
	Note      *string
}

// Running reports whether the entry is still open.
func (e *TimeEntry) Running() bool {
	return e.End == nil
}

// Normalize enforces the write-path invariants: End never precedes Start
// (a too-early End is clamped up to Start) and a Note that is empty after
// trimming is stored as absent rather than as an empty string.
func (e *TimeEntry) Normalize() {
	if e.End != nil && e.End.Before(e.Start) {
		end := e.Start
		e.End = &end
	}
	if e.Note != nil {
		trimmed := strings.TrimSpace(*e.Note)
		if trimmed == "" {
			e.Note = nil
		} else {
			e.Note = &trimmed
		}
	}
}
