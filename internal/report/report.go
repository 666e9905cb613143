// Package report holds the pure aggregation functions over time entries:
// per-project daily totals, per-day weekly totals, and CSV export text.
// Nothing here touches storage.
package report

import (
	"sort"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
)

// ProjectTotal is one row of a daily report: total clipped seconds for a
// single project within the reporting window.
type ProjectTotal struct {
	ProjectID string
	Name      string
	Seconds   int
}

// DayTotal is one row of a weekly report: total clipped seconds across all
// projects for a single calendar day.
type DayTotal struct {
	Date    time.Time
	Seconds int
}

// clippedSeconds returns the whole-second overlap between the entry's
// interval (end substituted by now when running) and [rangeStart, rangeEnd).
func clippedSeconds(e *domain.TimeEntry, rangeStart, rangeEnd, now time.Time) int {
	end := now
	if e.End != nil {
		end = *e.End
	}
	overlapStart := e.Start
	if rangeStart.After(overlapStart) {
		overlapStart = rangeStart
	}
	overlapEnd := end
	if rangeEnd.Before(overlapEnd) {
		overlapEnd = rangeEnd
	}
	d := overlapEnd.Sub(overlapStart)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// DailyTotals sums clipped durations per project over [rangeStart, rangeEnd).
// Projects with no overlapping seconds are omitted rather than reported as
// zero. Rows are sorted by seconds descending; display names are resolved
// through nameFor at aggregation time.
func DailyTotals(entries []*domain.TimeEntry, rangeStart, rangeEnd, now time.Time, nameFor func(projectID string) string) []ProjectTotal {
	totals := make(map[string]int)
	for _, e := range entries {
		if secs := clippedSeconds(e, rangeStart, rangeEnd, now); secs > 0 {
			totals[e.ProjectID] += secs
		}
	}

	rows := make([]ProjectTotal, 0, len(totals))
	for projectID, secs := range totals {
		rows = append(rows, ProjectTotal{ProjectID: projectID, Name: nameFor(projectID), Seconds: secs})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Seconds > rows[j].Seconds
	})
	return rows
}

// WeeklyTotals returns exactly seven rows, one per calendar day from
// weekStart through weekStart+6. Day boundaries are computed in loc, so a
// DST transition yields a 23- or 25-hour day rather than a skewed window.
// An entry spanning several days contributes to each day it overlaps.
func WeeklyTotals(entries []*domain.TimeEntry, weekStart, now time.Time, loc *time.Location) []DayTotal {
	year, month, day := weekStart.In(loc).Date()

	rows := make([]DayTotal, 0, 7)
	for offset := 0; offset < 7; offset++ {
		dayStart := time.Date(year, month, day+offset, 0, 0, 0, 0, loc)
		dayEnd := time.Date(year, month, day+offset+1, 0, 0, 0, 0, loc)

		secs := 0
		for _, e := range entries {
			secs += clippedSeconds(e, dayStart, dayEnd, now)
		}
		rows = append(rows, DayTotal{Date: dayStart, Seconds: secs})
	}
	return rows
}
