package report

import (
	"testing"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryBetween(projectID string, start, end time.Time) *domain.TimeEntry {
	return &domain.TimeEntry{ID: projectID + "-" + start.Format("150405"), ProjectID: projectID, Start: start, End: &end}
}

func runningEntry(projectID string, start time.Time) *domain.TimeEntry {
	return &domain.TimeEntry{ID: projectID + "-run", ProjectID: projectID, Start: start}
}

func nameIsID(id string) string { return id }

func TestDailyTotals_ClipsToRange(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	// Entry 09:00-11:00, range 10:00-12:00 — only the 10:00-11:00 hour counts.
	e := entryBetween("p1", day.Add(9*time.Hour), day.Add(11*time.Hour))

	rows := DailyTotals([]*domain.TimeEntry{e}, day.Add(10*time.Hour), day.Add(12*time.Hour), day.Add(12*time.Hour), nameIsID)

	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0].ProjectID)
	assert.Equal(t, 3600, rows[0].Seconds)
}

func TestDailyTotals_OmitsZeroOverlapProjects(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	inside := entryBetween("p1", day.Add(10*time.Hour), day.Add(11*time.Hour))
	outside := entryBetween("p2", day.Add(1*time.Hour), day.Add(2*time.Hour))

	rows := DailyTotals([]*domain.TimeEntry{inside, outside}, day.Add(9*time.Hour), day.Add(17*time.Hour), day.Add(17*time.Hour), nameIsID)

	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0].ProjectID)
}

func TestDailyTotals_EmptyEntries(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := DailyTotals(nil, day, day.AddDate(0, 0, 1), day.Add(time.Hour), nameIsID)
	assert.Empty(t, rows)
}

func TestDailyTotals_RunningEntryUsesNow(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	e := runningEntry("p1", day.Add(9*time.Hour))
	now := day.Add(9*time.Hour + 30*time.Minute)

	rows := DailyTotals([]*domain.TimeEntry{e}, day, day.AddDate(0, 0, 1), now, nameIsID)

	require.Len(t, rows, 1)
	assert.Equal(t, 1800, rows[0].Seconds)
}

func TestDailyTotals_SortsBySecondsDescending(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	short := entryBetween("short", day.Add(9*time.Hour), day.Add(9*time.Hour+10*time.Minute))
	long := entryBetween("long", day.Add(10*time.Hour), day.Add(13*time.Hour))
	medium := entryBetween("medium", day.Add(14*time.Hour), day.Add(15*time.Hour))

	rows := DailyTotals([]*domain.TimeEntry{short, long, medium}, day, day.AddDate(0, 0, 1), day.AddDate(0, 0, 1), nameIsID)

	require.Len(t, rows, 3)
	assert.Equal(t, "long", rows[0].ProjectID)
	assert.Equal(t, "medium", rows[1].ProjectID)
	assert.Equal(t, "short", rows[2].ProjectID)
}

func TestDailyTotals_AggregatesEntriesForSameProject(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	morning := entryBetween("p1", day.Add(9*time.Hour), day.Add(10*time.Hour))
	afternoon := entryBetween("p1", day.Add(14*time.Hour), day.Add(14*time.Hour+30*time.Minute))

	rows := DailyTotals([]*domain.TimeEntry{morning, afternoon}, day, day.AddDate(0, 0, 1), day.AddDate(0, 0, 1), nameIsID)

	require.Len(t, rows, 1)
	assert.Equal(t, 5400, rows[0].Seconds)
}

func TestDailyTotals_ResolvesNamesThroughLookup(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	e := entryBetween("p1", day.Add(9*time.Hour), day.Add(10*time.Hour))

	rows := DailyTotals([]*domain.TimeEntry{e}, day, day.AddDate(0, 0, 1), day.AddDate(0, 0, 1), func(id string) string {
		return "name-for-" + id
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "name-for-p1", rows[0].Name)
}

func TestWeeklyTotals_AlwaysSevenRows(t *testing.T) {
	weekStart := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	rows := WeeklyTotals(nil, weekStart, weekStart, time.UTC)

	require.Len(t, rows, 7)
	for i, row := range rows {
		assert.Equal(t, 0, row.Seconds)
		assert.True(t, row.Date.Equal(weekStart.AddDate(0, 0, i)), "row %d date", i)
	}
}

func TestWeeklyTotals_SingleDayEntry(t *testing.T) {
	weekStart := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	e := entryBetween("p1", weekStart.Add(9*time.Hour), weekStart.Add(11*time.Hour))

	rows := WeeklyTotals([]*domain.TimeEntry{e}, weekStart, weekStart.AddDate(0, 0, 7), time.UTC)

	require.Len(t, rows, 7)
	assert.Equal(t, 7200, rows[0].Seconds)
	for _, row := range rows[1:] {
		assert.Equal(t, 0, row.Seconds)
	}
}

func TestWeeklyTotals_EntrySpanningMultipleDays(t *testing.T) {
	weekStart := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	// 22:00 day one to 02:00 day two: two hours on each side of midnight.
	e := entryBetween("p1", weekStart.Add(22*time.Hour), weekStart.Add(26*time.Hour))

	rows := WeeklyTotals([]*domain.TimeEntry{e}, weekStart, weekStart.AddDate(0, 0, 7), time.UTC)

	require.Len(t, rows, 7)
	assert.Equal(t, 7200, rows[0].Seconds)
	assert.Equal(t, 7200, rows[1].Seconds)
	assert.Equal(t, 0, rows[2].Seconds)
}

func TestWeeklyTotals_RunningEntryCountsUpToNow(t *testing.T) {
	weekStart := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	e := runningEntry("p1", weekStart.Add(9*time.Hour))
	now := weekStart.Add(10 * time.Hour)

	rows := WeeklyTotals([]*domain.TimeEntry{e}, weekStart, now, time.UTC)

	require.Len(t, rows, 7)
	assert.Equal(t, 3600, rows[0].Seconds)
}

func TestWeeklyTotals_AggregatesMultipleEntriesPerDay(t *testing.T) {
	weekStart := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	a := entryBetween("p1", weekStart.Add(9*time.Hour), weekStart.Add(10*time.Hour))
	b := entryBetween("p2", weekStart.Add(12*time.Hour), weekStart.Add(12*time.Hour+15*time.Minute))

	rows := WeeklyTotals([]*domain.TimeEntry{a, b}, weekStart, weekStart.AddDate(0, 0, 7), time.UTC)

	require.Len(t, rows, 7)
	assert.Equal(t, 4500, rows[0].Seconds)
}
