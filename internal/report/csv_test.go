package report

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csvNames = map[string]string{"p1": "writing", "p2": "ops"}

func TestBuildCSV_EmptyEntries(t *testing.T) {
	out := BuildCSV(nil, csvNames, time.Now())
	assert.Equal(t, "project,start,end,duration_seconds,note\n", out)
}

func TestBuildCSV_CompletedEntry(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	note := "morning block"
	e := &domain.TimeEntry{ID: "e1", ProjectID: "p1", Start: start, End: &end, Note: &note}

	out := BuildCSV([]*domain.TimeEntry{e}, csvNames, end)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "writing,2024-01-15T09:00:00Z,2024-01-15T10:00:00Z,3600,morning block", lines[1])
}

func TestBuildCSV_RunningEntryUsesNowAndEmptyEnd(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	now := start.Add(30 * time.Minute)
	e := &domain.TimeEntry{ID: "e1", ProjectID: "p1", Start: start}

	out := BuildCSV([]*domain.TimeEntry{e}, csvNames, now)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "writing,2024-01-15T09:00:00Z,,1800,", lines[1])
}

func TestBuildCSV_EscapesQuotesAndCommas(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Minute)
	note := `hello, "world"`
	e := &domain.TimeEntry{ID: "e1", ProjectID: "p1", Start: start, End: &end, Note: &note}

	out := BuildCSV([]*domain.TimeEntry{e}, csvNames, end)

	assert.Contains(t, out, `"hello, ""world"""`)
}

func TestBuildCSV_EscapesNewlines(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Minute)
	note := "line one\nline two"
	e := &domain.TimeEntry{ID: "e1", ProjectID: "p1", Start: start, End: &end, Note: &note}

	out := BuildCSV([]*domain.TimeEntry{e}, csvNames, end)

	assert.Contains(t, out, "\"line one\nline two\"")
}

func TestBuildCSV_UnknownProjectSentinel(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Minute)
	e := &domain.TimeEntry{ID: "e1", ProjectID: "ghost", Start: start, End: &end}

	out := BuildCSV([]*domain.TimeEntry{e}, csvNames, end)

	assert.True(t, strings.HasPrefix(strings.Split(out, "\n")[1], "unknown,"))
}

func TestBuildCSV_PreservesEntryOrder(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Minute)
	first := &domain.TimeEntry{ID: "e1", ProjectID: "p2", Start: start, End: &end}
	second := &domain.TimeEntry{ID: "e2", ProjectID: "p1", Start: start.Add(-time.Hour), End: &end}

	out := BuildCSV([]*domain.TimeEntry{first, second}, csvNames, end)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "ops,"))
	assert.True(t, strings.HasPrefix(lines[2], "writing,"))
}

func TestBuildCSV_TimestampsAreUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, loc)
	end := start.Add(time.Hour)
	e := &domain.TimeEntry{ID: "e1", ProjectID: "p1", Start: start, End: &end}

	out := BuildCSV([]*domain.TimeEntry{e}, csvNames, end)

	assert.Contains(t, out, "2024-01-15T14:00:00Z")
}
