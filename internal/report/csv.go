package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
)

const csvHeader = "project,start,end,duration_seconds,note"

// unknownProject is the sentinel name for entries whose project is missing
// from the lookup.
const unknownProject = "unknown"

// BuildCSV renders entries as CSV text in the order given. Timestamps are
// RFC 3339 in UTC so the export round-trips to the same instant regardless
// of the local time zone; a running entry's duration is computed against
// now and its end field is left empty. The document always ends with a
// trailing newline, even when there are no entries.
func BuildCSV(entries []*domain.TimeEntry, projectNames map[string]string, now time.Time) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, e := range entries {
		name, ok := projectNames[e.ProjectID]
		if !ok {
			name = unknownProject
		}
		endText := ""
		if e.End != nil {
			endText = e.End.UTC().Format(time.RFC3339)
		}
		note := ""
		if e.Note != nil {
			note = *e.Note
		}

		fields := []string{
			escapeCSV(name),
			escapeCSV(e.Start.UTC().Format(time.RFC3339)),
			escapeCSV(endText),
			strconv.Itoa(domain.DurationSeconds(e.Start, e.End, now)),
			escapeCSV(note),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// escapeCSV applies RFC 4180 quoting: a field is wrapped in double quotes,
// with internal quotes doubled, iff it contains a comma, quote, or line
// break.
func escapeCSV(value string) string {
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
