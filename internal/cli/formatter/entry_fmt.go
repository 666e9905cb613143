package formatter

import (
	"time"

	"github.com/alexanderramin/tt/internal/domain"
)

// FormatEntryList renders entries as a table, newest first. Running
// entries show a dash for the end time and a duration growing up to now.
func FormatEntryList(entries []*domain.TimeEntry, nameFor func(string) string, now time.Time, loc *time.Location) string {
	headers := []string{"ID", "PROJECT", "START", "END", "DURATION", "NOTE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		end := Dim("-")
		if e.End != nil {
			end = ClockTime(*e.End, loc)
		}
		note := ""
		if e.Note != nil {
			note = *e.Note
			if len(note) > 40 {
				note = note[:37] + "..."
			}
		}
		duration := domain.FormatHMS(domain.DurationSeconds(e.Start, e.End, now))
		if e.Running() {
			duration = StyleGreen.Render(duration)
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			StyleFg.Render(nameFor(e.ProjectID)),
			ClockTime(e.Start, loc),
			end,
			duration,
			Dim(note),
		})
	}
	return RenderTable(headers, rows)
}
