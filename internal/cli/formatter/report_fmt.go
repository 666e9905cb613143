package formatter

import (
	"strings"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/report"
)

// FormatDailyTotals renders per-project totals, largest first, with a
// proportional bar.
func FormatDailyTotals(totals []report.ProjectTotal) string {
	max := 0
	for _, t := range totals {
		if t.Seconds > max {
			max = t.Seconds
		}
	}

	headers := []string{"PROJECT", "TIME", ""}
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{
			StyleFg.Render(t.Name),
			domain.FormatHMS(t.Seconds),
			StyleBlue.Render(bar(t.Seconds, max, 20)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatWeeklyTotals renders one row per day for the trailing week.
func FormatWeeklyTotals(totals []report.DayTotal) string {
	max := 0
	for _, t := range totals {
		if t.Seconds > max {
			max = t.Seconds
		}
	}

	headers := []string{"DAY", "TIME", ""}
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		label := t.Date.Format("Mon Jan 2")
		timeCell := domain.FormatHMS(t.Seconds)
		if t.Seconds == 0 {
			timeCell = Dim(timeCell)
		}
		rows = append(rows, []string{
			StyleFg.Render(label),
			timeCell,
			StyleBlue.Render(bar(t.Seconds, max, 20)),
		})
	}
	return RenderTable(headers, rows)
}

// bar renders a proportional block bar of at most width cells.
func bar(value, max, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
