package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/report"
)

// StatusData carries everything the status view renders.
type StatusData struct {
	Running        *domain.TimeEntry
	RunningProject string
	ElapsedSeconds int
	Selected       string
	DailyTotals    []report.ProjectTotal
	Loc            *time.Location
}

// FormatStatus renders the current timer state and today's per-project
// totals.
func FormatStatus(data StatusData) string {
	var b strings.Builder

	if data.Running != nil {
		b.WriteString(fmt.Sprintf("%s  %s  %s",
			StyleGreen.Render("● RUNNING"),
			Bold(data.RunningProject),
			domain.FormatHMS(data.ElapsedSeconds)))
		b.WriteString(Dim(fmt.Sprintf("  since %s", ClockTime(data.Running.Start, data.Loc))))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleDim.Render("○ IDLE"),
			Dim("selected: "+data.Selected)))
	}

	if len(data.DailyTotals) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Today"))
		b.WriteString("\n")
		b.WriteString(FormatDailyTotals(data.DailyTotals))
	}

	return b.String()
}
