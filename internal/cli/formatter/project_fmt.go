package formatter

import (
	"strings"

	"github.com/alexanderramin/tt/internal/domain"
)

// FormatProjectList renders active projects as a table, marking the
// selected one.
func FormatProjectList(projects []*domain.Project, selectedID string) string {
	headers := []string{"", "NAME", "ID", "CREATED"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		marker := " "
		name := StyleFg.Render(p.Name)
		if p.ID == selectedID {
			marker = StyleGreen.Render("●")
			name = Bold(p.Name)
		}
		rows = append(rows, []string{
			marker,
			name,
			TruncID(p.ID),
			Dim(HumanDate(p.CreatedAt)),
		})
	}
	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
