package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/alexanderramin/tt/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live timer view, refreshed every second",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}

			m := newWatchModel(app)
			p := tea.NewProgram(m)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if wm, ok := final.(watchModel); ok && wm.err != nil {
				return wm.err
			}
			return nil
		},
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type watchModel struct {
	app *App
	now time.Time
	err error
}

func newWatchModel(app *App) watchModel {
	return watchModel{app: app, now: app.Now()}
}

func (m watchModel) Init() tea.Cmd {
	return tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			if err := m.app.Tracker.StartTimer(context.Background()); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case "x":
			if err := m.app.Tracker.StopTimer(context.Background()); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	tr := m.app.Tracker

	var status string
	if tr.IsRunning() {
		status = fmt.Sprintf("%s  %s  %s",
			formatter.StyleGreen.Render("● RUNNING"),
			formatter.Bold(tr.ProjectName(tr.RunningEntry().ProjectID)),
			domain.FormatHMS(tr.ElapsedSeconds(m.now)))
	} else {
		selected := "no project selected"
		if tr.SelectedProjectID() != "" {
			selected = tr.ProjectName(tr.SelectedProjectID())
		}
		status = fmt.Sprintf("%s  %s",
			formatter.StyleDim.Render("○ IDLE"),
			formatter.Dim(selected))
	}

	var today int
	for _, t := range tr.DailyTotals() {
		today += t.Seconds
	}

	return fmt.Sprintf("\n  %s\n\n  %s %s\n\n  %s\n",
		status,
		formatter.Dim("today:"), domain.FormatHMS(today),
		formatter.Dim("s start · x stop · q quit"))
}
