package cli

import (
	"fmt"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start [PROJECT]",
		Short: "Start the timer, optionally against a named project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if app.Tracker.IsRunning() {
				fmt.Printf("Already running on %s, started %s\n",
					formatter.Bold(app.Tracker.ProjectName(app.Tracker.RunningEntry().ProjectID)),
					formatter.Dim(formatter.HumanTimestamp(app.Tracker.RunningEntry().Start.In(app.Loc))))
				return nil
			}

			if len(args) == 1 {
				id, err := resolveProject(app, args[0])
				if err != nil {
					return err
				}
				app.Tracker.SelectProject(id)
			}

			if app.Tracker.SelectedProjectID() == "" {
				return fmt.Errorf("no project selected; create one with 'tt project add NAME'")
			}

			if err := app.Tracker.StartTimer(ctx); err != nil {
				return err
			}

			fmt.Printf("Started timer on %s\n", formatter.Bold(app.Tracker.ProjectName(app.Tracker.SelectedProjectID())))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Tracker.IsRunning() {
				fmt.Println("No timer running.")
				return nil
			}

			running := app.Tracker.RunningEntry()
			elapsed := app.Tracker.ElapsedSeconds(app.Now())
			name := app.Tracker.ProjectName(running.ProjectID)

			if err := app.Tracker.StopTimer(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Stopped timer on %s after %s\n",
				formatter.Bold(name), domain.FormatHMS(elapsed))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current timer and today's totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatStatus(formatter.StatusData{
				Running:        app.Tracker.RunningEntry(),
				RunningProject: runningProjectName(app),
				ElapsedSeconds: app.Tracker.ElapsedSeconds(app.Now()),
				Selected:       app.Tracker.ProjectName(app.Tracker.SelectedProjectID()),
				DailyTotals:    app.Tracker.DailyTotals(),
				Loc:            app.Loc,
			}))
			return nil
		},
	}
}

func runningProjectName(app *App) string {
	if app.Tracker.RunningEntry() == nil {
		return ""
	}
	return app.Tracker.ProjectName(app.Tracker.RunningEntry().ProjectID)
}
