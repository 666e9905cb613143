package cli

import (
	"fmt"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show aggregated time reports",
	}

	cmd.AddCommand(
		newReportTodayCmd(app),
		newReportWeekCmd(app),
	)

	return cmd
}

func newReportTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Per-project totals for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals := app.Tracker.DailyTotals()
			if len(totals) == 0 {
				fmt.Println("No time tracked today.")
				return nil
			}

			fmt.Print(formatter.FormatDailyTotals(totals))
			return nil
		},
	}
}

func newReportWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Per-day totals for the trailing seven days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatWeeklyTotals(app.Tracker.WeeklyTotals()))
			return nil
		},
	}
}
