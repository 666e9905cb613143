package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/tt/internal/tracker"
	"github.com/spf13/cobra"
)

// App holds the wired tracker and ambient dependencies used by CLI commands.
type App struct {
	Tracker *tracker.Tracker
	Log     *slog.Logger
	Loc     *time.Location

	// Now is the time source for command handlers. Tests pin it.
	Now func() time.Time

	// IsInteractive reports whether stdout is attached to a terminal.
	// The watch command refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tt" command and registers all
// subcommands against the provided App. Every subcommand runs against
// state loaded by the persistent pre-run hook.
func NewRootCmd(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.Loc == nil {
		app.Loc = time.Local
	}

	root := &cobra.Command{
		Use:           "tt",
		Short:         "Track time across projects from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracker.LoadInitialState(cmd.Context()); err != nil {
				return err
			}
			if app.Log != nil {
				app.Log.Debug("state loaded",
					"projects", len(app.Tracker.Projects()),
					"running", app.Tracker.IsRunning())
			}
			return nil
		},
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newProjectCmd(app),
		newEntryCmd(app),
		newReportCmd(app),
		newExportCmd(app),
		newWatchCmd(app),
	)

	return root
}
