package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Inspect and edit time entries",
	}

	cmd.AddCommand(
		newEntryListCmd(app),
		newEntryEditCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries overlapping a time range (default: today)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rangeStart, rangeEnd, err := resolveRange(app, from, to)
			if err != nil {
				return err
			}

			entries, err := app.Tracker.ListEntries(cmd.Context(), rangeStart, rangeEnd)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No entries found.")
				return nil
			}

			fmt.Print(formatter.FormatEntryList(entries, app.Tracker.ProjectName, app.Now(), app.Loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (exclusive)")

	return cmd
}

func newEntryEditCmd(app *App) *cobra.Command {
	var startStr, endStr, note string
	var clearEnd, clearNote bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an entry's interval or note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, err := app.Tracker.GetEntry(ctx, args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("entry not found: %q", args[0])
			}
			if err != nil {
				return err
			}

			start := e.Start
			if cmd.Flags().Changed("start") {
				start, err = parseTimeArg(startStr, app.Loc)
				if err != nil {
					return err
				}
			}

			end := e.End
			if clearEnd {
				end = nil
			} else if cmd.Flags().Changed("end") {
				parsed, err := parseTimeArg(endStr, app.Loc)
				if err != nil {
					return err
				}
				end = &parsed
			}

			newNote := e.Note
			if clearNote {
				newNote = nil
			} else if cmd.Flags().Changed("note") {
				newNote = &note
			}

			if err := app.Tracker.UpdateEntry(ctx, e.ID, start, end, newNote); err != nil {
				return err
			}

			fmt.Printf("Updated entry %s\n", formatter.TruncID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "New start time")
	cmd.Flags().StringVar(&endStr, "end", "", "New end time")
	cmd.Flags().BoolVar(&clearEnd, "clear-end", false, "Clear the end time, reopening the entry")
	cmd.Flags().StringVar(&note, "note", "", "New note")
	cmd.Flags().BoolVar(&clearNote, "clear-note", false, "Remove the note")
	cmd.MarkFlagsMutuallyExclusive("end", "clear-end")
	cmd.MarkFlagsMutuallyExclusive("note", "clear-note")

	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracker.DeleteEntry(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed entry %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}

// resolveRange parses --from/--to, defaulting to today's calendar-day
// bounds when both are empty.
func resolveRange(app *App, from, to string) (time.Time, time.Time, error) {
	if from == "" && to == "" {
		start, end := dayBounds(app.Now(), app.Loc)
		return start, end, nil
	}

	dayStart, dayEnd := dayBounds(app.Now(), app.Loc)
	rangeStart, rangeEnd := dayStart, dayEnd

	var err error
	if from != "" {
		rangeStart, err = parseTimeArg(from, app.Loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if to != "" {
		rangeEnd, err = parseTimeArg(to, app.Loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if !rangeEnd.After(rangeStart) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end must be after range start")
	}
	return rangeStart, rangeEnd, nil
}
