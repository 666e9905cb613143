package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries in a time range as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rangeStart, rangeEnd, err := resolveRange(app, from, to)
			if err != nil {
				return err
			}

			csv, err := app.Tracker.ExportCSV(cmd.Context(), rangeStart, rangeEnd, app.Now())
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Print(csv)
				return nil
			}
			if err := os.WriteFile(out, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Printf("Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (inclusive, default: start of today)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (exclusive, default: end of today)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")

	return cmd
}
