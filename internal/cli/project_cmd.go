package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/spf13/cobra"
)

// resolveProject maps user input to a project id. Matches, in order:
// exact case-folded name, exact id, unambiguous id prefix.
func resolveProject(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project name or ID is required")
	}

	projects := app.Tracker.Projects()
	normalized := domain.NormalizeProjectName(input)
	for _, p := range projects {
		if p.Name == normalized {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectArchiveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.NormalizeProjectName(args[0])
			if name == "" {
				return fmt.Errorf("project name must not be blank")
			}

			if err := app.Tracker.CreateProject(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Created project %s\n", formatter.Bold(name))
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := app.Tracker.Projects()
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Print(formatter.FormatProjectList(projects, app.Tracker.SelectedProjectID()))
			return nil
		},
	}
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive NAME_OR_ID",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			name := app.Tracker.ProjectName(id)

			if err := app.Tracker.ArchiveProject(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("Archived project %s\n", formatter.Bold(name))
			return nil
		},
	}
}
