package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solvang/stint/internal/store"
	"github.com/solvang/stint/internal/timeutil"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <project>",
	Short: "Register a new project",
	Long: `Register a new project to track time against.

Project names are case-sensitive and must be unique.

Examples:
  stint add Writing
  stint add "Client: ACME"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addProject(args)
	},
}

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <project>",
	Short: "Remove a project",
	Long: `Remove a project from the tracked list.

If the project's timer is running it is stopped first, so the partial
session is logged. Logged history for the project is kept.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removeProject(args)
	},
}

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List tracked projects with today's totals",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listProjects()
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(projectsCmd)
}

// addProject registers a new project
func addProject(args []string) {
	name := strings.TrimSpace(strings.Join(args, " "))

	services := requireServices()
	if services == nil {
		return
	}

	if err := services.Tracker.AddProject(name); err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyProjectName):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Project name cannot be empty")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage: stint add <project>")
		case errors.Is(err, store.ErrDuplicateProject):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Project %q already exists\n", name)
		default:
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to add project")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added project: %s\n", name)
}

// removeProject removes a project, stopping its timer first if needed
func removeProject(args []string) {
	name := strings.TrimSpace(strings.Join(args, " "))

	services := requireServices()
	if services == nil {
		return
	}

	fold, removed, err := services.Tracker.RemoveProject(name)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to remove project")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if !removed {
		_, _ = fmt.Fprintf(deps.Stdout, "Project %q is not tracked; nothing to do.\n", name)
		return
	}

	if fold != nil && fold.Seconds > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Stopped timer and logged %s to %s\n",
			timeutil.FormatSeconds(fold.Seconds), fold.Project)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Removed project: %s (history kept)\n", name)
}

// listProjects prints tracked projects with today's totals
func listProjects() {
	services := requireServices()
	if services == nil {
		return
	}

	projects, err := services.Tracker.Projects()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to list projects")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(projects) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No projects yet.")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Add one with 'stint add <project>'")
		return
	}

	for _, p := range projects {
		marker := " "
		if p.Active {
			marker = "●"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %s %-24s today: %s\n",
			marker, p.Name, timeutil.FormatSeconds(p.Seconds))
	}
}
