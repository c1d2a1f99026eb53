package cmd

import (
	"fmt"
	"sort"

	"github.com/solvang/stint/internal/service"
	"github.com/solvang/stint/internal/timeutil"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stint",
	Short: "A personal project time tracker",
	Long: `stint tracks how long you work on named projects, checks in
periodically to confirm you're still on task, and prompts for an
end-of-day summary of what you did.

Usage:
  stint                       Show today's log and the running timer
  stint add <project>         Register a project
  stint start <project>       Start the timer on a project
  stint stop                  Stop the timer and log the time
  stint status                Show the running timer
  stint history [date]        Browse logged days
  stint describe <project> <text>   Write a summary for today's work
  stint tui                   Launch the interactive terminal UI`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showToday()
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

// todayCmd represents the today command (same output as the bare root)
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's log and the running timer",
	Long:  `Show the time logged per project today, including the running session.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showToday()
	},
}

// showToday prints today's per-project totals and the live session
func showToday() {
	services := requireServices()
	if services == nil {
		return
	}

	result, err := services.Tracker.Today()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read today's log")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s\n\n", timeutil.FormatDayLabel(result.Day))

	if result.Status.Active {
		_, _ = fmt.Fprintf(deps.Stdout, "Tracking %s for %s\n\n",
			result.Status.Project, timeutil.FormatSeconds(result.Status.ElapsedSeconds))
	}

	if len(result.Entries) == 0 && !result.Status.Active {
		_, _ = fmt.Fprintln(deps.Stdout, "No time logged today.")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Start a timer with 'stint start <project>'")
		return
	}

	printDayEntries(result, deps)

	_, _ = fmt.Fprintf(deps.Stdout, "\nTotal: %s\n", timeutil.FormatSeconds(result.TotalSeconds))
}

// printDayEntries prints today's entries in a stable order, folding the
// live session into its project's line
func printDayEntries(result *service.TodayResult, d *Deps) {
	names := make([]string, 0, len(result.Entries))
	for name := range result.Entries {
		names = append(names, name)
	}
	if result.Status.Active {
		if _, ok := result.Entries[result.Status.Project]; !ok {
			names = append(names, result.Status.Project)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		seconds := result.Entries[name].Seconds
		marker := " "
		if result.Status.Active && name == result.Status.Project {
			seconds += result.Status.ElapsedSeconds
			marker = "●"
		}
		_, _ = fmt.Fprintf(d.Stdout, "  %s %-24s %s\n", marker, name, timeutil.FormatSeconds(seconds))
		if desc := result.Entries[name].Description; desc != "" {
			_, _ = fmt.Fprintf(d.Stdout, "      %s\n", desc)
		}
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"stint %s (commit %s, built %s)\n", version, commit, date))
}
