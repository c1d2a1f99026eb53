package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solvang/stint/internal/service"
	"github.com/solvang/stint/internal/store"
	"github.com/solvang/stint/internal/timeutil"
	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <project>",
	Short: "Start the timer on a project",
	Long: `Start the timer on a registered project.

If a timer is already running (on this or another project) it is stopped
first and its time is logged. The timer persists across terminal
sessions until you run 'stint stop'.

Examples:
  stint start Writing
  stint start "Client: ACME"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startTimer(args)
	},
}

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and log the elapsed time",
	Long: `Stop the running timer and add its elapsed time to today's log
for the active project.

Examples:
  stint stop`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopTimer()
	},
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
}

// startTimer starts the timer on the named project
func startTimer(args []string) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Project name cannot be empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: stint start <project>")
		deps.Exit(1)
		return
	}

	services := requireServices()
	if services == nil {
		return
	}

	sess, prev, err := services.Tracker.Start(name)
	if err != nil {
		if errors.Is(err, store.ErrUnknownProject) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown project %q\n", name)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Register it first with 'stint add', or see 'stint projects'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to start timer")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	if prev != nil && prev.Seconds > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Logged %s to %s\n",
			timeutil.FormatSeconds(prev.Seconds), prev.Project)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Timer started: %s\n", sess.Project)
}

// stopTimer stops the running timer
func stopTimer() {
	services := requireServices()
	if services == nil {
		return
	}

	result, err := services.Tracker.Stop()
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: No timer is running")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start a timer with 'stint start <project>'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to stop timer")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Timer stopped: %s\n", result.Project)
	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s (today: %s)\n",
		timeutil.FormatSeconds(result.Seconds), timeutil.FormatSeconds(result.TodaySeconds))
}

// showStatus prints the running timer, if any
func showStatus() {
	services := requireServices()
	if services == nil {
		return
	}

	status, err := services.Tracker.Status()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read timer status")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if !status.Active {
		_, _ = fmt.Fprintln(deps.Stdout, "No timer running.")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Tracking: %s\n", status.Project)
	_, _ = fmt.Fprintf(deps.Stdout, "Started:  %s\n", status.StartedAt.Format("3:04 PM"))
	_, _ = fmt.Fprintf(deps.Stdout, "Elapsed:  %s\n", timeutil.FormatSeconds(status.ElapsedSeconds))
	_, _ = fmt.Fprintf(deps.Stdout, "Today:    %s\n", timeutil.FormatSeconds(status.TodaySeconds))
}
