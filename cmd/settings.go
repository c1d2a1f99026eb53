package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/solvang/stint/internal/store"
	"github.com/spf13/cobra"
)

// intervalCmd represents the interval command
var intervalCmd = &cobra.Command{
	Use:   "interval [minutes]",
	Short: "Show or set the check-in interval",
	Long: `Show or set how often the live view asks whether you are still
working on the active project. Allowed values: 15, 30, 60 minutes.

Examples:
  stint interval
  stint interval 15`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			setInterval(args[0])
			return
		}
		showInterval()
	},
}

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all logged history",
	Long: `Delete the entire daily log. Registered projects and settings are
kept. This cannot be undone.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		clearHistory(force)
	},
}

func init() {
	clearCmd.Flags().BoolP("force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(clearCmd)
}

// showInterval prints the configured check-in interval
func showInterval() {
	services := requireServices()
	if services == nil {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Check-in interval: %d minutes\n", services.Tracker.Interval())
}

// setInterval updates the check-in interval
func setInterval(arg string) {
	minutes, err := strconv.Atoi(arg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid interval %q\n", arg)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Allowed intervals are 15, 30 and 60 minutes")
		deps.Exit(1)
		return
	}

	services := requireServices()
	if services == nil {
		return
	}

	if err := services.Tracker.SetInterval(minutes); err != nil {
		if errors.Is(err, store.ErrInvalidInterval) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid interval %d\n", minutes)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Allowed intervals are 15, 30 and 60 minutes")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save interval")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Check-in interval set to %d minutes\n", minutes)
}

// clearHistory deletes the daily log after confirmation
func clearHistory(force bool) {
	services := requireServices()
	if services == nil {
		return
	}

	if !force {
		_, _ = fmt.Fprint(deps.Stdout, "Delete all logged history? This cannot be undone. [y/N] ")
		reader := bufio.NewReader(deps.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			_, _ = fmt.Fprintln(deps.Stdout, "Aborted.")
			return
		}
	}

	if err := services.Tracker.ClearHistory(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to clear history")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "History cleared.")
}
