package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/solvang/stint/internal/service"
	"github.com/solvang/stint/internal/timeutil"
	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history [date]",
	Short: "Show logged time for past days",
	Long: `Show logged time for past days, most recent first.

With a date argument (YYYY-MM-DD), show the full breakdown for that
single day instead.

Examples:
  stint history
  stint history 2026-03-10`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			showDay(args[0])
			return
		}
		showHistory()
	},
}

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <project> <text>",
	Short: "Attach a description to a project's logged time",
	Long: `Attach a free-text description to a project's entry in the daily
log. By default the description is attached to today's entry; use
--date to annotate an earlier day.

Examples:
  stint describe Writing "drafted chapter 3"
  stint describe Writing "edits" --date 2026-03-09`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")
		describeEntry(args[0], strings.Join(args[1:], " "), date)
	},
}

func init() {
	describeCmd.Flags().String("date", "", "day to annotate (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(describeCmd)
}

// showHistory prints a per-day summary, most recent first
func showHistory() {
	services := requireServices()
	if services == nil {
		return
	}

	days, err := services.Tracker.History()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load history")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(days) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No time logged yet.")
		return
	}

	for _, d := range days {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s  (%d project(s))\n",
			timeutil.FormatDayLabel(d.Day), timeutil.FormatSeconds(d.TotalSeconds), d.Projects)
	}
}

// showDay prints the full breakdown for one day
func showDay(key string) {
	if _, err := timeutil.ParseDayKey(key); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date %q\n", key)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD, e.g. 2026-03-10")
		deps.Exit(1)
		return
	}

	services := requireServices()
	if services == nil {
		return
	}

	entries, err := services.Tracker.Day(key)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load day")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Nothing logged on %s.\n", key)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, timeutil.FormatDayLabel(key))

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		e := entries[name]
		total += e.Seconds
		_, _ = fmt.Fprintf(deps.Stdout, "    %-24s %s\n", name, timeutil.FormatSeconds(e.Seconds))
		if e.Description != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "      %s\n", e.Description)
		}
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", timeutil.FormatSeconds(total))
}

// describeEntry attaches a description to a logged entry
func describeEntry(project, text, date string) {
	if date != "" {
		if _, err := timeutil.ParseDayKey(date); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date %q\n", date)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD, e.g. 2026-03-10")
			deps.Exit(1)
			return
		}
	}

	services := requireServices()
	if services == nil {
		return
	}

	err := services.Tracker.Describe(date, project, text)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No logged time for %q on that day\n", project)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Descriptions attach to existing entries; see 'stint history'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save description")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Description saved for %s\n", project)
}
