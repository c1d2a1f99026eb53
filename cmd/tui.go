package cmd

import (
	"fmt"

	"github.com/solvang/stint/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive tracker",
	Long: `Open the full-screen interactive tracker with live timers,
periodic check-ins and the end-of-day summary prompt.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		launchTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// launchTUI starts the interactive tracker
func launchTUI() {
	services := requireServices()
	if services == nil {
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to run interactive tracker")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}
