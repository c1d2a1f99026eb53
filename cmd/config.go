package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long: `Show the active configuration and where it was loaded from.

Run 'stint config init' to create a sample config file to edit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig prints the active configuration
func showConfig() {
	services := requireServices()
	if services == nil {
		return
	}

	cfg := services.Config.Get()

	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s", services.Config.GetPath())
	if !services.Config.Exists() {
		_, _ = fmt.Fprint(deps.Stdout, " (not created, using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintf(deps.Stdout, "  eod_hour = %d\n", cfg.EODHour)
	_, _ = fmt.Fprintf(deps.Stdout, "  timezone = %q\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "  theme    = %q\n", cfg.Theme)
}

// initConfig creates a sample config file
func initConfig() {
	services := requireServices()
	if services == nil {
		return
	}

	if err := services.Config.Init(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", services.Config.GetPath())
	_, _ = fmt.Fprintln(deps.Stdout, "Edit it to adjust the end-of-day hour, timezone and theme.")
}
