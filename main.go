package main

import (
	"fmt"
	"os"

	"github.com/solvang/stint/cmd"
	"github.com/solvang/stint/internal/service"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc allows tests to intercept os.Exit
var exitFunc = os.Exit

func run() int {
	cmd.SetVersionInfo(version, commit, date)

	// Fail early when the data directory cannot be resolved
	if _, err := service.NewServices(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	exitFunc(run())
}
