// Package service provides the business logic layer for the stint
// application. It wraps the underlying store, session, tracker, and config
// packages, providing a clean API for both CLI and TUI frontends.
package service

import (
	"time"

	"github.com/solvang/stint/internal/store"
)

// Status describes the current timer state for display.
type Status struct {
	Active         bool
	Project        string
	StartedAt      time.Time
	ElapsedSeconds int
	// TodaySeconds is today's total for the active project, including the
	// running session
	TodaySeconds int
}

// ProjectToday pairs a tracked project with its total for today.
type ProjectToday struct {
	Name    string
	Seconds int
	Active  bool
}

// TodayResult is today's log plus the live session, for the root listing.
type TodayResult struct {
	Day          string
	Entries      map[string]store.DayEntry
	TotalSeconds int
	Status       *Status
}

// DaySummary is one line of the history listing.
type DaySummary struct {
	Day          string
	Projects     int
	TotalSeconds int
}

// StopResult describes a fold performed by Stop (or an implicit stop).
type StopResult struct {
	Project string
	// Seconds is this session's folded delta; zero-length sessions fold
	// nothing
	Seconds int
	// TodaySeconds is the project's accumulated total for the fold day
	TodaySeconds int
}
