// Package store owns the persisted tracker document: the project list, the
// check-in interval setting, and the per-day log of accumulated seconds and
// descriptions. The document is stored as a single JSON file.
package store

import (
	"errors"
	"slices"
	"strings"
)

// Document-level validation errors
var (
	ErrEmptyProjectName = errors.New("project name cannot be empty")
	ErrDuplicateProject = errors.New("project already exists")
	ErrUnknownProject   = errors.New("unknown project")
	ErrInvalidInterval  = errors.New("invalid check-in interval")
)

// DefaultInterval is the check-in interval used when no setting is stored.
const DefaultInterval = 30

// ValidIntervals is the closed set of accepted check-in intervals in minutes.
var ValidIntervals = []int{15, 30, 60}

// DayEntry holds the accumulated seconds and the written summary for one
// project on one day.
type DayEntry struct {
	Seconds     int    `json:"seconds"`
	Description string `json:"description"`
}

// DayLog maps project name to that project's entry for a single day.
type DayLog map[string]*DayEntry

// TrackerState is the root persisted document.
// Projects keeps insertion order (display order). DailyLogs is keyed by
// calendar-day key (2006-01-02) and survives project removal.
type TrackerState struct {
	Projects        []string          `json:"projects"`
	CheckInInterval int               `json:"checkInInterval"`
	DailyLogs       map[string]DayLog `json:"dailyLogs"`
}

// DefaultState returns the empty document used when no file exists or the
// stored document cannot be read.
func DefaultState() *TrackerState {
	return &TrackerState{
		Projects:        []string{},
		CheckInInterval: DefaultInterval,
		DailyLogs:       map[string]DayLog{},
	}
}

// normalize repairs a freshly loaded document so the rest of the code can
// rely on non-nil maps and a valid interval.
func (s *TrackerState) normalize() {
	if s.Projects == nil {
		s.Projects = []string{}
	}
	if s.DailyLogs == nil {
		s.DailyLogs = map[string]DayLog{}
	}
	if !slices.Contains(ValidIntervals, s.CheckInInterval) {
		s.CheckInInterval = DefaultInterval
	}
}

// HasProject reports whether name is in the project list (case-sensitive).
func (s *TrackerState) HasProject(name string) bool {
	return slices.Contains(s.Projects, name)
}

// AddProject appends a project to the list.
// The name is trimmed first. Empty names and duplicates are rejected.
func (s *TrackerState) AddProject(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyProjectName
	}
	if s.HasProject(name) {
		return ErrDuplicateProject
	}
	s.Projects = append(s.Projects, name)
	return nil
}

// RemoveProject removes a project from the list. Returns false if the
// project was not present. Daily-log history for the project is kept.
func (s *TrackerState) RemoveProject(name string) bool {
	idx := slices.Index(s.Projects, name)
	if idx == -1 {
		return false
	}
	s.Projects = slices.Delete(s.Projects, idx, idx+1)
	return true
}

// SetCheckInInterval updates the check-in interval setting.
// Only values in ValidIntervals are accepted.
func (s *TrackerState) SetCheckInInterval(minutes int) error {
	if !slices.Contains(ValidIntervals, minutes) {
		return ErrInvalidInterval
	}
	s.CheckInInterval = minutes
	return nil
}
