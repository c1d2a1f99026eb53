package store

import (
	"sort"
	"strings"
)

// Fold adds a completed session's elapsed seconds to the entry for
// (day, project), creating the entry if it does not exist yet.
// Folds are additive; each elapsed delta must be folded exactly once.
// Calls with seconds < 1 are ignored.
func (s *TrackerState) Fold(day, project string, seconds int) {
	if seconds < 1 {
		return
	}
	log, ok := s.DailyLogs[day]
	if !ok {
		log = DayLog{}
		s.DailyLogs[day] = log
	}
	entry, ok := log[project]
	if !ok {
		entry = &DayEntry{}
		log[project] = entry
	}
	entry.Seconds += seconds
}

// Total returns the persisted seconds for (day, project), or 0 if there is
// no entry. A running session's elapsed time is not included; see
// tracker.TodayTotal for that.
func (s *TrackerState) Total(day, project string) int {
	if entry, ok := s.DailyLogs[day][project]; ok {
		return entry.Seconds
	}
	return 0
}

// DayTotal returns the sum of accumulated seconds over all projects logged
// on the given day.
func (s *TrackerState) DayTotal(day string) int {
	total := 0
	for _, entry := range s.DailyLogs[day] {
		total += entry.Seconds
	}
	return total
}

// SetDescription overwrites the description of the (day, project) entry.
// The text is trimmed of leading and trailing whitespace.
// Returns false if no entry exists for that day and project.
func (s *TrackerState) SetDescription(day, project, text string) bool {
	entry, ok := s.DailyLogs[day][project]
	if !ok {
		return false
	}
	entry.Description = strings.TrimSpace(text)
	return true
}

// Log returns the day's log, or nil if nothing was recorded that day.
func (s *TrackerState) Log(day string) DayLog {
	return s.DailyLogs[day]
}

// Days returns all days with at least one entry, most recent first.
func (s *TrackerState) Days() []string {
	days := make([]string, 0, len(s.DailyLogs))
	for day, log := range s.DailyLogs {
		if len(log) > 0 {
			days = append(days, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

// ClearHistory empties the entire daily log. This cannot be undone.
func (s *TrackerState) ClearHistory() {
	s.DailyLogs = map[string]DayLog{}
}
