package service

import (
	"errors"
	"fmt"

	"github.com/solvang/stint/internal/clock"
	"github.com/solvang/stint/internal/config"
	"github.com/solvang/stint/internal/session"
	"github.com/solvang/stint/internal/store"
	"github.com/solvang/stint/internal/timeutil"
	"github.com/solvang/stint/internal/tracker"
)

// Tracker-specific errors
var (
	ErrNoActiveSession = errors.New("no session is running")
	ErrEntryNotFound   = errors.New("no logged time for that day and project")
)

// TrackerService provides one-shot tracking operations for the CLI.
// Each operation loads the tracker document, applies the change, and saves.
type TrackerService struct {
	statePath   string
	sessionPath string
	config      config.Config
	clk         clock.Clock
}

// NewTrackerService creates a new TrackerService
func NewTrackerService(statePath, sessionPath string, cfg config.Config) *TrackerService {
	loc, err := cfg.Location()
	if err != nil {
		loc = nil
	}
	return &TrackerService{
		statePath:   statePath,
		sessionPath: sessionPath,
		config:      cfg,
		clk:         clock.NewSystem(loc),
	}
}

// SetClock replaces the service clock (useful for testing).
func (s *TrackerService) SetClock(clk clock.Clock) {
	s.clk = clk
}

// Start begins a session on the named project. A session already running
// (on any project) is stopped first; its fold is returned alongside the
// new session.
func (s *TrackerService) Start(project string) (*session.Session, *StopResult, error) {
	st := store.LoadOrDefault(s.statePath)

	if !st.HasProject(project) {
		return nil, nil, store.ErrUnknownProject
	}

	prev, err := s.stopInto(st)
	if err != nil {
		return nil, nil, err
	}
	if prev != nil {
		if err := store.Save(s.statePath, st); err != nil {
			return nil, nil, fmt.Errorf("failed to save tracker state: %w", err)
		}
	}

	sess := session.Session{Project: project, StartedAt: s.clk.Now()}
	if err := session.Save(s.sessionPath, sess); err != nil {
		return nil, nil, fmt.Errorf("failed to save session state: %w", err)
	}

	return &sess, prev, nil
}

// Stop ends the active session and folds its elapsed time into today's log.
func (s *TrackerService) Stop() (*StopResult, error) {
	st := store.LoadOrDefault(s.statePath)

	result, err := s.stopInto(st)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrNoActiveSession
	}

	if err := store.Save(s.statePath, st); err != nil {
		return nil, fmt.Errorf("failed to save tracker state: %w", err)
	}

	return result, nil
}

// stopInto folds the persisted session (if any) into st and clears the
// session file. Returns nil when no session was active.
func (s *TrackerService) stopInto(st *store.TrackerState) (*StopResult, error) {
	sess, err := session.Load(s.sessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	now := s.clk.Now()
	day := timeutil.DayKey(now)
	elapsed := sess.Elapsed(now)
	st.Fold(day, sess.Project, elapsed)

	// Clear session state - ignore error since the fold is what matters
	// and the file will be overwritten on next start anyway
	_ = session.Clear(s.sessionPath)

	return &StopResult{
		Project:      sess.Project,
		Seconds:      elapsed,
		TodaySeconds: st.Total(day, sess.Project),
	}, nil
}

// Status returns the current session status.
func (s *TrackerService) Status() (*Status, error) {
	sess, err := session.Load(s.sessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}
	if sess == nil {
		return &Status{}, nil
	}

	st := store.LoadOrDefault(s.statePath)
	now := s.clk.Now()
	elapsed := sess.Elapsed(now)

	return &Status{
		Active:         true,
		Project:        sess.Project,
		StartedAt:      sess.StartedAt,
		ElapsedSeconds: elapsed,
		TodaySeconds:   st.Total(timeutil.DayKey(now), sess.Project) + elapsed,
	}, nil
}

// AddProject registers a new tracked project.
func (s *TrackerService) AddProject(name string) error {
	st := store.LoadOrDefault(s.statePath)
	if err := st.AddProject(name); err != nil {
		return err
	}
	if err := store.Save(s.statePath, st); err != nil {
		return fmt.Errorf("failed to save tracker state: %w", err)
	}
	return nil
}

// RemoveProject removes a tracked project, stopping and folding its session
// first if it is the active one. The second return reports whether the
// project was present; removing an unknown project is a no-op. History for
// the project is kept either way.
func (s *TrackerService) RemoveProject(name string) (*StopResult, bool, error) {
	st := store.LoadOrDefault(s.statePath)

	var fold *StopResult
	sess, err := session.Load(s.sessionPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load session state: %w", err)
	}
	if sess != nil && sess.Project == name {
		fold, err = s.stopInto(st)
		if err != nil {
			return nil, false, err
		}
	}

	removed := st.RemoveProject(name)
	if removed || fold != nil {
		if err := store.Save(s.statePath, st); err != nil {
			return nil, false, fmt.Errorf("failed to save tracker state: %w", err)
		}
	}

	return fold, removed, nil
}

// Projects lists the tracked projects in display order with today's totals,
// including the running session's elapsed time on the active project.
func (s *TrackerService) Projects() ([]ProjectToday, error) {
	st := store.LoadOrDefault(s.statePath)
	sess, err := session.Load(s.sessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}

	now := s.clk.Now()
	today := timeutil.DayKey(now)

	out := make([]ProjectToday, 0, len(st.Projects))
	for _, name := range st.Projects {
		p := ProjectToday{Name: name, Seconds: st.Total(today, name)}
		if sess != nil && sess.Project == name {
			p.Active = true
			p.Seconds += sess.Elapsed(now)
		}
		out = append(out, p)
	}
	return out, nil
}

// Today returns today's log together with the live session status.
func (s *TrackerService) Today() (*TodayResult, error) {
	st := store.LoadOrDefault(s.statePath)
	status, err := s.Status()
	if err != nil {
		return nil, err
	}

	today := timeutil.DayKey(s.clk.Now())
	entries := map[string]store.DayEntry{}
	for name, entry := range st.Log(today) {
		entries[name] = *entry
	}

	return &TodayResult{
		Day:          today,
		Entries:      entries,
		TotalSeconds: st.DayTotal(today) + status.ElapsedSeconds,
		Status:       status,
	}, nil
}

// History lists all days with logged time, most recent first.
func (s *TrackerService) History() ([]DaySummary, error) {
	st := store.LoadOrDefault(s.statePath)

	days := st.Days()
	out := make([]DaySummary, 0, len(days))
	for _, day := range days {
		out = append(out, DaySummary{
			Day:          day,
			Projects:     len(st.Log(day)),
			TotalSeconds: st.DayTotal(day),
		})
	}
	return out, nil
}

// Day returns the log for a single day. The map is empty when nothing was
// recorded that day.
func (s *TrackerService) Day(day string) (map[string]store.DayEntry, error) {
	st := store.LoadOrDefault(s.statePath)

	entries := map[string]store.DayEntry{}
	for name, entry := range st.Log(day) {
		entries[name] = *entry
	}
	return entries, nil
}

// Describe overwrites the description for (day, project). An empty day
// means today.
func (s *TrackerService) Describe(day, project, text string) error {
	if day == "" {
		day = timeutil.DayKey(s.clk.Now())
	}
	st := store.LoadOrDefault(s.statePath)

	if !st.SetDescription(day, project, text) {
		return ErrEntryNotFound
	}
	if err := store.Save(s.statePath, st); err != nil {
		return fmt.Errorf("failed to save tracker state: %w", err)
	}
	return nil
}

// Interval returns the configured check-in interval in minutes.
func (s *TrackerService) Interval() int {
	return store.LoadOrDefault(s.statePath).CheckInInterval
}

// SetInterval updates the check-in interval setting.
func (s *TrackerService) SetInterval(minutes int) error {
	st := store.LoadOrDefault(s.statePath)
	if err := st.SetCheckInInterval(minutes); err != nil {
		return err
	}
	if err := store.Save(s.statePath, st); err != nil {
		return fmt.Errorf("failed to save tracker state: %w", err)
	}
	return nil
}

// ClearHistory empties the entire daily log. Irreversible.
func (s *TrackerService) ClearHistory() error {
	st := store.LoadOrDefault(s.statePath)
	st.ClearHistory()
	if err := store.Save(s.statePath, st); err != nil {
		return fmt.Errorf("failed to save tracker state: %w", err)
	}
	return nil
}

// Live builds a live tracker over the stored document for the TUI, resuming
// any persisted session. The returned flush function saves the document and
// keeps the session file in sync with the tracker's active session.
func (s *TrackerService) Live() (*tracker.Tracker, func() error, error) {
	st := store.LoadOrDefault(s.statePath)
	tr := tracker.New(st, s.clk, s.config.EODHour)

	sess, err := session.Load(s.sessionPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session state: %w", err)
	}
	if sess != nil {
		tr.Resume(sess)
	}

	flush := func() error {
		if err := store.Save(s.statePath, tr.State()); err != nil {
			return fmt.Errorf("failed to save tracker state: %w", err)
		}
		if live := tr.Session(); live != nil {
			if err := session.Save(s.sessionPath, *live); err != nil {
				return fmt.Errorf("failed to save session state: %w", err)
			}
		} else if err := session.Clear(s.sessionPath); err != nil {
			return fmt.Errorf("failed to clear session state: %w", err)
		}
		return nil
	}

	return tr, flush, nil
}
