// Package tracker implements the live timer state machine: the active
// session, the periodic check-in scheduler, and the end-of-day summary gate.
// A Tracker owns one tracker document and serializes all access behind a
// mutex, so it can be driven from bubbletea command goroutines.
package tracker

import (
	"sync"
	"time"

	"github.com/solvang/stint/internal/clock"
	"github.com/solvang/stint/internal/session"
	"github.com/solvang/stint/internal/store"
	"github.com/solvang/stint/internal/timeutil"
)

// Tracker is the live tracking engine. All exported methods are safe for
// concurrent use.
type Tracker struct {
	mu  sync.Mutex
	st  *store.TrackerState
	clk clock.Clock

	// eodHour is the local hour at which the summary prompt becomes due
	eodHour int

	active      *session.Session
	lastCheckIn time.Time // zero when no check-in window is open

	// eodDismissed suppresses the summary prompt for eodDay only; a new
	// calendar day resets it
	eodDismissed bool
	eodDay       string

	dirty bool
}

// New creates a Tracker over the given document. eodHour is the local hour
// (0-23) after which the end-of-day summary becomes due.
func New(st *store.TrackerState, clk clock.Clock, eodHour int) *Tracker {
	return &Tracker{
		st:      st,
		clk:     clk,
		eodHour: eodHour,
	}
}

// Resume adopts a previously persisted session, e.g. one started by a
// one-shot CLI invocation. The check-in window restarts at now.
func (t *Tracker) Resume(s *session.Session) {
	if s == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = &session.Session{Project: s.Project, StartedAt: s.StartedAt}
	t.lastCheckIn = t.clk.Now()
}

// State returns the underlying document for persistence. Callers must not
// mutate it while the tracker is live.
func (t *Tracker) State() *store.TrackerState {
	return t.st
}

// TakeDirty reports whether state changed since the last call and resets
// the flag. The owner uses it to decide when to flush to disk.
func (t *Tracker) TakeDirty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.dirty
	t.dirty = false
	return d
}

// Projects returns the project list in display order.
func (t *Tracker) Projects() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.st.Projects))
	copy(out, t.st.Projects)
	return out
}

// AddProject adds a project to the tracked list.
func (t *Tracker) AddProject(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.st.AddProject(name); err != nil {
		return err
	}
	t.dirty = true
	return nil
}

// RemoveProject removes a project. If the project has the active session,
// the session is stopped first so its partial time is folded in. The
// project's history is kept.
func (t *Tracker) RemoveProject(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active != nil && t.active.Project == name {
		t.stopLocked()
	}
	if !t.st.RemoveProject(name) {
		return false
	}
	t.dirty = true
	return true
}

// Interval returns the configured check-in interval in minutes.
func (t *Tracker) Interval() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.CheckInInterval
}

// SetInterval updates the check-in interval. Takes effect on the next
// due-check; the current wait window is not rescheduled.
func (t *Tracker) SetInterval(minutes int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.st.SetCheckInInterval(minutes); err != nil {
		return err
	}
	t.dirty = true
	return nil
}

// DayTotal returns the accumulated seconds over all projects for a day.
func (t *Tracker) DayTotal(day string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.DayTotal(day)
}

// Days returns all days with logged time, most recent first.
func (t *Tracker) Days() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.st.Days()
}

// DayLog returns a copy of the log for the given day.
func (t *Tracker) DayLog(day string) map[string]store.DayEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := map[string]store.DayEntry{}
	for name, entry := range t.st.Log(day) {
		out[name] = *entry
	}
	return out
}

// SetDescription overwrites the description for (day, project).
// Returns false if no entry exists.
func (t *Tracker) SetDescription(day, project, text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.st.SetDescription(day, project, text) {
		return false
	}
	t.dirty = true
	return true
}

// ClearHistory empties the entire daily log. Irreversible.
func (t *Tracker) ClearHistory() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.st.ClearHistory()
	t.dirty = true
}

// Today returns the current calendar-day key in the tracker's timezone.
func (t *Tracker) Today() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.today()
}

// today returns the current calendar-day key. Callers hold t.mu.
func (t *Tracker) today() string {
	return timeutil.DayKey(t.clk.Now())
}
