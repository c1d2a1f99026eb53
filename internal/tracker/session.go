package tracker

import (
	"time"

	"github.com/solvang/stint/internal/session"
	"github.com/solvang/stint/internal/store"
	"github.com/solvang/stint/internal/timeutil"
)

// Start begins a session on the named project. If a session is already
// running (on any project), it is stopped first so its elapsed time is
// folded into today's log. Starting the active project restarts its clock.
// Returns store.ErrUnknownProject if the project is not tracked.
func (t *Tracker) Start(project string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.st.HasProject(project) {
		return store.ErrUnknownProject
	}

	if t.active != nil {
		t.stopLocked()
	}

	now := t.clk.Now()
	t.active = &session.Session{Project: project, StartedAt: now}
	t.lastCheckIn = now
	t.dirty = true
	return nil
}

// Stop ends the active session, folding its elapsed seconds into today's
// log. No-op when no session is running.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// stopLocked folds and clears the active session. Callers hold t.mu.
// Elapsed seconds post to the day the session is stopped in; a session
// spanning midnight is not split.
func (t *Tracker) stopLocked() {
	if t.active == nil {
		return
	}
	now := t.clk.Now()
	if elapsed := t.active.Elapsed(now); elapsed > 0 {
		t.st.Fold(timeutil.DayKey(now), t.active.Project, elapsed)
	}
	t.active = nil
	t.lastCheckIn = time.Time{}
	t.dirty = true
}

// Active returns the active project name, or false if no session runs.
func (t *Tracker) Active() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return "", false
	}
	return t.active.Project, true
}

// Session returns a copy of the active session, or nil.
func (t *Tracker) Session() *session.Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return nil
	}
	s := *t.active
	return &s
}

// CurrentElapsed returns the whole seconds elapsed in the active session,
// or 0 when no session runs.
func (t *Tracker) CurrentElapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return 0
	}
	return t.active.Elapsed(t.clk.Now())
}

// TodayTotal returns today's accumulated seconds for a project, including
// the in-progress session when the queried project is the active one.
func (t *Tracker) TodayTotal(project string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := t.st.Total(t.today(), project)
	if t.active != nil && t.active.Project == project {
		total += t.active.Elapsed(t.clk.Now())
	}
	return total
}
