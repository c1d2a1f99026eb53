package tracker

import "time"

// CheckInDue reports whether a "still working?" prompt is due, and opens
// the next wait window immediately when it is. Resetting the window before
// the user answers is what prevents the prompt from re-firing while it is
// pending.
func (t *Tracker) CheckInDue() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil || t.lastCheckIn.IsZero() {
		return false
	}

	interval := time.Duration(t.st.CheckInInterval) * time.Minute
	now := t.clk.Now()
	if now.Sub(t.lastCheckIn) < interval {
		return false
	}

	t.lastCheckIn = now
	return true
}

// ConfirmCheckIn records a "yes, still working" answer: the wait window
// restarts at now.
func (t *Tracker) ConfirmCheckIn() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active != nil {
		t.lastCheckIn = t.clk.Now()
	}
}

// DeclineCheckIn records a "no, stop" answer: the session is stopped and
// its elapsed time folded in.
func (t *Tracker) DeclineCheckIn() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}
