package tracker

// SummaryDue reports whether the end-of-day summary prompt is due, and
// dismisses further prompts for the rest of the day when it is. The prompt
// is due when the local time has passed the configured threshold hour,
// some project has logged time today, and at least one of today's entries
// still has no description.
func (t *Tracker) SummaryDue() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rolloverLocked()
	if t.eodDismissed {
		return false
	}

	now := t.clk.Now()
	if now.Hour() < t.eodHour {
		return false
	}

	log := t.st.Log(t.today())
	if len(log) == 0 {
		return false
	}

	hasTime := false
	missingDesc := false
	for _, entry := range log {
		if entry.Seconds > 0 {
			hasTime = true
		}
		if entry.Description == "" {
			missingDesc = true
		}
	}
	if !hasTime || !missingDesc {
		return false
	}

	// Dismiss before the prompt is answered so it cannot fire again while
	// the user is composing
	t.eodDismissed = true
	return true
}

// SubmitSummary overwrites the descriptions of today's entries with the
// given texts (trimmed). Projects without an entry today are ignored, and
// entries not mentioned are left unchanged. Dismisses the prompt for the
// rest of the day.
func (t *Tracker) SubmitSummary(descriptions map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rolloverLocked()
	today := t.today()
	for project, text := range descriptions {
		if t.st.SetDescription(today, project, text) {
			t.dirty = true
		}
	}
	t.eodDismissed = true
}

// DeferSummary dismisses the prompt for the rest of the day without
// changing any data.
func (t *Tracker) DeferSummary() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolloverLocked()
	t.eodDismissed = true
}

// rolloverLocked resets the dismissal flag when the calendar day has
// changed since it was set. Callers hold t.mu.
func (t *Tracker) rolloverLocked() {
	today := t.today()
	if t.eodDay != today {
		t.eodDay = today
		t.eodDismissed = false
	}
}
