package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/solvang/stint/internal/clock"
	"github.com/solvang/stint/internal/session"
	"github.com/solvang/stint/internal/store"
	"github.com/solvang/stint/internal/timeutil"
)

// newTestTracker builds a tracker over a manual clock with the given
// projects registered.
func newTestTracker(t *testing.T, projects ...string) (*Tracker, *clock.Manual) {
	t.Helper()
	st := store.DefaultState()
	for _, name := range projects {
		if err := st.AddProject(name); err != nil {
			t.Fatalf("AddProject(%q) returned unexpected error: %v", name, err)
		}
	}
	clk := clock.NewManual(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local))
	return New(st, clk, 18), clk
}

func TestStartStopFoldsElapsed(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(90 * time.Second)
	tr.Stop()

	if got := tr.TodayTotal("Writing"); got != 90 {
		t.Errorf("TodayTotal = %d, expected 90", got)
	}

	// A second session accumulates on top
	clk.Advance(10 * time.Second)
	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(40 * time.Second)
	tr.Stop()

	if got := tr.TodayTotal("Writing"); got != 130 {
		t.Errorf("TodayTotal after second session = %d, expected 130", got)
	}
}

func TestStartUnknownProject(t *testing.T) {
	tr, _ := newTestTracker(t, "Writing")

	err := tr.Start("Nope")
	if !errors.Is(err, store.ErrUnknownProject) {
		t.Errorf("Start(unknown) error = %v, expected ErrUnknownProject", err)
	}
	if _, active := tr.Active(); active {
		t.Error("session active after failed Start")
	}
}

func TestStartSwitchesProject(t *testing.T) {
	tr, clk := newTestTracker(t, "A", "B")

	if err := tr.Start("A"); err != nil {
		t.Fatalf("Start(A) returned unexpected error: %v", err)
	}
	clk.Advance(60 * time.Second)
	if err := tr.Start("B"); err != nil {
		t.Fatalf("Start(B) returned unexpected error: %v", err)
	}

	// A's elapsed time was folded when B started
	if got := tr.TodayTotal("A"); got != 60 {
		t.Errorf("TodayTotal(A) = %d, expected 60", got)
	}

	// Exactly one session is active, and it is B
	project, active := tr.Active()
	if !active || project != "B" {
		t.Errorf("Active() = (%q, %v), expected (B, true)", project, active)
	}
	if got := tr.CurrentElapsed(); got != 0 {
		t.Errorf("CurrentElapsed for fresh session = %d, expected 0", got)
	}
}

func TestRestartSameProjectResetsSessionClock(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(50 * time.Second)
	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("restart Start() returned unexpected error: %v", err)
	}

	// Session clock reset, prior seconds already folded
	if got := tr.CurrentElapsed(); got != 0 {
		t.Errorf("CurrentElapsed after restart = %d, expected 0", got)
	}
	if got := tr.TodayTotal("Writing"); got != 50 {
		t.Errorf("TodayTotal after restart = %d, expected 50", got)
	}
}

func TestStopWithoutSessionIsNoop(t *testing.T) {
	tr, _ := newTestTracker(t, "Writing")

	tr.Stop()

	if got := tr.TodayTotal("Writing"); got != 0 {
		t.Errorf("TodayTotal = %d, expected 0", got)
	}
	if _, active := tr.Active(); active {
		t.Error("session active after Stop on idle tracker")
	}
}

func TestZeroSecondSessionNotFolded(t *testing.T) {
	tr, _ := newTestTracker(t, "Writing")

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	tr.Stop()

	if log := tr.DayLog("2026-03-10"); len(log) != 0 {
		t.Errorf("DayLog = %v, expected no entry for zero-second session", log)
	}
}

func TestTodayTotalIncludesRunningSession(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing", "Other")

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(90 * time.Second)
	if err := tr.Start("Writing"); err != nil { // folds 90s, starts fresh
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(30 * time.Second)

	if got := tr.TodayTotal("Writing"); got != 120 {
		t.Errorf("TodayTotal = %d, expected persisted 90 + running 30 = 120", got)
	}
	// Only the active project includes the running session
	if got := tr.TodayTotal("Other"); got != 0 {
		t.Errorf("TodayTotal(Other) = %d, expected 0", got)
	}
}

func TestCurrentElapsedFloors(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(45*time.Second + 700*time.Millisecond)

	if got := tr.CurrentElapsed(); got != 45 {
		t.Errorf("CurrentElapsed = %d, expected floor 45", got)
	}
}

func TestMidnightSpanPostsToStopDay(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")
	clk.Set(time.Date(2026, time.March, 10, 23, 58, 0, 0, time.Local))

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Set(time.Date(2026, time.March, 11, 0, 2, 0, 0, time.Local))
	tr.Stop()

	// All four minutes post to the day the session stopped in
	if got := tr.DayTotal("2026-03-11"); got != 240 {
		t.Errorf("DayTotal(stop day) = %d, expected 240", got)
	}
	if got := tr.DayTotal("2026-03-10"); got != 0 {
		t.Errorf("DayTotal(start day) = %d, expected 0", got)
	}
}

func TestResume(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")

	started := clk.Now().Add(-5 * time.Minute)
	tr.Resume(&session.Session{Project: "Writing", StartedAt: started})

	project, active := tr.Active()
	if !active || project != "Writing" {
		t.Fatalf("Active() = (%q, %v), expected (Writing, true)", project, active)
	}
	if got := tr.CurrentElapsed(); got != 300 {
		t.Errorf("CurrentElapsed = %d, expected 300", got)
	}

	clk.Advance(60 * time.Second)
	tr.Stop()
	if got := tr.TodayTotal("Writing"); got != 360 {
		t.Errorf("TodayTotal = %d, expected 360", got)
	}
}

func TestAdditivityOverSessions(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")
	deltas := []int{5, 60, 17, 1, 300}

	sum := 0
	for _, d := range deltas {
		if err := tr.Start("Writing"); err != nil {
			t.Fatalf("Start() returned unexpected error: %v", err)
		}
		clk.Advance(time.Duration(d) * time.Second)
		tr.Stop()
		sum += d
	}

	if got := tr.TodayTotal("Writing"); got != sum {
		t.Errorf("TodayTotal = %d, expected sum of deltas %d", got, sum)
	}
	day := timeutil.DayKey(clk.Now())
	if got := tr.DayTotal(day); got != sum {
		t.Errorf("DayTotal = %d, expected %d", got, sum)
	}
}
