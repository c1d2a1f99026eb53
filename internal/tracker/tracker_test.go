package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/solvang/stint/internal/store"
)

func TestAddProject(t *testing.T) {
	tr, _ := newTestTracker(t)

	if err := tr.AddProject("Writing"); err != nil {
		t.Fatalf("AddProject() returned unexpected error: %v", err)
	}
	if err := tr.AddProject("Writing"); !errors.Is(err, store.ErrDuplicateProject) {
		t.Errorf("AddProject(duplicate) error = %v, expected ErrDuplicateProject", err)
	}

	projects := tr.Projects()
	if len(projects) != 1 || projects[0] != "Writing" {
		t.Errorf("Projects() = %v, expected [Writing]", projects)
	}
}

func TestRemoveActiveProjectFoldsFirst(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(75 * time.Second)

	if !tr.RemoveProject("Writing") {
		t.Fatal("RemoveProject() = false for tracked project")
	}

	// Partial elapsed time was folded before deletion
	if got := tr.DayTotal("2026-03-10"); got != 75 {
		t.Errorf("DayTotal = %d, expected 75", got)
	}
	// No session remains
	if _, active := tr.Active(); active {
		t.Error("session active after removing its project")
	}
	if tr.Projects() == nil || len(tr.Projects()) != 0 {
		t.Errorf("Projects() = %v, expected empty", tr.Projects())
	}
}

func TestRemoveInactiveProjectLeavesSession(t *testing.T) {
	tr, clk := newTestTracker(t, "A", "B")

	if err := tr.Start("A"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(30 * time.Second)

	if !tr.RemoveProject("B") {
		t.Fatal("RemoveProject(B) = false")
	}

	project, active := tr.Active()
	if !active || project != "A" {
		t.Errorf("Active() = (%q, %v), expected (A, true)", project, active)
	}
}

func TestClearHistoryThenDaysEmpty(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(time.Minute)
	tr.Stop()

	if got := tr.Days(); len(got) != 1 {
		t.Fatalf("Days() = %v, expected one day", got)
	}

	tr.ClearHistory()

	if got := tr.Days(); len(got) != 0 {
		t.Errorf("Days() after ClearHistory = %v, expected empty", got)
	}
}

func TestTakeDirty(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")

	if tr.TakeDirty() {
		t.Error("TakeDirty() = true on fresh tracker")
	}

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	if !tr.TakeDirty() {
		t.Error("TakeDirty() = false after Start")
	}
	if tr.TakeDirty() {
		t.Error("TakeDirty() = true twice without a mutation in between")
	}

	clk.Advance(time.Minute)
	tr.Stop()
	if !tr.TakeDirty() {
		t.Error("TakeDirty() = false after Stop")
	}

	// Read-only operations don't mark dirty
	_ = tr.TodayTotal("Writing")
	_ = tr.Days()
	if tr.TakeDirty() {
		t.Error("TakeDirty() = true after read-only operations")
	}
}

func TestSetDescriptionThroughTracker(t *testing.T) {
	tr, clk := newTestTracker(t, "Writing")

	if err := tr.Start("Writing"); err != nil {
		t.Fatalf("Start() returned unexpected error: %v", err)
	}
	clk.Advance(130 * time.Second)
	tr.Stop()

	if !tr.SetDescription("2026-03-10", "Writing", "drafted spec") {
		t.Fatal("SetDescription() = false for existing entry")
	}

	entry := tr.DayLog("2026-03-10")["Writing"]
	if entry.Seconds != 130 || entry.Description != "drafted spec" {
		t.Errorf("entry = %+v, expected {130 drafted spec}", entry)
	}
}
