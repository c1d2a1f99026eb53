package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestAddProject(t *testing.T) {
	env := setupCmdTest(t)

	addProject([]string{"Writing"})

	if env.exited {
		t.Fatalf("unexpected exit, stderr: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Added project: Writing") {
		t.Errorf("expected confirmation, got %q", env.stdout.String())
	}
}

func TestAddProjectDuplicate(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")

	addProject([]string{"Writing"})

	if !env.exited || env.exitCode != 1 {
		t.Fatal("expected exit code 1 for duplicate project")
	}
	if !strings.Contains(env.stderr.String(), "already exists") {
		t.Errorf("expected duplicate error, got %q", env.stderr.String())
	}
}

func TestAddProjectEmpty(t *testing.T) {
	env := setupCmdTest(t)

	addProject([]string{"  "})

	if !env.exited || env.exitCode != 1 {
		t.Fatal("expected exit code 1 for empty name")
	}
	if !strings.Contains(env.stderr.String(), "cannot be empty") {
		t.Errorf("expected empty-name error, got %q", env.stderr.String())
	}
}

func TestRemoveProjectStopsTimerFirst(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")

	startTimer([]string{"Writing"})
	env.clk.Advance(75 * time.Second)
	env.stdout.Reset()

	removeProject([]string{"Writing"})

	out := env.stdout.String()
	if !strings.Contains(out, "logged 1m 15s to Writing") {
		t.Errorf("expected fold note, got %q", out)
	}
	if !strings.Contains(out, "Removed project: Writing (history kept)") {
		t.Errorf("expected removal confirmation, got %q", out)
	}

	// History survives removal
	days, err := env.services.Tracker.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(days) != 1 || days[0].TotalSeconds != 75 {
		t.Errorf("expected 75s kept in history, got %+v", days)
	}
}

func TestRemoveProjectUnknown(t *testing.T) {
	env := setupCmdTest(t)

	removeProject([]string{"Nope"})

	if env.exited {
		t.Fatal("removing an unknown project should not exit nonzero")
	}
	if !strings.Contains(env.stdout.String(), "not tracked") {
		t.Errorf("expected no-op message, got %q", env.stdout.String())
	}
}

func TestListProjects(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")
	addTestProject(t, env, "Research")

	startTimer([]string{"Writing"})
	env.clk.Advance(time.Minute)
	env.stdout.Reset()

	listProjects()

	out := env.stdout.String()
	if !strings.Contains(out, "Writing") || !strings.Contains(out, "Research") {
		t.Errorf("expected both projects listed, got %q", out)
	}
	if !strings.Contains(out, "●") {
		t.Errorf("expected active marker for Writing, got %q", out)
	}
}

func TestListProjectsEmpty(t *testing.T) {
	env := setupCmdTest(t)

	listProjects()

	if !strings.Contains(env.stdout.String(), "No projects yet.") {
		t.Errorf("expected empty message, got %q", env.stdout.String())
	}
}
