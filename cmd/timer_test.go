package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestStartTimer(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")

	startTimer([]string{"Writing"})

	if env.exited {
		t.Fatalf("unexpected exit, stderr: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Timer started: Writing") {
		t.Errorf("expected start confirmation, got %q", env.stdout.String())
	}

	status, err := env.services.Tracker.Status()
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if !status.Active || status.Project != "Writing" {
		t.Errorf("expected active session on Writing, got %+v", status)
	}
}

func TestStartTimerUnknownProject(t *testing.T) {
	env := setupCmdTest(t)

	startTimer([]string{"Nope"})

	if !env.exited || env.exitCode != 1 {
		t.Fatal("expected exit code 1 for unknown project")
	}
	if !strings.Contains(env.stderr.String(), "Unknown project") {
		t.Errorf("expected unknown project error, got %q", env.stderr.String())
	}
	if !strings.Contains(env.stderr.String(), "stint add") {
		t.Errorf("expected hint to register the project, got %q", env.stderr.String())
	}
}

func TestStartTimerSwitchLogsPrevious(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")
	addTestProject(t, env, "Research")

	startTimer([]string{"Writing"})
	env.clk.Advance(90 * time.Second)
	env.stdout.Reset()

	startTimer([]string{"Research"})

	out := env.stdout.String()
	if !strings.Contains(out, "Logged 1m 30s to Writing") {
		t.Errorf("expected previous session fold in output, got %q", out)
	}
	if !strings.Contains(out, "Timer started: Research") {
		t.Errorf("expected start confirmation, got %q", out)
	}
}

func TestStopTimer(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")

	startTimer([]string{"Writing"})
	env.clk.Advance(2 * time.Minute)
	env.stdout.Reset()

	stopTimer()

	if env.exited {
		t.Fatalf("unexpected exit, stderr: %s", env.stderr.String())
	}
	out := env.stdout.String()
	if !strings.Contains(out, "Timer stopped: Writing") {
		t.Errorf("expected stop confirmation, got %q", out)
	}
	if !strings.Contains(out, "2m 0s") {
		t.Errorf("expected logged duration in output, got %q", out)
	}
}

func TestStopTimerWithoutSession(t *testing.T) {
	env := setupCmdTest(t)

	stopTimer()

	if !env.exited || env.exitCode != 1 {
		t.Fatal("expected exit code 1 when no timer is running")
	}
	if !strings.Contains(env.stderr.String(), "No timer is running") {
		t.Errorf("expected no-timer error, got %q", env.stderr.String())
	}
}

func TestShowStatusRunning(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")

	startTimer([]string{"Writing"})
	env.clk.Advance(45 * time.Second)
	env.stdout.Reset()

	showStatus()

	out := env.stdout.String()
	if !strings.Contains(out, "Tracking: Writing") {
		t.Errorf("expected tracking line, got %q", out)
	}
	if !strings.Contains(out, "45s") {
		t.Errorf("expected elapsed 45s, got %q", out)
	}
}

func TestShowStatusIdle(t *testing.T) {
	env := setupCmdTest(t)

	showStatus()

	if !strings.Contains(env.stdout.String(), "No timer running.") {
		t.Errorf("expected idle message, got %q", env.stdout.String())
	}
}

func TestStartTimerEmptyName(t *testing.T) {
	env := setupCmdTest(t)

	startTimer([]string{"   "})

	if !env.exited || env.exitCode != 1 {
		t.Fatal("expected exit code 1 for empty project name")
	}
	if !strings.Contains(env.stderr.String(), "cannot be empty") {
		t.Errorf("expected empty-name error, got %q", env.stderr.String())
	}
}
