package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/solvang/stint/internal/service"
)

func TestShowTodayEmpty(t *testing.T) {
	env := setupCmdTest(t)

	showToday()

	out := env.stdout.String()
	if !strings.Contains(out, "No time logged today.") {
		t.Errorf("expected empty message, got %q", out)
	}
	if !strings.Contains(out, "stint start") {
		t.Errorf("expected hint, got %q", out)
	}
}

func TestShowTodayWithEntries(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")
	addTestProject(t, env, "Research")

	startTimer([]string{"Writing"})
	env.clk.Advance(30 * time.Minute)
	stopTimer()
	startTimer([]string{"Research"})
	env.clk.Advance(10 * time.Minute)
	env.stdout.Reset()

	showToday()

	out := env.stdout.String()
	if !strings.Contains(out, "Tue, Mar 10, 2026") {
		t.Errorf("expected day label, got %q", out)
	}
	if !strings.Contains(out, "Tracking Research") {
		t.Errorf("expected live session line, got %q", out)
	}
	if !strings.Contains(out, "30m 0s") {
		t.Errorf("expected Writing total, got %q", out)
	}
	// Persisted 30m plus the live 10m session
	if !strings.Contains(out, "Total: 40m 0s") {
		t.Errorf("expected grand total including live session, got %q", out)
	}
}

func TestShowTodayMarksActiveProject(t *testing.T) {
	env := setupCmdTest(t)
	addTestProject(t, env, "Writing")

	startTimer([]string{"Writing"})
	env.clk.Advance(5 * time.Minute)
	env.stdout.Reset()

	showToday()

	if !strings.Contains(env.stdout.String(), "●") {
		t.Errorf("expected active marker, got %q", env.stdout.String())
	}
}

func TestRequireServicesFailure(t *testing.T) {
	env := setupCmdTest(t)
	deps.Services = func() (*service.Services, error) {
		return nil, errors.New("no home directory")
	}

	showToday()

	if !env.exited || env.exitCode != 1 {
		t.Fatal("expected exit code 1 when services cannot be built")
	}
	if !strings.Contains(env.stderr.String(), "Failed to initialize services") {
		t.Errorf("expected init error, got %q", env.stderr.String())
	}
}
