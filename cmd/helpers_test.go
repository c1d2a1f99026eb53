package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/solvang/stint/internal/clock"
	"github.com/solvang/stint/internal/config"
	"github.com/solvang/stint/internal/service"
)

// testEnv bundles the buffers and fakes wired into the command deps
type testEnv struct {
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	stdin    *bytes.Buffer
	exitCode int
	exited   bool
	services *service.Services
	clk      *clock.Manual
}

// setupCmdTest points the command deps at buffers and a temp-dir service
// layer with a manual clock
func setupCmdTest(t *testing.T) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	services := service.NewServicesWithPaths(
		filepath.Join(tmpDir, "tracker.json"),
		filepath.Join(tmpDir, "session.json"),
		filepath.Join(tmpDir, "config.toml"),
		cfg,
	)

	clk := clock.NewManual(time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local))
	services.Tracker.SetClock(clk)

	env := &testEnv{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		stdin:    &bytes.Buffer{},
		services: services,
		clk:      clk,
	}

	SetDeps(&Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  env.stdin,
		Exit: func(code int) {
			env.exitCode = code
			env.exited = true
		},
		Services: func() (*service.Services, error) {
			return services, nil
		},
	})
	t.Cleanup(ResetDeps)

	return env
}

// addTestProject registers a project through the service layer
func addTestProject(t *testing.T, env *testEnv, name string) {
	t.Helper()
	if err := env.services.Tracker.AddProject(name); err != nil {
		t.Fatalf("AddProject(%q) error = %v", name, err)
	}
}
