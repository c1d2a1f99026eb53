package service

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/solvang/stint/internal/config"
)

func newTestConfigService(t *testing.T) *ConfigService {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFile)
	return NewConfigService(path, config.DefaultConfig())
}

func TestConfigInitAndReload(t *testing.T) {
	svc := newTestConfigService(t)

	if svc.Exists() {
		t.Fatal("Exists() = true before Init")
	}

	if err := svc.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	if !svc.Exists() {
		t.Error("Exists() = false after Init")
	}

	// Init refuses to overwrite
	if err := svc.Init(); err == nil {
		t.Error("Init() expected error for existing config, got nil")
	}

	if err := svc.Reload(); err != nil {
		t.Fatalf("Reload() returned unexpected error: %v", err)
	}
	if got := svc.Get().EODHour; got != 18 {
		t.Errorf("EODHour after reload = %d, expected 18", got)
	}
}

func TestConfigUpdate(t *testing.T) {
	svc := newTestConfigService(t)

	cfg := svc.Get()
	cfg.EODHour = 20
	cfg.Timezone = "UTC"

	if err := svc.Update(cfg); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}
	if got := svc.Get().EODHour; got != 20 {
		t.Errorf("EODHour = %d, expected 20", got)
	}

	// Written file round-trips
	if err := svc.Reload(); err != nil {
		t.Fatalf("Reload() returned unexpected error: %v", err)
	}
	if got := svc.Get(); got.EODHour != 20 || got.Timezone != "UTC" {
		t.Errorf("reloaded config = %+v, expected eod_hour 20 and UTC", got)
	}
}

func TestConfigUpdateRejectsInvalid(t *testing.T) {
	svc := newTestConfigService(t)

	cfg := svc.Get()
	cfg.EODHour = 25

	err := svc.Update(cfg)
	if err == nil {
		t.Fatal("Update() expected error for invalid eod_hour, got nil")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("Update() error = %v, expected invalid configuration", err)
	}
	if got := svc.Get().EODHour; got != 18 {
		t.Errorf("EODHour = %d after failed update, expected unchanged 18", got)
	}
}
