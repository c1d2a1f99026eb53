package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/solvang/stint/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "stint"
	// StateFile is the name of the JSON tracker document
	StateFile = "tracker.json"
)

// GetStatePath returns the path to the tracker document.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetStatePath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, StateFile), nil
}

// LoadOrDefault reads the tracker document from disk.
// A missing file or an unparseable document falls back to the empty default
// state; history is never a reason to fail startup.
func LoadOrDefault(path string) *TrackerState {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultState()
	}

	var state TrackerState
	if err := json.Unmarshal(data, &state); err != nil {
		return DefaultState()
	}

	state.normalize()
	return &state
}

// Save writes the tracker document to disk.
// Uses atomic write pattern (write to temp file, then rename) so a failed
// write never corrupts the previous document.
func Save(path string, state *TrackerState) error {
	// TrackerState contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(state, "", "  ")

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}
