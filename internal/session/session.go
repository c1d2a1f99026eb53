// Package session persists the active timer session between process runs.
// At most one session exists at a time; the file is the single source of
// truth for one-shot CLI invocations.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/solvang/stint/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "stint"
	// SessionFile is the name of the JSON session state file
	SessionFile = "session.json"
)

// Session represents one continuous run of the timer for a single project.
type Session struct {
	Project   string    `json:"project"`
	StartedAt time.Time `json:"started_at"`
}

// Elapsed returns the whole seconds elapsed since the session started,
// as observed at now. Never negative.
func (s *Session) Elapsed(now time.Time) int {
	secs := int(now.Sub(s.StartedAt).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}

// GetSessionPath returns the path to the session state file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetSessionPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, SessionFile), nil
}

// Save writes the session state to the session file.
// Overwrites the file if it exists. Uses atomic write pattern (write to
// temp file, then rename) for safety.
func Save(path string, s Session) error {
	// Session contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(s, "", "  ")

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}

// Load reads the session state from the session file.
// Returns nil if the file doesn't exist (no active session).
// Returns an error if the file exists but cannot be read or parsed.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Clear removes the session state file.
// Returns nil if the file doesn't exist (idempotent operation).
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsActive checks if an active session exists.
func IsActive(path string) (bool, error) {
	s, err := Load(path)
	if err != nil {
		return false, err
	}
	return s != nil, nil
}
