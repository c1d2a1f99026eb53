package service

import (
	"github.com/solvang/stint/internal/config"
	"github.com/solvang/stint/internal/session"
	"github.com/solvang/stint/internal/store"
)

// Services holds all service instances used by the application
type Services struct {
	Tracker *TrackerService
	Config  *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	statePath, err := store.GetStatePath()
	if err != nil {
		return nil, err
	}

	sessionPath, err := session.GetSessionPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(statePath, sessionPath, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(statePath, sessionPath, configPath string, cfg config.Config) *Services {
	return &Services{
		Tracker: NewTrackerService(statePath, sessionPath, cfg),
		Config:  NewConfigService(configPath, cfg),
	}
}
