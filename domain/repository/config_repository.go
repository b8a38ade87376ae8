package repository

import (
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
)

// ConfigRepository manages reading and writing the configuration file
type ConfigRepository interface {
	// Exists reports whether the configuration file is present
	Exists() (bool, error)

	// Load reads the configuration file; a missing file yields (nil, nil)
	Load() (*config.AppConfig, error)

	// Save writes the configuration to the file
	Save(cfg *config.AppConfig) error

	// GetConfigPath returns the configuration file path
	GetConfigPath() string

	// EnsureConfigDir makes sure the configuration directory exists
	EnsureConfigDir() error
}
