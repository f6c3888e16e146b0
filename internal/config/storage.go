package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultDataDir is where scores and game records live unless configured.
var DefaultDataDir = filepath.Join(xdg.DataHome, "tilechess")

// StorageConfig holds settings for score persistence.
type StorageConfig struct {
	// DataDir is the badger database directory
	DataDir string `validate:"required_unless=Disabled true"`

	// Disabled turns persistence off
	Disabled bool
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{DataDir: DefaultDataDir}
}
