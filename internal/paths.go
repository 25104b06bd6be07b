package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved locations of everything tempo stores on disk.
type Paths struct {
	DataDir      string
	SessionsFile string
	ConfigFile   string
	ArchiveFile  string
}

// ResolvePaths resolves the data directory and the files inside it,
// creating the directory if needed. An empty override uses the platform
// default (os.UserConfigDir()/tempo).
func ResolvePaths(override string) (*Paths, error) {
	dataDir := override
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		dataDir = filepath.Join(base, "tempo")
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	return &Paths{
		DataDir:      dataDir,
		SessionsFile: filepath.Join(dataDir, "sessions.json"),
		ConfigFile:   filepath.Join(dataDir, "config.yaml"),
		ArchiveFile:  filepath.Join(dataDir, "archive.db"),
	}, nil
}
