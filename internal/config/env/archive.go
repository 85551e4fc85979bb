package env

import (
	"baccarat_backend/internal/config"
	"os"
)

const archivePathEnvName = "ARCHIVE_SQLITE_PATH"

type archiveConfig struct {
	path string
}

// NewArchiveConfig returns an empty path when the archive is disabled.
func NewArchiveConfig() (config.ArchiveConfig, error) {
	return &archiveConfig{path: os.Getenv(archivePathEnvName)}, nil
}

func (c *archiveConfig) SQLitePath() string {
	return c.path
}
