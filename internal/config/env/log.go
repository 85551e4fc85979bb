package env

import (
	"baccarat_backend/internal/config"
	"os"
	"strings"
)

const logModeEnvName = "LOG_MODE"

type logConfig struct {
	development bool
}

func NewLogConfig() (config.LogConfig, error) {
	mode := strings.ToLower(os.Getenv(logModeEnvName))
	return &logConfig{development: mode == "dev" || mode == "development"}, nil
}

func (c *logConfig) Development() bool {
	return c.development
}
