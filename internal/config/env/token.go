package env

import (
	"baccarat_backend/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	tokenSecretEnvName   = "SESSION_TOKEN_SECRET"
	tokenDurationEnvName = "SESSION_TOKEN_DURATION"

	defaultTokenDuration = 24 * time.Hour
)

type tokenConfig struct {
	secretKey     string
	tokenDuration time.Duration
}

func NewTokenConfig() (config.TokenConfig, error) {
	secret := os.Getenv(tokenSecretEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	duration := defaultTokenDuration
	if raw := os.Getenv(tokenDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session token duration: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("session token duration must be positive, got %s", parsed)
		}
		duration = parsed
	}

	return &tokenConfig{
		secretKey:     secret,
		tokenDuration: duration,
	}, nil
}

func (c *tokenConfig) SecretKey() []byte {
	return []byte(c.secretKey)
}

func (c *tokenConfig) TokenDuration() time.Duration {
	return c.tokenDuration
}
