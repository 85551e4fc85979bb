package config

import (
	"baccarat_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type TokenConfig interface {
	SecretKey() []byte
	TokenDuration() time.Duration
}

type ArchiveConfig interface {
	SQLitePath() string
}

type LogConfig interface {
	Development() bool
}

// GameConfig - правила стола и значения по умолчанию для новых сессий
type GameConfig interface {
	DefaultSettings() model.Settings
	MaxMultiplier() int
	MaxWinStreak() int
	Decks() int
	DefaultHands() int
	MinHands() int
	MaxHands() int
	MinBankroll() int64
	Speeds() []int
	StatsWindow() int
	StreamPingInterval() time.Duration
}
