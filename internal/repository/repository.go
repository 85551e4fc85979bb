package repository

import (
	"baccarat_backend/internal/model"
	repoModel "baccarat_backend/internal/repository/table_stats_repo/model"
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// SessionRepository хранит шу сессии и журнал ставок.
// Состояние сессии восстанавливается повтором журнала.
type SessionRepository interface {
	CreateSession(ctx context.Context, id string, shoe string) error
	GetShoe(ctx context.Context, id string) (string, error)
	UpdateShoe(ctx context.Context, id string, shoe string) error

	AppendBet(ctx context.Context, id string, rec model.BetRecord) error
	DeleteLastBet(ctx context.Context, id string) error
	ClearBets(ctx context.Context, id string) error
	CountBets(ctx context.Context, id string) (int, error)
}

type SettingsRepository interface {
	SaveSettings(ctx context.Context, id string, settings model.Settings) error
	GetSettings(ctx context.Context, id string) (*model.Settings, error)
}

// StatsRepository - агрегированная статистика стола по всем сессиям
type StatsRepository interface {
	RecordHand(betType model.BetType, result model.HandResult, bet, payout decimal.Decimal)
	RevertHand(betType model.BetType, result model.HandResult, bet, payout decimal.Decimal)
	TableState() repoModel.TableState
}
