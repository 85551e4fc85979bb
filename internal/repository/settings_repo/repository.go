package settings_repo

import (
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table              = "session_settings"
	colSessionID       = "session_id"
	colBetType         = "bet_type"
	colStrategyType    = "strategy_type"
	colBaseUnit        = "base_unit"
	colTargetProfit    = "target_profit"
	colStopLoss        = "stop_loss"
	colSequence        = "labouchere_sequence"
	colInitialBankroll = "initial_bankroll"
	colAutoPlaySpeed   = "autoplay_speed"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewSettingsRepository(dbc *pgxpool.Pool) repository.SettingsRepository {
	return &repo{
		dbc: dbc,
	}
}

// SaveSettings - сохраняет настройки сессии. Если запись уже есть, она перезаписывается
func (r *repo) SaveSettings(ctx context.Context, id string, s model.Settings) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colSessionID, colBetType, colStrategyType, colBaseUnit, colTargetProfit,
			colStopLoss, colSequence, colInitialBankroll, colAutoPlaySpeed).
		Values(id, string(s.BetType), string(s.StrategyType), s.BaseUnit, s.TargetProfit,
			s.StopLoss, s.LabouchereSequence, s.InitialBankroll, s.AutoPlaySpeed).
		Suffix("ON CONFLICT (" + colSessionID + ") DO UPDATE SET " +
			colBetType + " = EXCLUDED." + colBetType + ", " +
			colStrategyType + " = EXCLUDED." + colStrategyType + ", " +
			colBaseUnit + " = EXCLUDED." + colBaseUnit + ", " +
			colTargetProfit + " = EXCLUDED." + colTargetProfit + ", " +
			colStopLoss + " = EXCLUDED." + colStopLoss + ", " +
			colSequence + " = EXCLUDED." + colSequence + ", " +
			colInitialBankroll + " = EXCLUDED." + colInitialBankroll + ", " +
			colAutoPlaySpeed + " = EXCLUDED." + colAutoPlaySpeed).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetSettings - получение настроек сессии. Возвращает repository.ErrNotFound, если записи нет
func (r *repo) GetSettings(ctx context.Context, id string) (*model.Settings, error) {
	query := sq.Select(colBetType, colStrategyType, colBaseUnit, colTargetProfit,
		colStopLoss, colSequence, colInitialBankroll, colAutoPlaySpeed).
		From(table).
		Where(sq.Eq{colSessionID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		s                     model.Settings
		betType, strategyType string
	)
	err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&betType, &strategyType, &s.BaseUnit, &s.TargetProfit,
		&s.StopLoss, &s.LabouchereSequence, &s.InitialBankroll, &s.AutoPlaySpeed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	s.BetType = model.BetType(betType)
	s.StrategyType = model.StrategyType(strategyType)
	return &s, nil
}
