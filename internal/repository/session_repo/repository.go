package session_repo

import (
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/repository"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	sessionsTable = "baccarat_sessions"
	colSessionID  = "session_id"
	colShoe       = "shoe"
	colUpdatedAt  = "updated_at"

	betsTable    = "bet_records"
	colHand      = "hand"
	colResult    = "result"
	colBetType   = "bet_type"
	colBetAmount = "bet_amount"
	colPayout    = "payout"
	colBalance   = "balance"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc: dbc,
	}
}

// conn возвращает текущую транзакцию из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)
}

func (r *repo) exec(ctx context.Context, query sq.Sqlizer) (int64, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CreateSession - создает запись сессии с шу
func (r *repo) CreateSession(ctx context.Context, id string, shoe string) error {
	// Формируем запрос
	query := sq.Insert(sessionsTable).
		Columns(colSessionID, colShoe).
		Values(id, shoe).
		PlaceholderFormat(sq.Dollar)

	_, err := r.exec(ctx, query)
	return err
}

// GetShoe - получение шу сессии. Возвращает repository.ErrNotFound, если сессии нет
func (r *repo) GetShoe(ctx context.Context, id string) (string, error) {
	query := sq.Select(colShoe).
		From(sessionsTable).
		Where(sq.Eq{colSessionID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var shoe string
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&shoe)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrNotFound
		}
		return "", err
	}

	return shoe, nil
}

// UpdateShoe - замена шу. Журнал ставок к старому шу больше не относится и удаляется
func (r *repo) UpdateShoe(ctx context.Context, id string, shoe string) error {
	query := sq.Update(sessionsTable).
		Set(colShoe, shoe).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colSessionID: id}).
		PlaceholderFormat(sq.Dollar)

	rows, err := r.exec(ctx, query)
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return r.ClearBets(ctx, id)
}

// AppendBet - добавляет строку журнала ставок
func (r *repo) AppendBet(ctx context.Context, id string, rec model.BetRecord) error {
	query := sq.Insert(betsTable).
		Columns(colSessionID, colHand, colResult, colBetType, colBetAmount, colPayout, colBalance).
		Values(id, rec.Hand, string(rec.Result), string(rec.BetType), rec.BetAmount, rec.Payout, rec.Balance).
		PlaceholderFormat(sq.Dollar)

	if _, err := r.exec(ctx, query); err != nil {
		return fmt.Errorf("append bet %d: %w", rec.Hand, err)
	}
	return nil
}

// DeleteLastBet - удаляет последнюю ставку (шаг назад)
func (r *repo) DeleteLastBet(ctx context.Context, id string) error {
	query := sq.Delete(betsTable).
		Where(sq.Eq{colSessionID: id}).
		Where(sq.Expr(colHand+" = (SELECT max("+colHand+") FROM "+betsTable+" WHERE "+colSessionID+" = ?)", id)).
		PlaceholderFormat(sq.Dollar)

	_, err := r.exec(ctx, query)
	return err
}

func (r *repo) ClearBets(ctx context.Context, id string) error {
	query := sq.Delete(betsTable).
		Where(sq.Eq{colSessionID: id}).
		PlaceholderFormat(sq.Dollar)

	_, err := r.exec(ctx, query)
	return err
}

// CountBets - количество сыгранных рук, столько же рук проигрывается при восстановлении
func (r *repo) CountBets(ctx context.Context, id string) (int, error) {
	query := sq.Select("count(*)").
		From(betsTable).
		Where(sq.Eq{colSessionID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
