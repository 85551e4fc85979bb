package recorder

import (
	"baccarat_backend/internal/logger"
	"baccarat_backend/internal/model"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder keeps finished sessions in a local SQLite file.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Log.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS finished_sessions (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			session_id     TEXT NOT NULL,
			strategy_type  TEXT,
			bet_type       TEXT,
			hands_played   INTEGER,
			shoe_length    INTEGER,
			wins           INTEGER,
			losses         INTEGER,
			pushes         INTEGER,
			total_wagered  TEXT,
			net_profit     TEXT,
			final_bankroll TEXT,
			max_bet        TEXT,
			halt_reason    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_finished_ts ON finished_sessions(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_finished_strategy ON finished_sessions(strategy_type)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSession(s *model.ArchivedSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO finished_sessions
		(timestamp, session_id, strategy_type, bet_type, hands_played, shoe_length,
		 wins, losses, pushes, total_wagered, net_profit, final_bankroll, max_bet, halt_reason)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), s.ID, string(s.StrategyType), string(s.BetType), s.HandsPlayed, s.ShoeLength,
		s.Wins, s.Losses, s.Pushes,
		s.TotalWagered.String(), s.NetProfit.String(), s.FinalBankroll.String(), s.MaxBet.String(),
		string(s.Halt),
	)
	return err
}

// RecentSessions returns the newest archived sessions first.
func (r *SQLiteRecorder) RecentSessions(limit int) ([]model.ArchivedSession, error) {
	rows, err := r.db.Query(`SELECT session_id, strategy_type, bet_type, hands_played, shoe_length,
		wins, losses, pushes, total_wagered, net_profit, final_bankroll, max_bet, halt_reason
		FROM finished_sessions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ArchivedSession
	for rows.Next() {
		var (
			s                                 model.ArchivedSession
			strategyType, betType, halt       string
			wagered, profit, bankroll, maxBet string
		)
		if err := rows.Scan(&s.ID, &strategyType, &betType, &s.HandsPlayed, &s.ShoeLength,
			&s.Wins, &s.Losses, &s.Pushes, &wagered, &profit, &bankroll, &maxBet, &halt); err != nil {
			return nil, err
		}
		s.StrategyType = model.StrategyType(strategyType)
		s.BetType = model.BetType(betType)
		s.Halt = model.HaltReason(halt)

		for _, f := range []struct {
			dst *decimal.Decimal
			src string
		}{
			{&s.TotalWagered, wagered},
			{&s.NetProfit, profit},
			{&s.FinalBankroll, bankroll},
			{&s.MaxBet, maxBet},
		} {
			v, err := decimal.NewFromString(f.src)
			if err != nil {
				return nil, fmt.Errorf("session %s: %w", s.ID, err)
			}
			*f.dst = v
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
