package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Paroli doubles after each win and drops back to the base unit after a
// loss or once the win streak reaches its maximum.
type Paroli struct {
	ledger
	streak    int
	maxStreak int
}

func NewParoli(baseUnit decimal.Decimal, maxStreak int, limits Limits) *Paroli {
	return &Paroli{
		ledger:    newLedger("Paroli", model.StrategyParoli, baseUnit, limits),
		maxStreak: maxStreak,
	}
}

func (s *Paroli) NextBet() decimal.Decimal {
	return units(s.baseUnit, 1<<s.streak)
}

func (s *Paroli) ProcessResult(r model.BetResult) {
	switch s.record(r) {
	case settledWin:
		s.streak++
		if s.streak >= s.maxStreak {
			s.streak = 0
		}
	case settledLoss:
		s.streak = 0
	}
	s.settle(s.NextBet())
}

func (s *Paroli) Reset() {
	s.streak = 0
	s.resetLedger()
}

func (s *Paroli) State() model.StrategyState {
	next := s.NextBet()
	return s.snapshot(next, []decimal.Decimal{next})
}
