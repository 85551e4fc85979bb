package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Flat bets the base unit every hand.
type Flat struct {
	ledger
}

func NewFlat(baseUnit decimal.Decimal, limits Limits) *Flat {
	return &Flat{
		ledger: newLedger("Flat Betting", model.StrategyFlat, baseUnit, limits),
	}
}

func (s *Flat) NextBet() decimal.Decimal {
	return s.baseUnit
}

func (s *Flat) ProcessResult(r model.BetResult) {
	s.record(r)
	s.settle(s.NextBet())
}

func (s *Flat) Reset() {
	s.resetLedger()
}

func (s *Flat) State() model.StrategyState {
	return s.snapshot(s.baseUnit, []decimal.Decimal{s.baseUnit})
}
