package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Martingale doubles the stake after each loss up to a multiplier cap and
// returns to the base unit after a win.
type Martingale struct {
	ledger
	multiplier    int
	maxMultiplier int
}

func NewMartingale(baseUnit decimal.Decimal, maxMultiplier int, limits Limits) *Martingale {
	return &Martingale{
		ledger:        newLedger("Martingale", model.StrategyMartingale, baseUnit, limits),
		multiplier:    1,
		maxMultiplier: maxMultiplier,
	}
}

func (s *Martingale) NextBet() decimal.Decimal {
	return units(s.baseUnit, s.multiplier)
}

func (s *Martingale) ProcessResult(r model.BetResult) {
	switch s.record(r) {
	case settledWin:
		s.multiplier = 1
	case settledLoss:
		s.multiplier = min(s.multiplier*2, s.maxMultiplier)
	}
	s.settle(s.NextBet())
}

func (s *Martingale) Reset() {
	s.multiplier = 1
	s.resetLedger()
}

func (s *Martingale) State() model.StrategyState {
	next := s.NextBet()
	return s.snapshot(next, []decimal.Decimal{next})
}
