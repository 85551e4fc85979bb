package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

// DAlembert adds a unit after a loss and removes one after a win, never
// going below one unit.
type DAlembert struct {
	ledger
	units int
}

func NewDAlembert(baseUnit decimal.Decimal, limits Limits) *DAlembert {
	return &DAlembert{
		ledger: newLedger("D'Alembert", model.StrategyDAlembert, baseUnit, limits),
		units:  1,
	}
}

func (s *DAlembert) NextBet() decimal.Decimal {
	return units(s.baseUnit, s.units)
}

func (s *DAlembert) ProcessResult(r model.BetResult) {
	switch s.record(r) {
	case settledWin:
		s.units = max(1, s.units-1)
	case settledLoss:
		s.units++
	}
	s.settle(s.NextBet())
}

func (s *DAlembert) Reset() {
	s.units = 1
	s.resetLedger()
}

func (s *DAlembert) State() model.StrategyState {
	next := s.NextBet()
	return s.snapshot(next, []decimal.Decimal{next})
}
