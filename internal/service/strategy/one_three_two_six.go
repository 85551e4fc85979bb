package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

var oneThreeTwoSixSteps = []int{1, 3, 2, 6}

// OneThreeTwoSix advances through 1-3-2-6 units on wins and restarts on a
// loss or after the fourth win.
type OneThreeTwoSix struct {
	ledger
	step int
}

func NewOneThreeTwoSix(baseUnit decimal.Decimal, limits Limits) *OneThreeTwoSix {
	return &OneThreeTwoSix{
		ledger: newLedger("1-3-2-6", model.StrategyOneThreeTwoSix, baseUnit, limits),
	}
}

func (s *OneThreeTwoSix) NextBet() decimal.Decimal {
	return units(s.baseUnit, oneThreeTwoSixSteps[s.step])
}

func (s *OneThreeTwoSix) ProcessResult(r model.BetResult) {
	switch s.record(r) {
	case settledWin:
		s.step = (s.step + 1) % len(oneThreeTwoSixSteps)
	case settledLoss:
		s.step = 0
	}
	s.settle(s.NextBet())
}

func (s *OneThreeTwoSix) Reset() {
	s.step = 0
	s.resetLedger()
}

func (s *OneThreeTwoSix) State() model.StrategyState {
	next := s.NextBet()
	return s.snapshot(next, []decimal.Decimal{next})
}
