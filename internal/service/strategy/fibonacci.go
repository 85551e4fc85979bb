package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

var fibonacciSteps = []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}

// Fibonacci walks one step up the sequence on a loss and two steps back on
// a win.
type Fibonacci struct {
	ledger
	index int
}

func NewFibonacci(baseUnit decimal.Decimal, limits Limits) *Fibonacci {
	return &Fibonacci{
		ledger: newLedger("Fibonacci", model.StrategyFibonacci, baseUnit, limits),
	}
}

func (s *Fibonacci) NextBet() decimal.Decimal {
	return units(s.baseUnit, fibonacciSteps[s.index])
}

func (s *Fibonacci) ProcessResult(r model.BetResult) {
	switch s.record(r) {
	case settledWin:
		s.index = max(0, s.index-2)
	case settledLoss:
		s.index = min(s.index+1, len(fibonacciSteps)-1)
	}
	s.settle(s.NextBet())
}

func (s *Fibonacci) Reset() {
	s.index = 0
	s.resetLedger()
}

func (s *Fibonacci) State() model.StrategyState {
	next := s.NextBet()
	return s.snapshot(next, []decimal.Decimal{next})
}
