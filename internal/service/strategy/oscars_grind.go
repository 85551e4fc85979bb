package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

// OscarsGrind raises the stake one unit after a win until the current
// series shows a profit of one base unit, then starts a new series.
type OscarsGrind struct {
	ledger
	units        int
	seriesProfit decimal.Decimal
}

func NewOscarsGrind(baseUnit decimal.Decimal, limits Limits) *OscarsGrind {
	return &OscarsGrind{
		ledger: newLedger("Oscar's Grind", model.StrategyOscarsGrind, baseUnit, limits),
		units:  1,
	}
}

func (s *OscarsGrind) NextBet() decimal.Decimal {
	return units(s.baseUnit, s.units)
}

func (s *OscarsGrind) ProcessResult(r model.BetResult) {
	switch s.record(r) {
	case settledWin:
		s.seriesProfit = s.seriesProfit.Add(r.Payout)
		if s.seriesProfit.LessThan(s.baseUnit) {
			s.units++
		} else {
			s.seriesProfit = decimal.Zero
			s.units = 1
		}
	case settledLoss:
		s.seriesProfit = s.seriesProfit.Sub(r.Amount)
	}
	s.settle(s.NextBet())
}

func (s *OscarsGrind) Reset() {
	s.units = 1
	s.seriesProfit = decimal.Zero
	s.resetLedger()
}

func (s *OscarsGrind) State() model.StrategyState {
	next := s.NextBet()
	return s.snapshot(next, []decimal.Decimal{next})
}
