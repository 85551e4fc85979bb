package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Labouchere bets the sum of the first and last numbers of a working list.
// A win crosses both off, a loss appends the lost stake. When the list is
// cleared the cycle starts over from the original list.
type Labouchere struct {
	ledger
	original []decimal.Decimal
	list     []decimal.Decimal
}

// NewLabouchere builds the progression from a list of positive amounts.
// The base unit is the smallest entry.
func NewLabouchere(sequence []int64, limits Limits) (*Labouchere, error) {
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}

	original := make([]decimal.Decimal, 0, len(sequence))
	minimum := sequence[0]
	for _, v := range sequence {
		if v <= 0 {
			return nil, ErrInvalidSequence
		}
		minimum = min(minimum, v)
		original = append(original, decimal.NewFromInt(v))
	}

	s := &Labouchere{
		ledger:   newLedger("Labouchere", model.StrategyLabouchere, decimal.NewFromInt(minimum), limits),
		original: original,
	}
	s.list = s.copyOriginal()
	return s, nil
}

func (s *Labouchere) copyOriginal() []decimal.Decimal {
	list := make([]decimal.Decimal, len(s.original))
	copy(list, s.original)
	return list
}

func (s *Labouchere) NextBet() decimal.Decimal {
	switch len(s.list) {
	case 0:
		return s.baseUnit
	case 1:
		return s.list[0]
	default:
		return s.list[0].Add(s.list[len(s.list)-1])
	}
}

func (s *Labouchere) ProcessResult(r model.BetResult) {
	switch s.record(r) {
	case settledWin:
		if len(s.list) >= 2 {
			s.list = s.list[1 : len(s.list)-1]
		} else {
			s.list = s.list[:0]
		}
		if len(s.list) == 0 {
			s.list = s.copyOriginal()
		}
	case settledLoss:
		s.list = append(s.list, r.Amount)
	}
	s.settle(s.NextBet())
}

func (s *Labouchere) Reset() {
	s.list = s.copyOriginal()
	s.resetLedger()
}

func (s *Labouchere) State() model.StrategyState {
	sequence := make([]decimal.Decimal, len(s.list))
	copy(sequence, s.list)
	return s.snapshot(s.NextBet(), sequence)
}
