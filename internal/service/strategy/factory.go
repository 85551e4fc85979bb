package strategy

import (
	"baccarat_backend/internal/model"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	DefaultMaxMultiplier = 64
	DefaultMaxWinStreak  = 3

	// Upper bounds keep the doubling progressions inside int range.
	MaxMultiplierLimit = 1 << 30
	MaxWinStreakLimit  = 30
)

// DefaultLabouchereSequence is used when no list is configured.
var DefaultLabouchereSequence = []int64{25, 50, 25, 50}

var (
	ErrInvalidBaseUnit     = errors.New("base unit must be positive")
	ErrInvalidTargetProfit = errors.New("target profit must be positive")
	ErrInvalidStopLoss     = errors.New("stop loss must be positive")
	ErrEmptySequence       = errors.New("labouchere sequence is empty")
	ErrInvalidSequence     = errors.New("labouchere sequence entries must be positive")
	ErrInvalidMultiplier   = fmt.Errorf("martingale max multiplier must not exceed %d", MaxMultiplierLimit)
	ErrInvalidWinStreak    = fmt.Errorf("paroli max streak must not exceed %d", MaxWinStreakLimit)
)

// Limits ends a session once net profit reaches TargetProfit or net loss
// reaches StopLoss.
type Limits struct {
	TargetProfit decimal.Decimal
	StopLoss     decimal.Decimal
}

type Params struct {
	Type         model.StrategyType
	BaseUnit     int64
	TargetProfit int64
	StopLoss     int64
	// Sequence is only read by Labouchere. Empty means DefaultLabouchereSequence.
	Sequence      []int64
	MaxMultiplier int
	MaxWinStreak  int
}

// New validates params and builds a fresh strategy.
func New(p Params) (Strategy, error) {
	if p.TargetProfit <= 0 {
		return nil, ErrInvalidTargetProfit
	}
	if p.StopLoss <= 0 {
		return nil, ErrInvalidStopLoss
	}
	limits := Limits{
		TargetProfit: decimal.NewFromInt(p.TargetProfit),
		StopLoss:     decimal.NewFromInt(p.StopLoss),
	}

	if p.Type == model.StrategyLabouchere {
		sequence := p.Sequence
		if len(sequence) == 0 {
			sequence = DefaultLabouchereSequence
		}
		s, err := NewLabouchere(sequence, limits)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	if p.BaseUnit <= 0 {
		return nil, ErrInvalidBaseUnit
	}
	base := decimal.NewFromInt(p.BaseUnit)

	switch p.Type {
	case model.StrategyMartingale:
		maxMultiplier := p.MaxMultiplier
		if maxMultiplier <= 0 {
			maxMultiplier = DefaultMaxMultiplier
		}
		if maxMultiplier > MaxMultiplierLimit {
			return nil, ErrInvalidMultiplier
		}
		return NewMartingale(base, maxMultiplier, limits), nil
	case model.StrategyFibonacci:
		return NewFibonacci(base, limits), nil
	case model.StrategyParoli:
		maxStreak := p.MaxWinStreak
		if maxStreak <= 0 {
			maxStreak = DefaultMaxWinStreak
		}
		if maxStreak > MaxWinStreakLimit {
			return nil, ErrInvalidWinStreak
		}
		return NewParoli(base, maxStreak, limits), nil
	case model.StrategyOneThreeTwoSix:
		return NewOneThreeTwoSix(base, limits), nil
	case model.StrategyOscarsGrind:
		return NewOscarsGrind(base, limits), nil
	case model.StrategyFlat:
		return NewFlat(base, limits), nil
	case model.StrategyDAlembert:
		return NewDAlembert(base, limits), nil
	}

	return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, p.Type)
}
