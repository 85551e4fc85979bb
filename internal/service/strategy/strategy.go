package strategy

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Strategy is a stateful betting progression. Only the variants in this
// package implement it.
type Strategy interface {
	Name() string
	Type() model.StrategyType
	// NextBet is the stake for the coming hand. It keeps returning the last
	// value after the strategy went inactive.
	NextBet() decimal.Decimal
	ProcessResult(result model.BetResult)
	Reset()
	// CheckLimits deactivates the strategy once net profit reaches the target
	// or the loss reaches the stop loss, and reports whether it may still bet.
	CheckLimits() bool
	IsActive() bool
	// Deactivate stops the strategy without a limit being hit, e.g. when the
	// bankroll cannot cover the next bet.
	Deactivate()
	State() model.StrategyState

	sealed()
}

type settlement int

const (
	settledWin settlement = iota
	settledLoss
	settledPush
)

// ledger is the bookkeeping shared by every progression.
type ledger struct {
	name         string
	typ          model.StrategyType
	baseUnit     decimal.Decimal
	targetProfit decimal.Decimal
	stopLoss     decimal.Decimal

	totalWagered decimal.Decimal
	totalWon     decimal.Decimal
	wins         int
	losses       int
	pushes       int
	maxBet       decimal.Decimal
	active       bool
}

func newLedger(name string, typ model.StrategyType, baseUnit decimal.Decimal, limits Limits) ledger {
	return ledger{
		name:         name,
		typ:          typ,
		baseUnit:     baseUnit,
		targetProfit: limits.TargetProfit,
		stopLoss:     limits.StopLoss,
		active:       true,
	}
}

func (l *ledger) sealed() {}

func (l *ledger) Name() string { return l.name }

func (l *ledger) Type() model.StrategyType { return l.typ }

func (l *ledger) IsActive() bool { return l.active }

func (l *ledger) Deactivate() { l.active = false }

func (l *ledger) netProfit() decimal.Decimal {
	return l.totalWon.Sub(l.totalWagered)
}

func (l *ledger) CheckLimits() bool {
	net := l.netProfit()
	if net.GreaterThanOrEqual(l.targetProfit) || net.LessThanOrEqual(l.stopLoss.Neg()) {
		l.active = false
	}
	return l.active
}

// record books a settled bet and tells the caller which way it went.
func (l *ledger) record(r model.BetResult) settlement {
	l.totalWagered = l.totalWagered.Add(r.Amount)
	l.maxBet = decimal.Max(l.maxBet, r.Amount)

	switch {
	case r.Won:
		l.wins++
		l.totalWon = l.totalWon.Add(r.Amount).Add(r.Payout)
		return settledWin
	case r.IsPush():
		l.pushes++
		l.totalWon = l.totalWon.Add(r.Amount)
		return settledPush
	default:
		l.losses++
		return settledLoss
	}
}

// settle finishes ProcessResult once the progression moved to its next bet.
func (l *ledger) settle(next decimal.Decimal) {
	l.maxBet = decimal.Max(l.maxBet, next)
	l.CheckLimits()
}

func (l *ledger) resetLedger() {
	l.totalWagered = decimal.Zero
	l.totalWon = decimal.Zero
	l.wins, l.losses, l.pushes = 0, 0, 0
	l.maxBet = decimal.Zero
	l.active = true
}

func (l *ledger) snapshot(next decimal.Decimal, sequence []decimal.Decimal) model.StrategyState {
	return model.StrategyState{
		Name:         l.name,
		Sequence:     sequence,
		BaseUnit:     l.baseUnit,
		CurrentBet:   next,
		TotalWagered: l.totalWagered,
		TotalWon:     l.totalWon,
		NetProfit:    l.netProfit(),
		Wins:         l.wins,
		Losses:       l.losses,
		Pushes:       l.pushes,
		MaxBet:       l.maxBet,
		TargetProfit: l.targetProfit,
		StopLoss:     l.stopLoss,
		IsActive:     l.active,
	}
}

func units(base decimal.Decimal, n int) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(int64(n)))
}
