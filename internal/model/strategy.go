package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy type")
)

type StrategyType string

const (
	StrategyLabouchere     StrategyType = "labouchere"
	StrategyMartingale     StrategyType = "martingale"
	StrategyFibonacci      StrategyType = "fibonacci"
	StrategyParoli         StrategyType = "paroli"
	StrategyOneThreeTwoSix StrategyType = "1-3-2-6"
	StrategyOscarsGrind    StrategyType = "oscars-grind"
	StrategyFlat           StrategyType = "flat"
	StrategyDAlembert      StrategyType = "dalembert"
)

var StrategyTypes = []StrategyType{
	StrategyLabouchere,
	StrategyMartingale,
	StrategyFibonacci,
	StrategyParoli,
	StrategyOneThreeTwoSix,
	StrategyOscarsGrind,
	StrategyFlat,
	StrategyDAlembert,
}

func ParseStrategyType(s string) (StrategyType, error) {
	t := StrategyType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range StrategyTypes {
		if t == known {
			return t, nil
		}
	}
	return "", ErrUnknownStrategy
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// StrategyInfo describes a progression for selection screens.
type StrategyInfo struct {
	Type        StrategyType
	Name        string
	Description string
	Risk        RiskLevel
}

// BetResult is what a strategy learns about a settled bet.
// Payout is the net gain on a win, zero on a push and -Amount on a loss.
type BetResult struct {
	Won    bool
	Amount decimal.Decimal
	Payout decimal.Decimal
}

func (r BetResult) IsPush() bool {
	return !r.Won && r.Payout.IsZero()
}

// StrategyState is a read-only snapshot of a live strategy.
type StrategyState struct {
	Name         string
	Sequence     []decimal.Decimal
	BaseUnit     decimal.Decimal
	CurrentBet   decimal.Decimal
	TotalWagered decimal.Decimal
	TotalWon     decimal.Decimal
	NetProfit    decimal.Decimal
	Wins         int
	Losses       int
	Pushes       int
	MaxBet       decimal.Decimal
	TargetProfit decimal.Decimal
	StopLoss     decimal.Decimal
	IsActive     bool
}
