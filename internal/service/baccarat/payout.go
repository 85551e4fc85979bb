package baccarat

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

var (
	tieOdds          = decimal.NewFromInt(8)
	bankerCommission = decimal.RequireFromString("0.95")
	hundred          = decimal.NewFromInt(100)
)

// HouseEdge per bet type, in percent.
var HouseEdge = map[model.BetType]decimal.Decimal{
	model.BetBanker: decimal.RequireFromString("1.06"),
	model.BetPlayer: decimal.RequireFromString("1.24"),
	model.BetTie:    decimal.RequireFromString("14.36"),
}

// Probabilities of each outcome for an 8-deck shoe, in percent.
var Probabilities = map[model.HandResult]float64{
	model.ResultBanker: 45.86,
	model.ResultPlayer: 44.62,
	model.ResultTie:    9.52,
}

// Payout returns the signed net result of a bet: the gain on a win, zero on a
// push (tie with a player/banker bet) and minus the stake otherwise.
func Payout(betType model.BetType, amount decimal.Decimal, outcome model.HandResult) decimal.Decimal {
	if betType.Matches(outcome) {
		switch outcome {
		case model.ResultTie:
			return amount.Mul(tieOdds)
		case model.ResultBanker:
			return amount.Mul(bankerCommission)
		default:
			return amount
		}
	}
	if outcome == model.ResultTie {
		return decimal.Zero
	}
	return amount.Neg()
}

// TheoreticalLoss is the expected long-run loss on the wagered volume.
func TheoreticalLoss(betType model.BetType, wagered decimal.Decimal) decimal.Decimal {
	return wagered.Mul(HouseEdge[betType]).Div(hundred)
}
