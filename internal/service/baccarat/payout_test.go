package baccarat

import (
	"baccarat_backend/internal/model"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPayout(t *testing.T) {
	tests := []struct {
		bet     model.BetType
		amount  int64
		outcome model.HandResult
		want    string
	}{
		{model.BetBanker, 100, model.ResultBanker, "95"},
		{model.BetPlayer, 100, model.ResultPlayer, "100"},
		{model.BetTie, 50, model.ResultTie, "400"},
		{model.BetBanker, 100, model.ResultTie, "0"},
		{model.BetPlayer, 100, model.ResultTie, "0"},
		{model.BetPlayer, 100, model.ResultBanker, "-100"},
		{model.BetBanker, 100, model.ResultPlayer, "-100"},
		{model.BetTie, 100, model.ResultPlayer, "-100"},
		{model.BetBanker, 25, model.ResultBanker, "23.75"},
	}

	for _, tt := range tests {
		got := Payout(tt.bet, decimal.NewFromInt(tt.amount), tt.outcome)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("Payout(%s, %d, %s) = %s, want %s", tt.bet, tt.amount, tt.outcome, got, tt.want)
		}
	}
}

func TestTheoreticalLoss(t *testing.T) {
	got := TheoreticalLoss(model.BetBanker, decimal.NewFromInt(1000))
	if !got.Equal(decimal.RequireFromString("10.6")) {
		t.Errorf("expected 10.6, got %s", got)
	}
}
