package converter

import (
	dto "baccarat_backend/internal/api/dto/session"
	"baccarat_backend/internal/model"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToSettings_MergesOntoBase(t *testing.T) {
	base := model.Settings{
		BetType:            model.BetPlayer,
		StrategyType:       model.StrategyLabouchere,
		BaseUnit:           25,
		TargetProfit:       1500,
		StopLoss:           1000,
		LabouchereSequence: []int64{25, 50},
		InitialBankroll:    6000,
		AutoPlaySpeed:      500,
	}

	if got := ToSettings(base, dto.SettingsRequest{}); got.BaseUnit != 25 || got.StrategyType != model.StrategyLabouchere {
		t.Errorf("empty request changed settings: %+v", got)
	}

	strategy := "martingale"
	unit := int64(10)
	got := ToSettings(base, dto.SettingsRequest{
		StrategyType:       &strategy,
		BaseUnit:           &unit,
		LabouchereSequence: []int64{1, 2, 3},
	})
	if got.StrategyType != model.StrategyMartingale || got.BaseUnit != 10 {
		t.Errorf("request not applied: %+v", got)
	}
	if got.StopLoss != 1000 || got.BetType != model.BetPlayer {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if len(got.LabouchereSequence) != 3 || len(base.LabouchereSequence) != 2 {
		t.Errorf("sequence not replaced or base mutated")
	}
}

func TestToPlayResponse(t *testing.T) {
	view := model.SessionView{
		ID:       "s1",
		Status:   model.StatusPaused,
		Shoe:     []model.HandResult{model.ResultBanker, model.ResultPlayer, model.ResultTie},
		Position: 1,
		ShoeHistory: []model.HandResult{
			model.ResultBanker,
		},
	}
	res := model.PlayResult{
		Played: true,
		Record: model.BetRecord{
			Hand:      1,
			Result:    model.ResultBanker,
			BetType:   model.BetBanker,
			BetAmount: decimal.NewFromInt(100),
			Payout:    decimal.NewFromInt(95),
			Balance:   decimal.NewFromInt(1095),
		},
	}

	out := ToPlayResponse(res, view)
	if out.Record == nil || !out.Record.Payout.Equal(decimal.NewFromInt(95)) {
		t.Fatalf("unexpected record %+v", out.Record)
	}
	if out.Session.Shoe != "BPT" || out.Session.ShoeHistory != "B" || out.Session.ShoeLength != 3 {
		t.Errorf("unexpected shoe fields %+v", out.Session)
	}
	if out.Session.LastHand != nil {
		t.Error("outcome-only shoe should not expose cards")
	}

	if ToPlayResponse(model.PlayResult{Halt: model.HaltBankrupt}, view).Record != nil {
		t.Error("unplayed hand should have no record")
	}
}
