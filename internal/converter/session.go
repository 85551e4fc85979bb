package converter

import (
	dto "baccarat_backend/internal/api/dto/session"
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/service/baccarat"
	"slices"
)

// ToSettingsPatch переводит частичный запрос настроек в модель
func ToSettingsPatch(req dto.SettingsRequest) model.SettingsPatch {
	patch := model.SettingsPatch{
		BaseUnit:           req.BaseUnit,
		TargetProfit:       req.TargetProfit,
		StopLoss:           req.StopLoss,
		LabouchereSequence: slices.Clone(req.LabouchereSequence),
		InitialBankroll:    req.InitialBankroll,
		AutoPlaySpeed:      req.AutoPlaySpeed,
	}
	if req.BetType != nil {
		bt := model.BetType(*req.BetType)
		patch.BetType = &bt
	}
	if req.StrategyType != nil {
		st := model.StrategyType(*req.StrategyType)
		patch.StrategyType = &st
	}
	return patch
}

// ToSettings накладывает запрос на базовые настройки. Пустой запрос возвращает base
func ToSettings(base model.Settings, req dto.SettingsRequest) model.Settings {
	return ToSettingsPatch(req).Apply(base)
}

func ToShoeRequest(req dto.GenerateShoeRequest) model.ShoeRequest {
	return model.ShoeRequest{
		Hands:  req.Hands,
		Source: model.ShoeSource(req.Source),
		Decks:  req.Decks,
	}
}

func ToSettingsDTO(s model.Settings) dto.Settings {
	return dto.Settings{
		BetType:            string(s.BetType),
		StrategyType:       string(s.StrategyType),
		BaseUnit:           s.BaseUnit,
		TargetProfit:       s.TargetProfit,
		StopLoss:           s.StopLoss,
		LabouchereSequence: slices.Clone(s.LabouchereSequence),
		InitialBankroll:    s.InitialBankroll,
		AutoPlaySpeed:      s.AutoPlaySpeed,
	}
}

func ToSessionResponse(v model.SessionView) dto.SessionResponse {
	resp := dto.SessionResponse{
		SessionID:       v.ID,
		Status:          string(v.Status),
		HaltReason:      string(v.HaltReason),
		Settings:        ToSettingsDTO(v.Settings),
		Bankroll:        v.Bankroll,
		InitialBankroll: v.InitialBankroll,
		Stats:           toStats(v.Stats),
		Strategy:        toStrategyState(v.Strategy),
		Shoe:            baccarat.FormatOutcomes(v.Shoe),
		ShoeHistory:     baccarat.FormatOutcomes(v.ShoeHistory),
		Position:        v.Position,
		ShoeLength:      len(v.Shoe),
		AutoPlaying:     v.AutoPlaying,
		AutoPlaySpeed:   v.AutoPlaySpeed,
		Summary: dto.Summary{
			Profit:          v.Summary.Profit,
			WinRate:         v.Summary.WinRate,
			BankerPercent:   v.Summary.BankerPercent,
			PlayerPercent:   v.Summary.PlayerPercent,
			TiePercent:      v.Summary.TiePercent,
			HouseEdge:       v.Summary.HouseEdge,
			TheoreticalLoss: v.Summary.TheoreticalLoss,
		},
	}
	if v.LastHand != nil {
		hand := toGameResult(*v.LastHand)
		resp.LastHand = &hand
	}
	return resp
}

func ToPlayResponse(res model.PlayResult, v model.SessionView) dto.PlayResponse {
	out := dto.PlayResponse{
		Played:  res.Played,
		Halt:    string(res.Halt),
		Session: ToSessionResponse(v),
	}
	if res.Played {
		rec := toBetRecord(res.Record)
		out.Record = &rec
	}
	return out
}

func toStats(s model.SessionStats) dto.Stats {
	history := make([]dto.BetRecord, len(s.BetHistory))
	for i, r := range s.BetHistory {
		history[i] = toBetRecord(r)
	}
	return dto.Stats{
		HandsPlayed: s.HandsPlayed,
		BankerWins:  s.BankerWins,
		PlayerWins:  s.PlayerWins,
		Ties:        s.Ties,
		CurrentStreak: dto.Streak{
			Type:  string(s.CurrentStreak.Type),
			Count: s.CurrentStreak.Count,
		},
		LongestBankerStreak: s.LongestBankerStreak,
		LongestPlayerStreak: s.LongestPlayerStreak,
		LongestTieStreak:    s.LongestTieStreak,
		BetHistory:          history,
	}
}

func toBetRecord(r model.BetRecord) dto.BetRecord {
	return dto.BetRecord{
		Hand:      r.Hand,
		Result:    string(r.Result),
		BetType:   string(r.BetType),
		BetAmount: r.BetAmount,
		Payout:    r.Payout,
		Balance:   r.Balance,
	}
}

func toStrategyState(s model.StrategyState) dto.StrategyState {
	return dto.StrategyState{
		Name:         s.Name,
		Sequence:     slices.Clone(s.Sequence),
		BaseUnit:     s.BaseUnit,
		CurrentBet:   s.CurrentBet,
		TotalWagered: s.TotalWagered,
		TotalWon:     s.TotalWon,
		NetProfit:    s.NetProfit,
		Wins:         s.Wins,
		Losses:       s.Losses,
		Pushes:       s.Pushes,
		MaxBet:       s.MaxBet,
		TargetProfit: s.TargetProfit,
		StopLoss:     s.StopLoss,
		IsActive:     s.IsActive,
	}
}

func toGameResult(g model.GameResult) dto.GameResult {
	out := dto.GameResult{
		PlayerHand: toHand(g.PlayerHand),
		BankerHand: toHand(g.BankerHand),
		Winner:     string(g.Winner),
	}
	if g.PlayerThirdCard != nil {
		c := toCard(*g.PlayerThirdCard)
		out.PlayerThirdCard = &c
	}
	if g.BankerThirdCard != nil {
		c := toCard(*g.BankerThirdCard)
		out.BankerThirdCard = &c
	}
	return out
}

func toHand(h model.Hand) dto.Hand {
	cards := make([]dto.Card, len(h.Cards))
	for i, c := range h.Cards {
		cards[i] = toCard(c)
	}
	return dto.Hand{Cards: cards, Total: h.Total, Natural: h.Natural}
}

func toCard(c model.Card) dto.Card {
	return dto.Card{
		Suit:  string(c.Suit),
		Rank:  string(c.Rank),
		Value: c.Value,
		Label: c.String(),
	}
}
