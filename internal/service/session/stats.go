package session

import (
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/service/baccarat"

	"github.com/shopspring/decimal"
)

// tally adds one outcome to the running counters and streaks.
func tally(stats *model.SessionStats, result model.HandResult) {
	stats.HandsPlayed++

	if stats.CurrentStreak.Type == result {
		stats.CurrentStreak.Count++
	} else {
		stats.CurrentStreak = model.Streak{Type: result, Count: 1}
	}

	switch result {
	case model.ResultBanker:
		stats.BankerWins++
		stats.LongestBankerStreak = max(stats.LongestBankerStreak, stats.CurrentStreak.Count)
	case model.ResultPlayer:
		stats.PlayerWins++
		stats.LongestPlayerStreak = max(stats.LongestPlayerStreak, stats.CurrentStreak.Count)
	case model.ResultTie:
		stats.Ties++
		stats.LongestTieStreak = max(stats.LongestTieStreak, stats.CurrentStreak.Count)
	}
}

// rebuildStats recomputes counters and streaks from a ledger.
func rebuildStats(records []model.BetRecord) model.SessionStats {
	stats := model.SessionStats{BetHistory: records}
	for _, rec := range records {
		tally(&stats, rec.Result)
	}
	return stats
}

// betResult converts a table payout into what the strategy is told.
func betResult(amount, payout decimal.Decimal) model.BetResult {
	won := payout.IsPositive()
	reported := payout
	if !won && !payout.IsZero() {
		reported = amount.Neg()
	}
	return model.BetResult{Won: won, Amount: amount, Payout: reported}
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func summarize(v *model.SessionView) model.SessionSummary {
	hands := v.Stats.HandsPlayed
	return model.SessionSummary{
		Profit:          v.Bankroll.Sub(v.InitialBankroll),
		WinRate:         percent(v.Strategy.Wins, hands),
		BankerPercent:   percent(v.Stats.BankerWins, hands),
		PlayerPercent:   percent(v.Stats.PlayerWins, hands),
		TiePercent:      percent(v.Stats.Ties, hands),
		HouseEdge:       baccarat.HouseEdge[v.BetType],
		TheoreticalLoss: baccarat.TheoreticalLoss(v.BetType, v.Strategy.TotalWagered),
	}
}
