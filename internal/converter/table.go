package converter

import (
	dto "baccarat_backend/internal/api/dto/table"
	"baccarat_backend/internal/model"
	repoModel "baccarat_backend/internal/repository/table_stats_repo/model"
)

func ToStrategyInfos(infos []model.StrategyInfo) []dto.StrategyInfo {
	out := make([]dto.StrategyInfo, len(infos))
	for i, info := range infos {
		out[i] = dto.StrategyInfo{
			Type:        string(info.Type),
			Name:        info.Name,
			Description: info.Description,
			Risk:        string(info.Risk),
		}
	}
	return out
}

func ToTableStatsResponse(s repoModel.TableState) dto.StatsResponse {
	return dto.StatsResponse{
		TotalHands:   s.TotalHands,
		TotalWagered: s.TotalWagered,
		TotalPayout:  s.TotalPayout,
		BankerWins:   s.BankerWins,
		PlayerWins:   s.PlayerWins,
		Ties:         s.Ties,
		CurrentRTP:   s.CurrentRTP,
		WindowRTP:    s.WindowRTP,
		WindowSize:   s.WindowSize,
		WindowHands:  len(s.HandWindow),
	}
}

func ToArchivedSessions(sessions []model.ArchivedSession) []dto.ArchivedSession {
	out := make([]dto.ArchivedSession, len(sessions))
	for i, a := range sessions {
		out[i] = dto.ArchivedSession{
			SessionID:     a.ID,
			StrategyType:  string(a.StrategyType),
			BetType:       string(a.BetType),
			HandsPlayed:   a.HandsPlayed,
			ShoeLength:    a.ShoeLength,
			Wins:          a.Wins,
			Losses:        a.Losses,
			Pushes:        a.Pushes,
			TotalWagered:  a.TotalWagered,
			NetProfit:     a.NetProfit,
			FinalBankroll: a.FinalBankroll,
			MaxBet:        a.MaxBet,
			Halt:          string(a.Halt),
		}
	}
	return out
}
