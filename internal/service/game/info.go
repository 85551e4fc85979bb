package game

import (
	"baccarat_backend/internal/model"
	repoModel "baccarat_backend/internal/repository/table_stats_repo/model"
	"baccarat_backend/internal/service/strategy"
)

const maxArchiveLimit = 100

func (s *serv) Strategies() []model.StrategyInfo {
	return strategy.Catalogue()
}

func (s *serv) TableStats() repoModel.TableState {
	return s.statsRepo.TableState()
}

// Archive returns the most recently finished sessions.
func (s *serv) Archive(limit int) ([]model.ArchivedSession, error) {
	if limit <= 0 || limit > maxArchiveLimit {
		limit = maxArchiveLimit
	}
	return s.recorder.RecentSessions(limit)
}
