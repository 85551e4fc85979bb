package service

import (
	"baccarat_backend/internal/model"
	repoModel "baccarat_backend/internal/repository/table_stats_repo/model"
	"context"
)

type GameService interface {
	Create(ctx context.Context, settings *model.Settings) (*model.SessionView, error)
	Get(ctx context.Context, id string) (*model.SessionView, error)

	Play(ctx context.Context, id string) (model.PlayResult, *model.SessionView, error)
	StepBack(ctx context.Context, id string) (bool, *model.SessionView, error)
	Reset(ctx context.Context, id string) (*model.SessionView, error)
	NewGame(ctx context.Context, id string, hands int) (*model.SessionView, error)

	ImportShoe(ctx context.Context, id string, data string) (*model.SessionView, error)
	GenerateShoe(ctx context.Context, id string, req model.ShoeRequest) (*model.SessionView, error)
	ExportShoe(ctx context.Context, id string) (string, error)

	// UpdateSettings applies patch onto the current settings under the session lock.
	UpdateSettings(ctx context.Context, id string, patch model.SettingsPatch) (*model.SessionView, error)

	StartAutoPlay(ctx context.Context, id string, speedMs int) (*model.SessionView, error)
	StopAutoPlay(ctx context.Context, id string) (*model.SessionView, error)

	Strategies() []model.StrategyInfo
	TableStats() repoModel.TableState
	Archive(limit int) ([]model.ArchivedSession, error)

	// Shutdown stops every auto-play loop.
	Shutdown()
}

// Publisher receives session updates, e.g. for streaming to clients.
type Publisher interface {
	Publish(sessionID string, view model.SessionView)
}
