package game

import (
	"baccarat_backend/internal/logger"
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/monitoring"
	"baccarat_backend/internal/service"
	"baccarat_backend/internal/service/session"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Create Создать новую сессию со случайным шу. nil settings - настройки по умолчанию
func (s *serv) Create(ctx context.Context, settings *model.Settings) (*model.SessionView, error) {
	cfg := s.rules.Defaults
	if settings != nil {
		cfg = *settings
	}

	id := s.newID()
	sess, err := session.New(id, cfg, s.rules, s.newRand())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidSettings, err)
	}
	sess.NewGame(0)

	// Сессия и настройки сохраняются в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.sessionRepo.CreateSession(txCtx, id, sess.ExportShoe()); err != nil {
			return err
		}
		return s.settingsRepo.SaveSettings(txCtx, id, sess.Settings())
	})
	if err != nil {
		logger.Log.Error("create session", zap.String("session_id", id), zap.Error(err))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.mtx.Lock()
	s.sessions[id] = &hosted{sess: sess}
	monitoring.ActiveSessions.Set(float64(len(s.sessions)))
	s.mtx.Unlock()

	logger.Log.Info("session created",
		zap.String("session_id", id),
		zap.String("strategy", string(sess.Settings().StrategyType)))

	view := sess.View()
	return &view, nil
}

func (s *serv) Get(ctx context.Context, id string) (*model.SessionView, error) {
	var view model.SessionView
	err := s.with(ctx, id, func(h *hosted) error {
		view = h.sess.View()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Play Сыграть следующую руку
func (s *serv) Play(ctx context.Context, id string) (model.PlayResult, *model.SessionView, error) {
	var (
		res  model.PlayResult
		view model.SessionView
	)
	err := s.with(ctx, id, func(h *hosted) error {
		r, err := s.playLocked(ctx, id, h)
		if err != nil {
			return err
		}
		res = r
		view = h.sess.View()
		return nil
	})
	if err != nil {
		return model.PlayResult{}, nil, err
	}

	s.publish(id, view)
	return res, &view, nil
}

func (s *serv) playLocked(ctx context.Context, id string, h *hosted) (model.PlayResult, error) {
	res := h.sess.PlayNextHand()

	if res.Played {
		rec := res.Record
		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			return s.sessionRepo.AppendBet(txCtx, id, rec)
		})
		if err != nil {
			s.evictLocked(id, h)
			logger.Log.Error("persist hand", zap.String("session_id", id), zap.Int("hand", rec.Hand), zap.Error(err))
			return model.PlayResult{}, fmt.Errorf("persist hand: %w", err)
		}

		s.statsRepo.RecordHand(rec.BetType, rec.Result, rec.BetAmount, rec.Payout)
		monitoring.HandsPlayed.WithLabelValues(string(rec.BetType), string(rec.Result)).Inc()
	}

	if res.Halt != model.HaltNone {
		s.archiveLocked(h)
	}
	return res, nil
}

// StepBack Отменить последнюю руку
func (s *serv) StepBack(ctx context.Context, id string) (bool, *model.SessionView, error) {
	var (
		stepped bool
		view    model.SessionView
	)
	err := s.with(ctx, id, func(h *hosted) error {
		rec, ok := h.sess.LastRecord()
		if !ok || !h.sess.StepBack() {
			view = h.sess.View()
			return nil
		}

		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			return s.sessionRepo.DeleteLastBet(txCtx, id)
		})
		if err != nil {
			s.evictLocked(id, h)
			return fmt.Errorf("delete last bet: %w", err)
		}

		s.statsRepo.RevertHand(rec.BetType, rec.Result, rec.BetAmount, rec.Payout)
		monitoring.StepBacks.Inc()
		h.archived = false

		stepped = true
		view = h.sess.View()
		return nil
	})
	if err != nil {
		return false, nil, err
	}

	s.publish(id, view)
	return stepped, &view, nil
}

// Reset Начать текущее шу заново
func (s *serv) Reset(ctx context.Context, id string) (*model.SessionView, error) {
	return s.mutate(ctx, id, func(ctx context.Context, h *hosted) error {
		h.sess.ResetSession()
		return s.txManager.Do(ctx, func(txCtx context.Context) error {
			return s.sessionRepo.ClearBets(txCtx, id)
		})
	})
}

// NewGame Новое случайное шу
func (s *serv) NewGame(ctx context.Context, id string, hands int) (*model.SessionView, error) {
	return s.mutate(ctx, id, func(ctx context.Context, h *hosted) error {
		h.sess.NewGame(hands)
		return s.saveShoe(ctx, id, h)
	})
}

func (s *serv) ImportShoe(ctx context.Context, id string, data string) (*model.SessionView, error) {
	return s.mutate(ctx, id, func(ctx context.Context, h *hosted) error {
		n := h.sess.ImportShoe(data)
		logger.Log.Info("shoe imported", zap.String("session_id", id), zap.Int("hands", n))
		return s.saveShoe(ctx, id, h)
	})
}

func (s *serv) GenerateShoe(ctx context.Context, id string, req model.ShoeRequest) (*model.SessionView, error) {
	switch req.Source {
	case "", model.ShoeRandom, model.ShoeCards:
	default:
		return nil, fmt.Errorf("%w: unknown shoe source %q", service.ErrInvalidSettings, req.Source)
	}

	return s.mutate(ctx, id, func(ctx context.Context, h *hosted) error {
		if req.Source == model.ShoeCards {
			h.sess.GenerateCardShoe(req.Hands, req.Decks)
		} else {
			h.sess.GenerateShoe(req.Hands)
		}
		return s.saveShoe(ctx, id, h)
	})
}

func (s *serv) ExportShoe(ctx context.Context, id string) (string, error) {
	var shoe string
	err := s.with(ctx, id, func(h *hosted) error {
		shoe = h.sess.ExportShoe()
		return nil
	})
	return shoe, err
}

// UpdateSettings Применить частичные настройки поверх текущих. Стратегия пересоздается, сессия начинается заново
func (s *serv) UpdateSettings(ctx context.Context, id string, patch model.SettingsPatch) (*model.SessionView, error) {
	return s.mutate(ctx, id, func(ctx context.Context, h *hosted) error {
		if err := h.sess.Configure(patch.Apply(h.sess.Settings())); err != nil {
			return fmt.Errorf("%w: %w", service.ErrInvalidSettings, err)
		}
		return s.txManager.Do(ctx, func(txCtx context.Context) error {
			if err := s.settingsRepo.SaveSettings(txCtx, id, h.sess.Settings()); err != nil {
				return err
			}
			return s.sessionRepo.ClearBets(txCtx, id)
		})
	})
}

func (s *serv) saveShoe(ctx context.Context, id string, h *hosted) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.sessionRepo.UpdateShoe(txCtx, id, h.sess.ExportShoe())
	})
}

// mutate - общий путь для операций, которые начинают сессию заново:
// останавливаем автоигру, архивируем сыгранное, применяем fn.
// Ошибка настроек оставляет сессию как есть, ошибка БД выгружает ее из памяти
func (s *serv) mutate(ctx context.Context, id string, fn func(ctx context.Context, h *hosted) error) (*model.SessionView, error) {
	var view model.SessionView
	err := s.with(ctx, id, func(h *hosted) error {
		s.stopRunLocked(h)
		h.sess.StopAutoPlay()

		finished := h.sess.Archive()
		unarchived := !h.archived && h.sess.HandsPlayed() > 0

		if err := fn(ctx, h); err != nil {
			if !errors.Is(err, service.ErrInvalidSettings) {
				s.evictLocked(id, h)
				logger.Log.Error("persist session", zap.String("session_id", id), zap.Error(err))
			}
			return err
		}

		if unarchived {
			s.record(finished)
		}
		h.archived = false
		view = h.sess.View()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(id, view)
	return &view, nil
}
