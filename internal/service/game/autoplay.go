package game

import (
	"baccarat_backend/internal/logger"
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/monitoring"
	"baccarat_backend/internal/service"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// autoRun is one auto-play loop of a session.
type autoRun struct {
	cancel context.CancelFunc
	speed  int
}

// StartAutoPlay Запустить автоигру. speedMs = 0 оставляет текущую скорость
func (s *serv) StartAutoPlay(ctx context.Context, id string, speedMs int) (*model.SessionView, error) {
	var view model.SessionView
	err := s.with(ctx, id, func(h *hosted) error {
		if speedMs != 0 && speedMs != h.sess.AutoPlaySpeed() {
			if err := h.sess.SetAutoPlaySpeed(speedMs); err != nil {
				return fmt.Errorf("%w: %w", service.ErrInvalidSettings, err)
			}
			err := s.txManager.Do(ctx, func(txCtx context.Context) error {
				return s.settingsRepo.SaveSettings(txCtx, id, h.sess.Settings())
			})
			if err != nil {
				logger.Log.Warn("save auto-play speed", zap.String("session_id", id), zap.Error(err))
			}
		}

		speed := h.sess.AutoPlaySpeed()
		if h.run != nil && h.run.speed == speed && h.sess.AutoPlaying() {
			view = h.sess.View()
			return nil
		}

		if !h.sess.StartAutoPlay() {
			return service.ErrSessionFinished
		}
		s.startRunLocked(id, h, speed)

		view = h.sess.View()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(id, view)
	return &view, nil
}

func (s *serv) StopAutoPlay(ctx context.Context, id string) (*model.SessionView, error) {
	var view model.SessionView
	err := s.with(ctx, id, func(h *hosted) error {
		h.sess.StopAutoPlay()
		s.stopRunLocked(h)
		view = h.sess.View()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(id, view)
	return &view, nil
}

// startRunLocked запускает цикл автоигры, предыдущий цикл останавливается. Вызывается под h.mu
func (s *serv) startRunLocked(id string, h *hosted, speed int) {
	s.stopRunLocked(h)

	ctx, cancel := context.WithCancel(s.baseCtx)
	run := &autoRun{cancel: cancel, speed: speed}
	h.run = run

	logger.Log.Debug("auto-play started", zap.String("session_id", id), zap.Int("speed_ms", speed))
	go s.autoPlay(ctx, id, h, run)
}

func (s *serv) stopRunLocked(h *hosted) {
	if h.run == nil {
		return
	}
	h.run.cancel()
	h.run = nil
}

func (s *serv) autoPlay(ctx context.Context, id string, h *hosted, run *autoRun) {
	monitoring.AutoPlayRunning.Inc()
	defer monitoring.AutoPlayRunning.Dec()

	defer func() {
		h.mu.Lock()
		if h.run == run {
			h.run = nil
			run.cancel()
		}
		h.mu.Unlock()
	}()

	ticker := time.NewTicker(time.Duration(run.speed) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.autoTick(ctx, id, h) {
				return
			}
		}
	}
}

// autoTick plays one hand and reports whether the loop should continue.
func (s *serv) autoTick(ctx context.Context, id string, h *hosted) bool {
	h.mu.Lock()
	if ctx.Err() != nil || !h.sess.AutoPlaying() {
		h.mu.Unlock()
		return false
	}

	// the hand is persisted even if the loop gets cancelled meanwhile
	res, err := s.playLocked(context.WithoutCancel(ctx), id, h)
	view := h.sess.View()
	h.mu.Unlock()

	if err != nil {
		logger.Log.Error("auto-play stopped", zap.String("session_id", id), zap.Error(err))
		return false
	}

	s.publish(id, view)
	if res.Halt != model.HaltNone {
		logger.Log.Info("auto-play finished", zap.String("session_id", id), zap.String("reason", string(res.Halt)))
	}
	return res.Played && view.AutoPlaying
}
