package game

import (
	"baccarat_backend/internal/logger"
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/monitoring"
	"baccarat_backend/internal/recorder"
	"baccarat_backend/internal/repository"
	"baccarat_backend/internal/service"
	"baccarat_backend/internal/service/session"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// hosted is one live session. mu serializes HTTP calls and auto-play ticks.
type hosted struct {
	mu       sync.Mutex
	sess     *session.Session
	run      *autoRun
	archived bool
	evicted  bool
}

type serv struct {
	rules        session.Rules
	sessionRepo  repository.SessionRepository
	settingsRepo repository.SettingsRepository
	statsRepo    repository.StatsRepository
	recorder     recorder.Recorder
	publisher    service.Publisher
	txManager    trm.Manager

	mtx      sync.RWMutex
	sessions map[string]*hosted

	baseCtx context.Context
	stopAll context.CancelFunc
	newRand func() *rand.Rand
	newID   func() string
}

// NewGameService Создать сервис, который держит сессии в памяти и сохраняет их в репозитории
func NewGameService(
	rules session.Rules,
	sessionRepo repository.SessionRepository,
	settingsRepo repository.SettingsRepository,
	statsRepo repository.StatsRepository,
	rec recorder.Recorder,
	publisher service.Publisher,
	txManager trm.Manager,
) service.GameService {
	ctx, cancel := context.WithCancel(context.Background())
	return &serv{
		rules:        rules,
		sessionRepo:  sessionRepo,
		settingsRepo: settingsRepo,
		statsRepo:    statsRepo,
		recorder:     rec,
		publisher:    publisher,
		txManager:    txManager,
		sessions:     make(map[string]*hosted),
		baseCtx:      ctx,
		stopAll:      cancel,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		newID: uuid.NewString,
	}
}

// load возвращает сессию из памяти или восстанавливает ее из репозиториев повтором журнала
func (s *serv) load(ctx context.Context, id string) (*hosted, error) {
	s.mtx.RLock()
	h, ok := s.sessions[id]
	s.mtx.RUnlock()
	if ok {
		return h, nil
	}

	settings, err := s.settingsRepo.GetSettings(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	shoe, err := s.sessionRepo.GetShoe(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load shoe: %w", err)
	}
	bets, err := s.sessionRepo.CountBets(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count bets: %w", err)
	}

	sess, err := session.New(id, *settings, s.rules, s.newRand())
	if err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}
	sess.ImportShoe(shoe)
	if played := sess.Replay(bets); played != bets {
		logger.Log.Warn("replayed fewer hands than stored",
			zap.String("session_id", id), zap.Int("stored", bets), zap.Int("played", played))
	}

	h = &hosted{
		sess:     sess,
		archived: sess.Halt() != model.HaltNone,
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	if existing, ok := s.sessions[id]; ok {
		return existing, nil
	}
	s.sessions[id] = h
	monitoring.ActiveSessions.Set(float64(len(s.sessions)))

	logger.Log.Info("session restored", zap.String("session_id", id), zap.Int("hands", bets))
	return h, nil
}

// with выполняет fn под блокировкой сессии.
// Если пока ждали блокировку сессию выгрузили, она загружается заново
func (s *serv) with(ctx context.Context, id string, fn func(h *hosted) error) error {
	for {
		h, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		h.mu.Lock()
		if h.evicted {
			h.mu.Unlock()
			continue
		}
		defer h.mu.Unlock()
		return fn(h)
	}
}

// evictLocked выгружает сессию из памяти после ошибки сохранения.
// Следующее обращение восстановит ее из БД. Вызывается под h.mu
func (s *serv) evictLocked(id string, h *hosted) {
	h.evicted = true
	s.stopRunLocked(h)

	s.mtx.Lock()
	if s.sessions[id] == h {
		delete(s.sessions, id)
	}
	monitoring.ActiveSessions.Set(float64(len(s.sessions)))
	s.mtx.Unlock()
}

// archiveLocked отправляет итог сыгранной сессии в архив один раз
func (s *serv) archiveLocked(h *hosted) {
	if h.archived || h.sess.HandsPlayed() == 0 {
		return
	}
	h.archived = true
	s.record(h.sess.Archive())
}

func (s *serv) record(a model.ArchivedSession) {
	reason := string(a.Halt)
	if reason == "" {
		reason = "reset"
	}
	monitoring.SessionsFinished.WithLabelValues(reason).Inc()

	if err := s.recorder.RecordSession(&a); err != nil {
		logger.Log.Error("archive session", zap.String("session_id", a.ID), zap.Error(err))
	}
}

func (s *serv) publish(id string, view model.SessionView) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(id, view)
}

func (s *serv) Shutdown() {
	s.stopAll()

	s.mtx.RLock()
	hs := make([]*hosted, 0, len(s.sessions))
	for _, h := range s.sessions {
		hs = append(hs, h)
	}
	s.mtx.RUnlock()

	for _, h := range hs {
		h.mu.Lock()
		h.sess.StopAutoPlay()
		s.stopRunLocked(h)
		h.mu.Unlock()
	}
}
