package game

import (
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/repository"
	"baccarat_backend/internal/repository/table_stats_repo"
	"baccarat_backend/internal/service/session"
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

var errDBDown = errors.New("db down")

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSessionRepo struct {
	mu         sync.Mutex
	shoes      map[string]string
	bets       map[string][]model.BetRecord
	failAppend bool
	// beforeAppend runs outside the lock on every AppendBet; an error fails the call.
	beforeAppend func() error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		shoes: make(map[string]string),
		bets:  make(map[string][]model.BetRecord),
	}
}

func (r *fakeSessionRepo) CreateSession(_ context.Context, id string, shoe string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shoes[id] = shoe
	return nil
}

func (r *fakeSessionRepo) GetShoe(_ context.Context, id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shoe, ok := r.shoes[id]
	if !ok {
		return "", repository.ErrNotFound
	}
	return shoe, nil
}

func (r *fakeSessionRepo) UpdateShoe(_ context.Context, id string, shoe string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shoes[id]; !ok {
		return repository.ErrNotFound
	}
	r.shoes[id] = shoe
	delete(r.bets, id)
	return nil
}

func (r *fakeSessionRepo) AppendBet(_ context.Context, id string, rec model.BetRecord) error {
	if r.beforeAppend != nil {
		if err := r.beforeAppend(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAppend {
		return errDBDown
	}
	r.bets[id] = append(r.bets[id], rec)
	return nil
}

func (r *fakeSessionRepo) DeleteLastBet(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.bets[id]); n > 0 {
		r.bets[id] = r.bets[id][:n-1]
	}
	return nil
}

func (r *fakeSessionRepo) ClearBets(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bets, id)
	return nil
}

func (r *fakeSessionRepo) CountBets(_ context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bets[id]), nil
}

func (r *fakeSessionRepo) betCount(id string) int {
	n, _ := r.CountBets(context.Background(), id)
	return n
}

func (r *fakeSessionRepo) hands(id string) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.bets[id]))
	for _, rec := range r.bets[id] {
		out = append(out, rec.Hand)
	}
	return out
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[string]model.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[string]model.Settings)}
}

func (r *fakeSettingsRepo) SaveSettings(_ context.Context, id string, s model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.LabouchereSequence = slices.Clone(s.LabouchereSequence)
	r.settings[id] = s
	return nil
}

func (r *fakeSettingsRepo) GetSettings(_ context.Context, id string) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

type fakeRecorder struct {
	mu       sync.Mutex
	sessions []model.ArchivedSession
}

func (r *fakeRecorder) RecordSession(s *model.ArchivedSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, *s)
	return nil
}

func (r *fakeRecorder) RecentSessions(limit int) ([]model.ArchivedSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := slices.Clone(r.sessions)
	slices.Reverse(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRecorder) Close() error { return nil }

func (r *fakeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

type fakePublisher struct {
	mu    sync.Mutex
	views []model.SessionView
}

func (p *fakePublisher) Publish(_ string, view model.SessionView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.views = append(p.views, view)
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.views)
}

type fixture struct {
	svc       *serv
	sessions  *fakeSessionRepo
	settings  *fakeSettingsRepo
	stats     *table_stats_repo.StatsRepo
	recorder  *fakeRecorder
	publisher *fakePublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		sessions:  newFakeSessionRepo(),
		settings:  newFakeSettingsRepo(),
		stats:     table_stats_repo.NewTableStatsRepository(100),
		recorder:  &fakeRecorder{},
		publisher: &fakePublisher{},
	}
	f.svc = f.newService()
	t.Cleanup(f.svc.Shutdown)
	return f
}

// newService builds a second service over the same storage, as after a restart.
func (f *fixture) newService() *serv {
	svc := NewGameService(
		session.DefaultRules(),
		f.sessions,
		f.settings,
		f.stats,
		f.recorder,
		f.publisher,
		fakeTxManager{},
	).(*serv)

	var seed uint64
	svc.newRand = func() *rand.Rand {
		seed++
		return rand.New(rand.NewPCG(seed, 42))
	}
	return svc
}

func flatSettings() *model.Settings {
	return &model.Settings{
		BetType:         model.BetPlayer,
		StrategyType:    model.StrategyFlat,
		BaseUnit:        100,
		TargetProfit:    100_000,
		StopLoss:        100_000,
		InitialBankroll: 10_000,
		AutoPlaySpeed:   50,
	}
}
