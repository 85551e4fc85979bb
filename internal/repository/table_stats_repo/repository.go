package table_stats_repo

import (
	"baccarat_backend/internal/model"
	repoModel "baccarat_backend/internal/repository/table_stats_repo/model"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

const defaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// Реализация репозитория для хранения статистики стола в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.TableState
}

// NewTableStatsRepository Конструктор репозитория с пустым состоянием
func NewTableStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.TableState{
			TotalWagered: decimal.Zero,
			TotalPayout:  decimal.Zero,
			HandWindow:   make([]repoModel.HandSample, 0, windowSize),
			WindowSize:   windowSize,
		},
	}
}

// TableState Получение текущего состояния стола.
// Возвращает копию, окно копируется
func (r *StatsRepo) TableState() repoModel.TableState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state := r.state
	state.HandWindow = slices.Clone(r.state.HandWindow)
	return state
}

// RecordHand Обновление состояния после сыгранной руки
func (r *StatsRepo) RecordHand(betType model.BetType, result model.HandResult, bet, payout decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalHands++
	r.state.TotalWagered = r.state.TotalWagered.Add(bet)
	r.state.TotalPayout = r.state.TotalPayout.Add(payout)
	r.countOutcome(result, 1)

	// Добавляем руку в окно
	r.state.HandWindow = append(r.state.HandWindow, repoModel.HandSample{
		BetType: betType,
		Result:  result,
		Bet:     bet,
		Payout:  payout,
		RTP:     rtp(bet, payout),
	})

	// Поддерживаем размер окна
	if len(r.state.HandWindow) > r.state.WindowSize {
		r.state.HandWindow = r.state.HandWindow[1:]
	}

	r.recalculate()
}

// RevertHand Откат руки после шага назад.
// Из окна удаляется последняя совпадающая рука, если она еще в окне
func (r *StatsRepo) RevertHand(betType model.BetType, result model.HandResult, bet, payout decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.state.TotalHands == 0 {
		return
	}

	r.state.TotalHands--
	r.state.TotalWagered = r.state.TotalWagered.Sub(bet)
	r.state.TotalPayout = r.state.TotalPayout.Sub(payout)
	r.countOutcome(result, -1)

	for i := len(r.state.HandWindow) - 1; i >= 0; i-- {
		h := r.state.HandWindow[i]
		if h.BetType == betType && h.Result == result && h.Bet.Equal(bet) && h.Payout.Equal(payout) {
			r.state.HandWindow = slices.Delete(r.state.HandWindow, i, i+1)
			break
		}
	}

	r.recalculate()
}

func (r *StatsRepo) countOutcome(result model.HandResult, delta int) {
	switch result {
	case model.ResultBanker:
		r.state.BankerWins += delta
	case model.ResultPlayer:
		r.state.PlayerWins += delta
	case model.ResultTie:
		r.state.Ties += delta
	}
}

// Пересчитываем общий RTP и RTP в окне
func (r *StatsRepo) recalculate() {
	r.state.CurrentRTP = rtp(r.state.TotalWagered, r.state.TotalPayout)

	windowBet, windowPayout := decimal.Zero, decimal.Zero
	for _, h := range r.state.HandWindow {
		windowBet = windowBet.Add(h.Bet)
		windowPayout = windowPayout.Add(h.Payout)
	}
	r.state.WindowRTP = rtp(windowBet, windowPayout)
}

func rtp(bet, payout decimal.Decimal) float64 {
	if !bet.IsPositive() {
		return 0
	}
	return bet.Add(payout).Div(bet).Mul(hundred).InexactFloat64()
}
