package model

import (
	"baccarat_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Состояние стола по всем сессиям
type TableState struct {
	TotalHands   int             // Сколько всего рук сыграно
	TotalWagered decimal.Decimal // Сумма всех ставок
	TotalPayout  decimal.Decimal // Сумма выплат со знаком (выигрыш игрока > 0)

	BankerWins int
	PlayerWins int
	Ties       int

	CurrentRTP float64 // (TotalWagered+TotalPayout)/TotalWagered*100

	HandWindow []HandSample // Окно последних рук для анализа
	WindowRTP  float64      // RTP в окне последних рук
	WindowSize int          // Размер окна
}

// Результат руки для окна
type HandSample struct {
	BetType model.BetType
	Result  model.HandResult
	Bet     decimal.Decimal
	Payout  decimal.Decimal
	RTP     float64
}
