package session

import "github.com/shopspring/decimal"

// SettingsRequest - частичные настройки, отсутствующие поля берутся из текущих
type SettingsRequest struct {
	BetType            *string `json:"bet_type"`            // player | banker | tie
	StrategyType       *string `json:"strategy_type"`       // labouchere, martingale, ...
	BaseUnit           *int64  `json:"base_unit"`           // Базовая ставка
	TargetProfit       *int64  `json:"target_profit"`       // Цель по прибыли
	StopLoss           *int64  `json:"stop_loss"`           // Предел убытка
	LabouchereSequence []int64 `json:"labouchere_sequence"` // Начальная последовательность
	InitialBankroll    *int64  `json:"initial_bankroll"`    // Стартовый банк
	AutoPlaySpeed      *int    `json:"auto_play_speed"`     // Интервал автоигры, мс
}

type Settings struct {
	BetType            string  `json:"bet_type"`
	StrategyType       string  `json:"strategy_type"`
	BaseUnit           int64   `json:"base_unit"`
	TargetProfit       int64   `json:"target_profit"`
	StopLoss           int64   `json:"stop_loss"`
	LabouchereSequence []int64 `json:"labouchere_sequence"`
	InitialBankroll    int64   `json:"initial_bankroll"`
	AutoPlaySpeed      int     `json:"auto_play_speed"`
}

type NewGameRequest struct {
	Hands int `json:"hands"` // 0 - длина по умолчанию
}

type ImportShoeRequest struct {
	Data string `json:"data"` // Текст B/P/T
}

type GenerateShoeRequest struct {
	Hands  int    `json:"hands"`
	Source string `json:"source"` // random | cards
	Decks  int    `json:"decks"`
}

type AutoPlayRequest struct {
	SpeedMs int `json:"speed_ms"` // 0 - текущая скорость
}

type Card struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
	Label string `json:"label"` // Например "A♥"
}

type Hand struct {
	Cards   []Card `json:"cards"`
	Total   int    `json:"total"`
	Natural bool   `json:"natural"`
}

type GameResult struct {
	PlayerHand      Hand   `json:"player_hand"`
	BankerHand      Hand   `json:"banker_hand"`
	Winner          string `json:"winner"`
	PlayerThirdCard *Card  `json:"player_third_card"`
	BankerThirdCard *Card  `json:"banker_third_card"`
}

type BetRecord struct {
	Hand      int             `json:"hand"`
	Result    string          `json:"result"`
	BetType   string          `json:"bet_type"`
	BetAmount decimal.Decimal `json:"bet_amount"`
	Payout    decimal.Decimal `json:"payout"`
	Balance   decimal.Decimal `json:"balance"`
}

type Streak struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type Stats struct {
	HandsPlayed         int         `json:"hands_played"`
	BankerWins          int         `json:"banker_wins"`
	PlayerWins          int         `json:"player_wins"`
	Ties                int         `json:"ties"`
	CurrentStreak       Streak      `json:"current_streak"`
	LongestBankerStreak int         `json:"longest_banker_streak"`
	LongestPlayerStreak int         `json:"longest_player_streak"`
	LongestTieStreak    int         `json:"longest_tie_streak"`
	BetHistory          []BetRecord `json:"bet_history"`
}

type StrategyState struct {
	Name         string            `json:"name"`
	Sequence     []decimal.Decimal `json:"sequence"`
	BaseUnit     decimal.Decimal   `json:"base_unit"`
	CurrentBet   decimal.Decimal   `json:"current_bet"`
	TotalWagered decimal.Decimal   `json:"total_wagered"`
	TotalWon     decimal.Decimal   `json:"total_won"`
	NetProfit    decimal.Decimal   `json:"net_profit"`
	Wins         int               `json:"wins"`
	Losses       int               `json:"losses"`
	Pushes       int               `json:"pushes"`
	MaxBet       decimal.Decimal   `json:"max_bet"`
	TargetProfit decimal.Decimal   `json:"target_profit"`
	StopLoss     decimal.Decimal   `json:"stop_loss"`
	IsActive     bool              `json:"is_active"`
}

type Summary struct {
	Profit          decimal.Decimal `json:"profit"`
	WinRate         float64         `json:"win_rate"`
	BankerPercent   float64         `json:"banker_percent"`
	PlayerPercent   float64         `json:"player_percent"`
	TiePercent      float64         `json:"tie_percent"`
	HouseEdge       decimal.Decimal `json:"house_edge"`
	TheoreticalLoss decimal.Decimal `json:"theoretical_loss"`
}

type SessionResponse struct {
	SessionID       string          `json:"session_id"`
	Status          string          `json:"status"`
	HaltReason      string          `json:"halt_reason,omitempty"`
	Settings        Settings        `json:"settings"`
	Bankroll        decimal.Decimal `json:"bankroll"`
	InitialBankroll decimal.Decimal `json:"initial_bankroll"`
	Stats           Stats           `json:"stats"`
	Strategy        StrategyState   `json:"strategy"`
	Shoe            string          `json:"shoe"`         // Все руки шу, B/P/T
	ShoeHistory     string          `json:"shoe_history"` // Сыгранные руки
	Position        int             `json:"position"`
	ShoeLength      int             `json:"shoe_length"`
	AutoPlaying     bool            `json:"auto_playing"`
	AutoPlaySpeed   int             `json:"auto_play_speed"`
	LastHand        *GameResult     `json:"last_hand"`
	Summary         Summary         `json:"summary"`
}

type CreateResponse struct {
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
	Session   SessionResponse `json:"session"`
}

type PlayResponse struct {
	Played  bool            `json:"played"`
	Record  *BetRecord      `json:"record"`
	Halt    string          `json:"halt,omitempty"`
	Session SessionResponse `json:"session"`
}

type StepBackResponse struct {
	SteppedBack bool            `json:"stepped_back"`
	Session     SessionResponse `json:"session"`
}
