package table

import "github.com/shopspring/decimal"

type StrategyInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Risk        string `json:"risk"`
}

type StatsResponse struct {
	TotalHands   int             `json:"total_hands"`
	TotalWagered decimal.Decimal `json:"total_wagered"`
	TotalPayout  decimal.Decimal `json:"total_payout"`
	BankerWins   int             `json:"banker_wins"`
	PlayerWins   int             `json:"player_wins"`
	Ties         int             `json:"ties"`
	CurrentRTP   float64         `json:"current_rtp"`
	WindowRTP    float64         `json:"window_rtp"`
	WindowSize   int             `json:"window_size"`
	WindowHands  int             `json:"window_hands"` // Сколько рук сейчас в окне
}

type ArchivedSession struct {
	SessionID     string          `json:"session_id"`
	StrategyType  string          `json:"strategy_type"`
	BetType       string          `json:"bet_type"`
	HandsPlayed   int             `json:"hands_played"`
	ShoeLength    int             `json:"shoe_length"`
	Wins          int             `json:"wins"`
	Losses        int             `json:"losses"`
	Pushes        int             `json:"pushes"`
	TotalWagered  decimal.Decimal `json:"total_wagered"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	FinalBankroll decimal.Decimal `json:"final_bankroll"`
	MaxBet        decimal.Decimal `json:"max_bet"`
	Halt          string          `json:"halt"`
}
