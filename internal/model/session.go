package model

import "github.com/shopspring/decimal"

type SessionStatus string

const (
	StatusIdle     SessionStatus = "idle"
	StatusPlaying  SessionStatus = "playing"
	StatusPaused   SessionStatus = "paused"
	StatusFinished SessionStatus = "finished"
)

// HaltReason explains why a session refuses to deal further hands.
type HaltReason string

const (
	HaltNone          HaltReason = ""
	HaltShoeExhausted HaltReason = "shoe_exhausted"
	HaltLimitReached  HaltReason = "limit_reached"
	HaltTableLimit    HaltReason = "table_limit"
	HaltBankrupt      HaltReason = "bankrupt"
)

// Streak of identical outcomes. Type is empty when nothing was played.
type Streak struct {
	Type  HandResult
	Count int
}

// BetRecord is one row of the session ledger.
type BetRecord struct {
	Hand      int // 1-based shoe position
	Result    HandResult
	BetType   BetType
	BetAmount decimal.Decimal
	Payout    decimal.Decimal
	Balance   decimal.Decimal // bankroll after the hand
}

type SessionStats struct {
	HandsPlayed         int
	BankerWins          int
	PlayerWins          int
	Ties                int
	CurrentStreak       Streak
	LongestBankerStreak int
	LongestPlayerStreak int
	LongestTieStreak    int
	BetHistory          []BetRecord
}

// SessionSummary holds figures derived from the ledger for display.
type SessionSummary struct {
	Profit          decimal.Decimal
	WinRate         float64
	BankerPercent   float64
	PlayerPercent   float64
	TiePercent      float64
	HouseEdge       decimal.Decimal // percent
	TheoreticalLoss decimal.Decimal
}

// SessionView is the read model handed to display layers.
type SessionView struct {
	ID              string
	Settings        Settings
	Status          SessionStatus
	HaltReason      HaltReason
	Bankroll        decimal.Decimal
	InitialBankroll decimal.Decimal
	Stats           SessionStats
	Strategy        StrategyState
	StrategyType    StrategyType
	BetType         BetType
	Shoe            []HandResult
	ShoeHistory     []HandResult
	Position        int
	AutoPlaying     bool
	AutoPlaySpeed   int
	LastHand        *GameResult
	Summary         SessionSummary
}

// PlayResult reports the effect of one play call.
type PlayResult struct {
	Played bool
	Record BetRecord
	Halt   HaltReason
}

// ArchivedSession is the summary kept for finished sessions.
type ArchivedSession struct {
	ID            string
	StrategyType  StrategyType
	BetType       BetType
	HandsPlayed   int
	ShoeLength    int
	Wins          int
	Losses        int
	Pushes        int
	TotalWagered  decimal.Decimal
	NetProfit     decimal.Decimal
	FinalBankroll decimal.Decimal
	MaxBet        decimal.Decimal
	Halt          HaltReason
}
