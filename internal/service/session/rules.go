package session

import (
	"baccarat_backend/internal/config"
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/service/baccarat"
	"baccarat_backend/internal/service/strategy"
	"slices"
)

// Rules are the table-wide knobs every session is created with.
type Rules struct {
	Defaults      model.Settings
	MaxMultiplier int
	MaxWinStreak  int
	Decks         int
	DefaultHands  int
	MinHands      int
	MaxHands      int
	MinBankroll   int64
	Speeds        []int // allowed auto-play intervals, ms
}

func DefaultRules() Rules {
	return Rules{
		Defaults: model.Settings{
			BetType:            model.BetPlayer,
			StrategyType:       model.StrategyLabouchere,
			BaseUnit:           25,
			TargetProfit:       1500,
			StopLoss:           1000,
			LabouchereSequence: slices.Clone(strategy.DefaultLabouchereSequence),
			InitialBankroll:    6000,
			AutoPlaySpeed:      500,
		},
		MaxMultiplier: strategy.DefaultMaxMultiplier,
		MaxWinStreak:  strategy.DefaultMaxWinStreak,
		Decks:         baccarat.DefaultDecks,
		DefaultHands:  80,
		MinHands:      1,
		MaxHands:      200,
		MinBankroll:   100,
		Speeds:        []int{1000, 500, 200, 50},
	}
}

// RulesFromConfig Собрать правила стола из конфига игры
func RulesFromConfig(cfg config.GameConfig) Rules {
	return Rules{
		Defaults:      cfg.DefaultSettings(),
		MaxMultiplier: cfg.MaxMultiplier(),
		MaxWinStreak:  cfg.MaxWinStreak(),
		Decks:         cfg.Decks(),
		DefaultHands:  cfg.DefaultHands(),
		MinHands:      cfg.MinHands(),
		MaxHands:      cfg.MaxHands(),
		MinBankroll:   cfg.MinBankroll(),
		Speeds:        cfg.Speeds(),
	}
}

// Normalize clamps settings into the accepted ranges. Empty bet and
// strategy types take the defaults; unknown ones are left for the strategy
// factory to reject.
func (r Rules) Normalize(s model.Settings) model.Settings {
	if s.BetType == "" {
		s.BetType = r.Defaults.BetType
	}
	if s.StrategyType == "" {
		s.StrategyType = r.Defaults.StrategyType
	}
	s.BaseUnit = max(s.BaseUnit, 1)
	s.TargetProfit = max(s.TargetProfit, 1)
	s.StopLoss = max(s.StopLoss, 1)
	s.InitialBankroll = max(s.InitialBankroll, r.MinBankroll)

	if !r.SpeedAllowed(s.AutoPlaySpeed) {
		s.AutoPlaySpeed = r.Defaults.AutoPlaySpeed
	}

	sequence := make([]int64, 0, len(s.LabouchereSequence))
	for _, v := range s.LabouchereSequence {
		if v > 0 {
			sequence = append(sequence, v)
		}
	}
	if len(sequence) == 0 {
		sequence = slices.Clone(r.Defaults.LabouchereSequence)
	}
	s.LabouchereSequence = sequence

	return s
}

func (r Rules) SpeedAllowed(ms int) bool {
	return slices.Contains(r.Speeds, ms)
}

// ClampHands maps a requested shoe length into [MinHands, MaxHands];
// zero asks for the default length.
func (r Rules) ClampHands(hands int) int {
	if hands == 0 {
		hands = r.DefaultHands
	}
	return min(max(hands, r.MinHands), r.MaxHands)
}

func (r Rules) strategyParams(s model.Settings) strategy.Params {
	return strategy.Params{
		Type:          s.StrategyType,
		BaseUnit:      s.BaseUnit,
		TargetProfit:  s.TargetProfit,
		StopLoss:      s.StopLoss,
		Sequence:      s.LabouchereSequence,
		MaxMultiplier: r.MaxMultiplier,
		MaxWinStreak:  r.MaxWinStreak,
	}
}
