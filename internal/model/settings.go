package model

import "slices"

// Settings is the configuration a client may change for a session.
type Settings struct {
	BetType            BetType
	StrategyType       StrategyType
	BaseUnit           int64
	TargetProfit       int64
	StopLoss           int64
	LabouchereSequence []int64
	InitialBankroll    int64
	AutoPlaySpeed      int // milliseconds
}

// SettingsPatch is a partial settings change; nil fields keep the current value.
type SettingsPatch struct {
	BetType            *BetType
	StrategyType       *StrategyType
	BaseUnit           *int64
	TargetProfit       *int64
	StopLoss           *int64
	LabouchereSequence []int64
	InitialBankroll    *int64
	AutoPlaySpeed      *int
}

// Apply returns base with the patch applied. base is not modified.
func (p SettingsPatch) Apply(base Settings) Settings {
	s := base
	s.LabouchereSequence = slices.Clone(base.LabouchereSequence)

	if p.BetType != nil {
		s.BetType = *p.BetType
	}
	if p.StrategyType != nil {
		s.StrategyType = *p.StrategyType
	}
	if p.BaseUnit != nil {
		s.BaseUnit = *p.BaseUnit
	}
	if p.TargetProfit != nil {
		s.TargetProfit = *p.TargetProfit
	}
	if p.StopLoss != nil {
		s.StopLoss = *p.StopLoss
	}
	if p.LabouchereSequence != nil {
		s.LabouchereSequence = slices.Clone(p.LabouchereSequence)
	}
	if p.InitialBankroll != nil {
		s.InitialBankroll = *p.InitialBankroll
	}
	if p.AutoPlaySpeed != nil {
		s.AutoPlaySpeed = *p.AutoPlaySpeed
	}
	return s
}

// StoredSession is what is persisted to rebuild a session by replay.
type StoredSession struct {
	ID       string
	Settings Settings
	Shoe     string
	Bets     int
}

type ShoeSource string

const (
	ShoeRandom ShoeSource = "random" // i.i.d. outcomes from the probability table
	ShoeCards  ShoeSource = "cards"  // hands dealt from a shuffled card shoe
)

// ShoeRequest asks for a freshly generated shoe.
type ShoeRequest struct {
	Hands  int
	Source ShoeSource
	Decks  int
}
