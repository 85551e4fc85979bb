package session

import (
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/service/baccarat"
	"baccarat_backend/internal/service/strategy"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"
)

var ErrUnsupportedSpeed = errors.New("unsupported auto-play speed")

// Session plays one shoe against one strategy. It is not safe for
// concurrent use; callers serialize access.
type Session struct {
	id       string
	rules    Rules
	rng      *rand.Rand
	settings model.Settings
	strategy strategy.Strategy

	outcomes []model.HandResult
	games    []model.GameResult // parallel to outcomes when the shoe was dealt from cards
	position int

	bankroll        decimal.Decimal
	initialBankroll decimal.Decimal
	stats           model.SessionStats
	history         []model.HandResult

	autoPlaying bool
	halt        model.HaltReason
}

// New creates a session with an empty shoe.
func New(id string, settings model.Settings, rules Rules, rng *rand.Rand) (*Session, error) {
	s := &Session{
		id:    id,
		rules: rules,
		rng:   rng,
	}
	if err := s.Configure(settings); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) Settings() model.Settings {
	settings := s.settings
	settings.LabouchereSequence = slices.Clone(s.settings.LabouchereSequence)
	return settings
}

func (s *Session) Position() int { return s.position }

func (s *Session) Halt() model.HaltReason { return s.halt }

func (s *Session) AutoPlaying() bool { return s.autoPlaying }

func (s *Session) AutoPlaySpeed() int { return s.settings.AutoPlaySpeed }

// Configure validates and applies new settings. The strategy is rebuilt and
// the session reset; the shoe stays.
func (s *Session) Configure(settings model.Settings) error {
	settings = s.rules.Normalize(settings)
	if _, err := model.ParseBetType(string(settings.BetType)); err != nil {
		return fmt.Errorf("bet type %q: %w", settings.BetType, err)
	}

	strat, err := strategy.New(s.rules.strategyParams(settings))
	if err != nil {
		return fmt.Errorf("strategy: %w", err)
	}

	s.settings = settings
	s.strategy = strat
	s.initialBankroll = decimal.NewFromInt(settings.InitialBankroll)
	s.ResetSession()
	return nil
}

// PlayNextHand settles the hand at the cursor. When the session cannot bet
// it records why, stops auto-play and returns without playing.
func (s *Session) PlayNextHand() model.PlayResult {
	if s.halt != model.HaltNone {
		s.autoPlaying = false
		return model.PlayResult{Halt: s.halt}
	}

	bet := s.strategy.NextBet()
	switch {
	case s.position >= len(s.outcomes):
		return s.stop(model.HaltShoeExhausted)
	case !s.strategy.IsActive():
		return s.stop(model.HaltLimitReached)
	case !s.bankroll.IsPositive():
		return s.bankrupt()
	case bet.GreaterThan(s.bankroll):
		s.strategy.Deactivate()
		return s.stop(model.HaltTableLimit)
	}

	result := s.outcomes[s.position]
	payout := baccarat.Payout(s.settings.BetType, bet, result)
	s.strategy.ProcessResult(betResult(bet, payout))
	s.bankroll = s.bankroll.Add(payout)

	record := model.BetRecord{
		Hand:      s.position + 1,
		Result:    result,
		BetType:   s.settings.BetType,
		BetAmount: bet,
		Payout:    payout,
		Balance:   s.bankroll,
	}
	s.stats.BetHistory = append(s.stats.BetHistory, record)
	tally(&s.stats, result)
	s.history = append(s.history, result)
	s.position++

	switch {
	case !s.strategy.IsActive():
		s.stop(model.HaltLimitReached)
	case !s.bankroll.IsPositive():
		s.bankrupt()
	case s.position >= len(s.outcomes):
		s.stop(model.HaltShoeExhausted)
	}

	return model.PlayResult{Played: true, Record: record, Halt: s.halt}
}

// bankrupt halts the session; a next bet the bankroll cannot cover turns the strategy off too.
func (s *Session) bankrupt() model.PlayResult {
	if s.strategy.NextBet().GreaterThan(s.bankroll) {
		s.strategy.Deactivate()
	}
	return s.stop(model.HaltBankrupt)
}

func (s *Session) stop(reason model.HaltReason) model.PlayResult {
	s.halt = reason
	s.autoPlaying = false
	return model.PlayResult{Halt: reason}
}

// StepBack undoes the last hand. The strategy is rebuilt by replaying the
// remaining ledger, so the result is the same as never having played it.
func (s *Session) StepBack() bool {
	n := len(s.stats.BetHistory)
	if s.position == 0 || n == 0 {
		return false
	}

	last := s.stats.BetHistory[n-1]
	records := s.stats.BetHistory[:n-1]

	s.bankroll = last.Balance.Sub(last.Payout)
	s.position--
	s.history = s.history[:len(s.history)-1]
	s.stats = rebuildStats(records)

	s.strategy.Reset()
	for _, rec := range records {
		s.strategy.ProcessResult(betResult(rec.BetAmount, rec.Payout))
	}

	s.halt = model.HaltNone
	return true
}

// LastRecord is the ledger row StepBack would remove.
func (s *Session) LastRecord() (model.BetRecord, bool) {
	n := len(s.stats.BetHistory)
	if n == 0 {
		return model.BetRecord{}, false
	}
	return s.stats.BetHistory[n-1], true
}

func (s *Session) HandsPlayed() int { return s.stats.HandsPlayed }

// ResetSession rewinds to the start of the current shoe.
func (s *Session) ResetSession() {
	s.strategy.Reset()
	s.position = 0
	s.bankroll = s.initialBankroll
	s.stats = model.SessionStats{}
	s.history = nil
	s.autoPlaying = false
	s.halt = model.HaltNone
}

// NewGame deals a fresh random shoe and resets.
func (s *Session) NewGame(hands int) {
	s.GenerateShoe(hands)
}

func (s *Session) GenerateShoe(hands int) {
	s.SetOutcomes(baccarat.GenerateOutcomes(s.rules.ClampHands(hands), s.rng))
}

// GenerateCardShoe deals hands from a shuffled multi-deck shoe so each
// outcome comes with its cards.
func (s *Session) GenerateCardShoe(hands, decks int) {
	if decks <= 0 {
		decks = s.rules.Decks
	}
	outcomes, games := baccarat.DealOutcomes(s.rules.ClampHands(hands), decks, s.rng)
	s.SetOutcomes(outcomes)
	s.games = games
}

// ImportShoe replaces the shoe with a parsed B/P/T text and returns the
// number of hands read.
func (s *Session) ImportShoe(data string) int {
	outcomes := baccarat.ParseOutcomes(data)
	s.SetOutcomes(outcomes)
	return len(outcomes)
}

func (s *Session) SetOutcomes(outcomes []model.HandResult) {
	s.outcomes = slices.Clone(outcomes)
	s.games = nil
	s.ResetSession()
}

func (s *Session) ExportShoe() string {
	return baccarat.FormatOutcomes(s.outcomes)
}

// StartAutoPlay turns the flag on unless the session is already halted.
func (s *Session) StartAutoPlay() bool {
	if s.halt != model.HaltNone || s.position >= len(s.outcomes) {
		return false
	}
	s.autoPlaying = true
	return true
}

func (s *Session) StopAutoPlay() {
	s.autoPlaying = false
}

func (s *Session) SetAutoPlaySpeed(ms int) error {
	if !s.rules.SpeedAllowed(ms) {
		return fmt.Errorf("%w: %d ms", ErrUnsupportedSpeed, ms)
	}
	s.settings.AutoPlaySpeed = ms
	return nil
}

// Replay plays up to n hands and returns how many were played.
func (s *Session) Replay(n int) int {
	played := 0
	for played < n {
		if !s.PlayNextHand().Played {
			break
		}
		played++
	}
	return played
}

func (s *Session) status() model.SessionStatus {
	switch {
	case s.halt != model.HaltNone:
		return model.StatusFinished
	case s.autoPlaying:
		return model.StatusPlaying
	case s.position == 0:
		return model.StatusIdle
	default:
		return model.StatusPaused
	}
}

// View returns a snapshot that shares no memory with the session.
func (s *Session) View() model.SessionView {
	stats := s.stats
	stats.BetHistory = slices.Clone(s.stats.BetHistory)

	v := model.SessionView{
		ID:              s.id,
		Settings:        s.Settings(),
		Status:          s.status(),
		HaltReason:      s.halt,
		Bankroll:        s.bankroll,
		InitialBankroll: s.initialBankroll,
		Stats:           stats,
		Strategy:        s.strategy.State(),
		StrategyType:    s.settings.StrategyType,
		BetType:         s.settings.BetType,
		Shoe:            slices.Clone(s.outcomes),
		ShoeHistory:     slices.Clone(s.history),
		Position:        s.position,
		AutoPlaying:     s.autoPlaying,
		AutoPlaySpeed:   s.settings.AutoPlaySpeed,
	}
	if s.games != nil && s.position > 0 {
		last := s.games[s.position-1]
		v.LastHand = &last
	}
	v.Summary = summarize(&v)
	return v
}

// Archive summarizes the session for the finished-session log.
func (s *Session) Archive() model.ArchivedSession {
	st := s.strategy.State()
	return model.ArchivedSession{
		ID:            s.id,
		StrategyType:  s.settings.StrategyType,
		BetType:       s.settings.BetType,
		HandsPlayed:   s.stats.HandsPlayed,
		ShoeLength:    len(s.outcomes),
		Wins:          st.Wins,
		Losses:        st.Losses,
		Pushes:        st.Pushes,
		TotalWagered:  st.TotalWagered,
		NetProfit:     st.NetProfit,
		FinalBankroll: s.bankroll,
		MaxBet:        st.MaxBet,
		Halt:          s.halt,
	}
}
