package model

import (
	"errors"
	"strings"
)

var (
	ErrUnknownBetType = errors.New("unknown bet type")
)

// HandResult is the outcome of one baccarat hand.
type HandResult string

const (
	ResultPlayer HandResult = "player"
	ResultBanker HandResult = "banker"
	ResultTie    HandResult = "tie"
)

// Code returns the single-letter shoe code (B/P/T).
func (r HandResult) Code() byte {
	switch r {
	case ResultBanker:
		return 'B'
	case ResultPlayer:
		return 'P'
	default:
		return 'T'
	}
}

// BetType is the side a wager is placed on.
type BetType string

const (
	BetPlayer BetType = "player"
	BetBanker BetType = "banker"
	BetTie    BetType = "tie"
)

var BetTypes = []BetType{BetPlayer, BetBanker, BetTie}

func ParseBetType(s string) (BetType, error) {
	switch BetType(strings.ToLower(strings.TrimSpace(s))) {
	case BetPlayer:
		return BetPlayer, nil
	case BetBanker:
		return BetBanker, nil
	case BetTie:
		return BetTie, nil
	}
	return "", ErrUnknownBetType
}

// Matches reports whether the bet wins on the given outcome.
func (b BetType) Matches(r HandResult) bool {
	return string(b) == string(r)
}

type Hand struct {
	Cards   []Card
	Total   int
	Natural bool
}

// GameResult is one resolved hand. Third cards are nil when not drawn.
type GameResult struct {
	PlayerHand      Hand
	BankerHand      Hand
	Winner          HandResult
	PlayerThirdCard *Card
	BankerThirdCard *Card
}
