package baccarat

import (
	"baccarat_backend/internal/model"
	"math/rand/v2"
	"strings"
)

// ParseOutcomes reads a B/P/T shoe. Case is ignored and every other character
// is dropped, so garbage input yields an empty slice.
func ParseOutcomes(data string) []model.HandResult {
	results := make([]model.HandResult, 0, len(data))
	for _, ch := range strings.ToUpper(data) {
		switch ch {
		case 'B':
			results = append(results, model.ResultBanker)
		case 'P':
			results = append(results, model.ResultPlayer)
		case 'T':
			results = append(results, model.ResultTie)
		}
	}
	return results
}

// FormatOutcomes writes one uppercase letter per hand with no separators.
func FormatOutcomes(results []model.HandResult) string {
	var sb strings.Builder
	sb.Grow(len(results))
	for _, r := range results {
		sb.WriteByte(r.Code())
	}
	return sb.String()
}

// GenerateOutcomes draws i.i.d. outcomes from the probability table.
func GenerateOutcomes(hands int, rng *rand.Rand) []model.HandResult {
	if hands < 0 {
		hands = 0
	}
	banker := Probabilities[model.ResultBanker]
	player := Probabilities[model.ResultPlayer]

	results := make([]model.HandResult, 0, hands)
	for i := 0; i < hands; i++ {
		roll := rng.Float64() * 100
		switch {
		case roll < banker:
			results = append(results, model.ResultBanker)
		case roll < banker+player:
			results = append(results, model.ResultPlayer)
		default:
			results = append(results, model.ResultTie)
		}
	}
	return results
}

// DealOutcomes deals up to hands hands from a shuffled card shoe. It stops
// early when the shoe runs out and also returns the resolved hands.
func DealOutcomes(hands, decks int, rng *rand.Rand) ([]model.HandResult, []model.GameResult) {
	shoe := NewShoe(decks, rng)
	results := make([]model.HandResult, 0, hands)
	games := make([]model.GameResult, 0, hands)
	for i := 0; i < hands; i++ {
		game, rest, err := DealHand(shoe)
		if err != nil {
			break
		}
		shoe = rest
		results = append(results, game.Winner)
		games = append(games, game)
	}
	return results, games
}
