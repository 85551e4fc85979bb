package baccarat

import (
	"baccarat_backend/internal/model"
	"errors"
)

var ErrShoeExhausted = errors.New("not enough cards left in shoe")

// HandTotal is the sum of card values modulo 10.
func HandTotal(cards []model.Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Value
	}
	return sum % 10
}

func isNatural(total int) bool {
	return total == 8 || total == 9
}

// PlayerDraws reports whether the player takes a third card on a two-card total.
func PlayerDraws(playerTotal int) bool {
	return playerTotal <= 5
}

// BankerDraws applies the banker third-card table. playerThird is nil when
// the player stood.
func BankerDraws(bankerTotal int, playerThird *model.Card) bool {
	if playerThird == nil {
		return bankerTotal <= 5
	}

	p3 := playerThird.Value
	switch bankerTotal {
	case 0, 1, 2:
		return true
	case 3:
		return p3 != 8
	case 4:
		return p3 >= 2 && p3 <= 7
	case 5:
		return p3 >= 4 && p3 <= 7
	case 6:
		return p3 == 6 || p3 == 7
	default: // 7, 8, 9
		return false
	}
}

// DealHand plays one hand from the front of the shoe and returns the result
// together with the cards that remain. The input shoe is never modified.
func DealHand(shoe Shoe) (model.GameResult, Shoe, error) {
	if len(shoe) < 4 {
		return model.GameResult{}, shoe, ErrShoeExhausted
	}

	// Player, banker, player, banker
	playerCards := []model.Card{shoe[0], shoe[2]}
	bankerCards := []model.Card{shoe[1], shoe[3]}
	next := 4

	playerTotal := HandTotal(playerCards)
	bankerTotal := HandTotal(bankerCards)
	playerNatural := isNatural(playerTotal)
	bankerNatural := isNatural(bankerTotal)

	var playerThird, bankerThird *model.Card

	if !playerNatural && !bankerNatural {
		if PlayerDraws(playerTotal) {
			if next >= len(shoe) {
				return model.GameResult{}, shoe, ErrShoeExhausted
			}
			card := shoe[next]
			next++
			playerThird = &card
			playerCards = append(playerCards, card)
		}

		if BankerDraws(bankerTotal, playerThird) {
			if next >= len(shoe) {
				return model.GameResult{}, shoe, ErrShoeExhausted
			}
			card := shoe[next]
			next++
			bankerThird = &card
			bankerCards = append(bankerCards, card)
		}
	}

	finalPlayer := HandTotal(playerCards)
	finalBanker := HandTotal(bankerCards)

	var winner model.HandResult
	switch {
	case finalPlayer > finalBanker:
		winner = model.ResultPlayer
	case finalBanker > finalPlayer:
		winner = model.ResultBanker
	default:
		winner = model.ResultTie
	}

	remaining := make(Shoe, len(shoe)-next)
	copy(remaining, shoe[next:])

	return model.GameResult{
		PlayerHand: model.Hand{
			Cards:   playerCards,
			Total:   finalPlayer,
			Natural: playerNatural,
		},
		BankerHand: model.Hand{
			Cards:   bankerCards,
			Total:   finalBanker,
			Natural: bankerNatural,
		},
		Winner:          winner,
		PlayerThirdCard: playerThird,
		BankerThirdCard: bankerThird,
	}, remaining, nil
}
