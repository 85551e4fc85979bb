package baccarat

import (
	"baccarat_backend/internal/model"
	"math/rand/v2"
)

// DefaultDecks is the number of decks in a standard baccarat shoe.
const DefaultDecks = 8

// Shoe is an ordered run of cards consumed from the front.
type Shoe []model.Card

// NewDeck returns a fresh 52-card deck in suit/rank order.
func NewDeck() []model.Card {
	deck := make([]model.Card, 0, len(model.Suits)*len(model.Ranks))
	for _, suit := range model.Suits {
		for _, rank := range model.Ranks {
			deck = append(deck, model.NewCard(suit, rank))
		}
	}
	return deck
}

// NewShoe builds a shuffled shoe of the given number of decks.
func NewShoe(decks int, rng *rand.Rand) Shoe {
	if decks < 1 {
		decks = DefaultDecks
	}
	shoe := make(Shoe, 0, decks*52)
	for i := 0; i < decks; i++ {
		shoe = append(shoe, NewDeck()...)
	}
	return Shuffle(shoe, rng)
}

// Shuffle returns a Fisher-Yates shuffled copy; the input is left untouched.
func Shuffle(cards Shoe, rng *rand.Rand) Shoe {
	shuffled := make(Shoe, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
