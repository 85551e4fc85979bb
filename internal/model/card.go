package model

type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

type Rank string

const (
	RankAce   Rank = "A"
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
)

var (
	Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}
	Ranks = []Rank{
		RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
		RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
	}
)

var suitSymbols = map[Suit]string{
	SuitHearts:   "♥",
	SuitDiamonds: "♦",
	SuitClubs:    "♣",
	SuitSpades:   "♠",
}

// Card is an immutable playing card with its baccarat point value.
type Card struct {
	Suit  Suit
	Rank  Rank
	Value int
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank, Value: CardValue(rank)}
}

// CardValue returns the baccarat point value of a rank.
// 10/J/Q/K count 0, A counts 1, the rest their face number.
func CardValue(rank Rank) int {
	switch rank {
	case RankAce:
		return 1
	case RankTwo:
		return 2
	case RankThree:
		return 3
	case RankFour:
		return 4
	case RankFive:
		return 5
	case RankSix:
		return 6
	case RankSeven:
		return 7
	case RankEight:
		return 8
	case RankNine:
		return 9
	default: // 10, J, Q, K
		return 0
	}
}

// String returns a display form like "A♥".
func (c Card) String() string {
	return string(c.Rank) + suitSymbols[c.Suit]
}
