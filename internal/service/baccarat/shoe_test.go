package baccarat

import (
	"baccarat_backend/internal/model"
	"math/rand/v2"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(deck))
	}

	total := 0
	for _, c := range deck {
		total += c.Value
	}
	// four suits of A..9 = 4 * 45
	if total != 180 {
		t.Errorf("expected total value 180, got %d", total)
	}
}

func TestNewShoe(t *testing.T) {
	shoe := NewShoe(DefaultDecks, rand.New(rand.NewPCG(1, 2)))
	if len(shoe) != 416 {
		t.Fatalf("expected 416 cards, got %d", len(shoe))
	}

	counts := make(map[model.Card]int)
	for _, c := range shoe {
		counts[c]++
	}
	if len(counts) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(counts))
	}
	for c, n := range counts {
		if n != DefaultDecks {
			t.Errorf("card %s appears %d times, want %d", c, n, DefaultDecks)
		}
	}
}

func TestShuffle_LeavesInputIntact(t *testing.T) {
	deck := Shoe(NewDeck())
	first := deck[0]

	shuffled := Shuffle(deck, rand.New(rand.NewPCG(7, 7)))
	if len(shuffled) != len(deck) {
		t.Fatalf("shuffle changed length: %d", len(shuffled))
	}
	if deck[0] != first {
		t.Error("input deck was modified")
	}
}
