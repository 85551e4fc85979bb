package baccarat

import (
	"baccarat_backend/internal/model"
	"math"
	"math/rand/v2"
	"testing"
)

func TestParseOutcomes(t *testing.T) {
	got := ParseOutcomes("b p, T x\nPb")
	want := []model.HandResult{
		model.ResultBanker, model.ResultPlayer, model.ResultTie, model.ResultPlayer, model.ResultBanker,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d outcomes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("outcome %d = %s, want %s", i, got[i], want[i])
		}
	}

	if garbage := ParseOutcomes("xyz 123"); len(garbage) != 0 {
		t.Errorf("expected empty result for garbage, got %v", garbage)
	}
}

func TestOutcomesRoundTrip(t *testing.T) {
	results := GenerateOutcomes(200, rand.New(rand.NewPCG(3, 4)))
	text := FormatOutcomes(results)
	if len(text) != 200 {
		t.Fatalf("expected 200 characters, got %d", len(text))
	}

	back := ParseOutcomes(text)
	for i := range results {
		if back[i] != results[i] {
			t.Fatalf("hand %d: %s after round trip, want %s", i, back[i], results[i])
		}
	}
}

func TestGenerateOutcomes_Distribution(t *testing.T) {
	const hands = 100_000
	results := GenerateOutcomes(hands, rand.New(rand.NewPCG(42, 1)))

	counts := make(map[model.HandResult]int)
	for _, r := range results {
		counts[r]++
	}

	for outcome, want := range Probabilities {
		got := float64(counts[outcome]) / hands * 100
		if math.Abs(got-want) > 1.0 {
			t.Errorf("%s frequency %.2f%%, want %.2f%% +/- 1", outcome, got, want)
		}
	}
}

func TestDealOutcomes(t *testing.T) {
	results, games := DealOutcomes(80, DefaultDecks, rand.New(rand.NewPCG(5, 6)))
	if len(results) != 80 || len(games) != 80 {
		t.Fatalf("expected 80 hands, got %d results and %d games", len(results), len(games))
	}

	for i, g := range games {
		if g.Winner != results[i] {
			t.Fatalf("hand %d winner %s does not match outcome %s", i, g.Winner, results[i])
		}
		p, b := g.PlayerHand.Total, g.BankerHand.Total
		switch {
		case p > b && g.Winner != model.ResultPlayer,
			b > p && g.Winner != model.ResultBanker,
			p == b && g.Winner != model.ResultTie:
			t.Fatalf("hand %d: totals %d/%d but winner %s", i, p, b, g.Winner)
		}
	}
}

func TestDealOutcomes_StopsWhenShoeRunsOut(t *testing.T) {
	// one deck holds at most 13 hands
	results, _ := DealOutcomes(100, 1, rand.New(rand.NewPCG(9, 9)))
	if len(results) == 0 || len(results) > 13 {
		t.Errorf("expected between 1 and 13 hands from one deck, got %d", len(results))
	}
}
