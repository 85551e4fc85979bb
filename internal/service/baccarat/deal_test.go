package baccarat

import (
	"baccarat_backend/internal/model"
	"errors"
	"testing"
)

var valueRanks = map[int]model.Rank{
	0: model.RankKing, 1: model.RankAce, 2: model.RankTwo, 3: model.RankThree,
	4: model.RankFour, 5: model.RankFive, 6: model.RankSix, 7: model.RankSeven,
	8: model.RankEight, 9: model.RankNine,
}

func cardOf(value int) model.Card {
	return model.NewCard(model.SuitSpades, valueRanks[value])
}

func shoeOf(values ...int) Shoe {
	shoe := make(Shoe, 0, len(values))
	for _, v := range values {
		shoe = append(shoe, cardOf(v))
	}
	return shoe
}

func TestBankerDraws_ThirdCardTable(t *testing.T) {
	// player third card values on which the banker draws, by banker total
	drawsOn := []string{
		0: "0123456789",
		1: "0123456789",
		2: "0123456789",
		3: "012345679",
		4: "234567",
		5: "4567",
		6: "67",
		7: "",
		8: "",
		9: "",
	}

	for total, values := range drawsOn {
		for p3 := 0; p3 <= 9; p3++ {
			card := cardOf(p3)
			want := false
			for _, ch := range values {
				if int(ch-'0') == p3 {
					want = true
				}
			}
			if got := BankerDraws(total, &card); got != want {
				t.Errorf("banker %d, player third %d: draws=%v, want %v", total, p3, got, want)
			}
		}
	}
}

func TestBankerDraws_PlayerStood(t *testing.T) {
	for total := 0; total <= 9; total++ {
		want := total <= 5
		if got := BankerDraws(total, nil); got != want {
			t.Errorf("banker %d after player stood: draws=%v, want %v", total, got, want)
		}
	}
}

func TestDealHand(t *testing.T) {
	tests := []struct {
		name         string
		shoe         Shoe
		winner       model.HandResult
		playerTotal  int
		bankerTotal  int
		playerThird  bool
		bankerThird  bool
		natural      bool
		remainingLen int
	}{
		{
			name:         "player natural stops drawing",
			shoe:         shoeOf(9, 5, 0, 2, 4, 4),
			winner:       model.ResultPlayer,
			playerTotal:  9,
			bankerTotal:  7,
			natural:      true,
			remainingLen: 2,
		},
		{
			name:         "both stand",
			shoe:         shoeOf(7, 6, 0, 0),
			winner:       model.ResultPlayer,
			playerTotal:  7,
			bankerTotal:  6,
			remainingLen: 0,
		},
		{
			name:         "banker three stands on player eight",
			shoe:         shoeOf(2, 1, 3, 2, 8, 5),
			winner:       model.ResultTie,
			playerTotal:  3,
			bankerTotal:  3,
			playerThird:  true,
			remainingLen: 1,
		},
		{
			name:         "banker six draws on player six",
			shoe:         shoeOf(0, 3, 0, 3, 6, 2),
			winner:       model.ResultBanker,
			playerTotal:  6,
			bankerTotal:  8,
			playerThird:  true,
			bankerThird:  true,
			remainingLen: 0,
		},
		{
			name:         "player stood banker draws on five",
			shoe:         shoeOf(6, 2, 0, 3, 1),
			winner:       model.ResultTie,
			playerTotal:  6,
			bankerTotal:  6,
			bankerThird:  true,
			remainingLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, rest, err := DealHand(tt.shoe)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if game.Winner != tt.winner {
				t.Errorf("winner = %s, want %s", game.Winner, tt.winner)
			}
			if game.PlayerHand.Total != tt.playerTotal {
				t.Errorf("player total = %d, want %d", game.PlayerHand.Total, tt.playerTotal)
			}
			if game.BankerHand.Total != tt.bankerTotal {
				t.Errorf("banker total = %d, want %d", game.BankerHand.Total, tt.bankerTotal)
			}
			if (game.PlayerThirdCard != nil) != tt.playerThird {
				t.Errorf("player third card drawn = %v, want %v", game.PlayerThirdCard != nil, tt.playerThird)
			}
			if (game.BankerThirdCard != nil) != tt.bankerThird {
				t.Errorf("banker third card drawn = %v, want %v", game.BankerThirdCard != nil, tt.bankerThird)
			}
			if game.PlayerHand.Natural != tt.natural {
				t.Errorf("player natural = %v, want %v", game.PlayerHand.Natural, tt.natural)
			}
			if len(rest) != tt.remainingLen {
				t.Errorf("remaining = %d cards, want %d", len(rest), tt.remainingLen)
			}
		})
	}
}

func TestDealHand_ShortShoe(t *testing.T) {
	if _, _, err := DealHand(shoeOf(1, 2, 3)); !errors.Is(err, ErrShoeExhausted) {
		t.Fatalf("expected ErrShoeExhausted, got %v", err)
	}

	// player 0 must draw but no card is left
	shoe := shoeOf(0, 7, 0, 0)
	_, rest, err := DealHand(shoe)
	if !errors.Is(err, ErrShoeExhausted) {
		t.Fatalf("expected ErrShoeExhausted, got %v", err)
	}
	if len(rest) != len(shoe) {
		t.Errorf("shoe should be returned unchanged, got %d cards", len(rest))
	}
}

func TestDealHand_DoesNotMutateInput(t *testing.T) {
	shoe := shoeOf(0, 3, 0, 3, 6, 2, 9)
	before := make(Shoe, len(shoe))
	copy(before, shoe)

	if _, _, err := DealHand(shoe); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range shoe {
		if shoe[i] != before[i] {
			t.Fatalf("card %d changed from %v to %v", i, before[i], shoe[i])
		}
	}
}
