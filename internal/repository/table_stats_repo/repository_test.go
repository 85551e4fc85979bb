package table_stats_repo

import (
	"baccarat_backend/internal/model"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestRecordHand(t *testing.T) {
	r := NewTableStatsRepository(10)
	r.RecordHand(model.BetPlayer, model.ResultPlayer, d(100), d(100))
	r.RecordHand(model.BetPlayer, model.ResultBanker, d(100), d(-100))

	st := r.TableState()
	if st.TotalHands != 2 || st.PlayerWins != 1 || st.BankerWins != 1 {
		t.Errorf("unexpected counts %+v", st)
	}
	if !st.TotalWagered.Equal(d(200)) || !st.TotalPayout.IsZero() {
		t.Errorf("unexpected totals wagered=%s payout=%s", st.TotalWagered, st.TotalPayout)
	}
	if st.CurrentRTP != 100 || st.WindowRTP != 100 {
		t.Errorf("expected RTP 100, got %.2f / %.2f", st.CurrentRTP, st.WindowRTP)
	}
}

func TestRevertHand(t *testing.T) {
	r := NewTableStatsRepository(10)
	r.RecordHand(model.BetBanker, model.ResultBanker, d(100), decimal.RequireFromString("95"))
	before := r.TableState()

	r.RecordHand(model.BetBanker, model.ResultTie, d(200), decimal.Zero)
	r.RevertHand(model.BetBanker, model.ResultTie, d(200), decimal.Zero)

	after := r.TableState()
	if after.TotalHands != before.TotalHands || after.Ties != 0 || len(after.HandWindow) != 1 {
		t.Errorf("revert did not restore state: %+v", after)
	}
	if !after.TotalWagered.Equal(before.TotalWagered) || after.WindowRTP != before.WindowRTP {
		t.Errorf("revert did not restore totals: %+v", after)
	}

	empty := NewTableStatsRepository(10)
	empty.RevertHand(model.BetPlayer, model.ResultPlayer, d(1), d(1))
	if empty.TableState().TotalHands != 0 {
		t.Error("reverting an empty table must be a no-op")
	}
}

func TestWindowIsBounded(t *testing.T) {
	r := NewTableStatsRepository(3)
	for i := 0; i < 5; i++ {
		r.RecordHand(model.BetPlayer, model.ResultBanker, d(10), d(-10))
	}
	st := r.TableState()
	if len(st.HandWindow) != 3 || st.TotalHands != 5 {
		t.Errorf("window %d hands, total %d", len(st.HandWindow), st.TotalHands)
	}
	if st.WindowRTP != 0 {
		t.Errorf("expected window RTP 0, got %.2f", st.WindowRTP)
	}
}

func TestConcurrentRecord(t *testing.T) {
	r := NewTableStatsRepository(50)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				r.RecordHand(model.BetPlayer, model.ResultPlayer, d(10), d(10))
			}
		}()
	}
	wg.Wait()

	if got := r.TableState().TotalHands; got != 200 {
		t.Errorf("expected 200 hands, got %d", got)
	}
}
