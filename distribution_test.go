package stockmanager

import (
	"math"
	"testing"
)

func TestBandOf_Boundaries(t *testing.T) {
	testCases := []struct {
		rate Percent
		want string
	}{
		{-20.0001, "loss >20%"},
		{-20, "loss 10-20%"},
		{-10, "loss 5-10%"},
		{-5, "loss 0-5%"},
		{-0.0001, "loss 0-5%"},
		{0, "profit 0-5%"},
		{5, "profit 5-10%"},
		{19.9999, "profit 10-20%"},
		{20, "profit >20%"},
		{Percent(math.Inf(1)), "profit >20%"},
		{Percent(math.Inf(-1)), "loss >20%"},
	}
	for _, tc := range testCases {
		i := bandOf(tc.rate)
		if i < 0 {
			t.Errorf("bandOf(%v) = unclassified, want %q", float64(tc.rate), tc.want)
			continue
		}
		if got := bands[i].label; got != tc.want {
			t.Errorf("bandOf(%v) = %q, want %q", float64(tc.rate), got, tc.want)
		}
	}
}

func TestBucketize(t *testing.T) {
	rates := []Percent{-35, -20, -7.5, -1, 0, 0, 3, 12, 19.78, 20, 150}
	items := make([]RatedItem, 0, len(rates))
	for _, r := range rates {
		items = append(items, RatedItem{StockCode: "X", ProfitRate: r})
	}
	dist := Bucketize(items)

	wantCounts := []int{1, 1, 1, 1, 3, 0, 2, 2}
	total := 0
	for i, b := range dist.Buckets {
		total += b.Count
		if b.Count != wantCounts[i] {
			t.Errorf("bucket %q count = %d, want %d", b.Label, b.Count, wantCounts[i])
		}
		if len(b.Items) != b.Count {
			t.Errorf("bucket %q holds %d items, want %d", b.Label, len(b.Items), b.Count)
		}
	}
	if total != len(rates) || dist.Total != len(rates) {
		t.Errorf("Bucketize() classified %d of %d items (total %d)", total, len(rates), dist.Total)
	}
	if got := dist.Buckets[4].Percentage; !got.Equal(Percent(300.0 / 11)) {
		t.Errorf("profit 0-5%% percentage = %v, want %v", got, 300.0/11)
	}
}

func TestBucketize_Unclassified(t *testing.T) {
	dist := Bucketize([]RatedItem{
		{StockCode: "OK", ProfitRate: 1},
		{StockCode: "BAD", ProfitRate: Percent(math.NaN())},
	})
	if len(dist.Unclassified) != 1 || dist.Unclassified[0].StockCode != "BAD" {
		t.Fatalf("Bucketize() unclassified = %v, want [BAD]", dist.Unclassified)
	}
	if got := dist.Buckets[4].Percentage; !got.Equal(50) {
		t.Errorf("percentage = %v, want 50 (unclassified items count in the total)", got)
	}
}

func TestBucketize_Empty(t *testing.T) {
	dist := Bucketize(nil)
	if len(dist.Buckets) != 8 {
		t.Fatalf("Bucketize(nil) has %d buckets, want 8", len(dist.Buckets))
	}
	for _, b := range dist.Buckets {
		if b.Count != 0 || b.Percentage != 0 || b.Items == nil {
			t.Errorf("bucket %q = %+v, want zeroed", b.Label, b)
		}
	}
}
