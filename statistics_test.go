package stockmanager

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeRateStats(t *testing.T) {
	lots := []MatchedLot{
		{ProfitRate: 10},
		{ProfitRate: -5},
		{ProfitRate: 25},
		{ProfitRate: Percent(math.NaN())}, // ignored
	}
	got := ComputeRateStats(lots)
	want := RateStats{
		Count:  3,
		Mean:   10,
		StdDev: 15,
		Median: 10,
		Min:    -5,
		Max:    25,
	}
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Errorf("ComputeRateStats() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeRateStats_Small(t *testing.T) {
	if got := ComputeRateStats(nil); got != (RateStats{}) {
		t.Errorf("ComputeRateStats(nil) = %+v, want zero", got)
	}
	got := ComputeRateStats([]MatchedLot{{ProfitRate: 7}})
	if got.StdDev != 0 || got.Mean != 7 || got.Median != 7 {
		t.Errorf("ComputeRateStats(one) = %+v, want mean=median=7 and no deviation", got)
	}
}
