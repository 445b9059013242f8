package stockmanager

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RateStats describes the spread of a set of profit rates.
type RateStats struct {
	Count  int     `json:"count"`
	Mean   Percent `json:"mean"`
	StdDev Percent `json:"std_dev"`
	Median Percent `json:"median"`
	Min    Percent `json:"min"`
	Max    Percent `json:"max"`
}

// ComputeRateStats returns the statistics of the lots' profit rates. The
// standard deviation is the sample one and is 0 for fewer than two lots.
func ComputeRateStats(lots []MatchedLot) RateStats {
	rates := make([]float64, 0, len(lots))
	for _, l := range lots {
		if l.ProfitRate.IsFinite() {
			rates = append(rates, float64(l.ProfitRate))
		}
	}
	s := RateStats{Count: len(rates)}
	if len(rates) == 0 {
		return s
	}
	slices.Sort(rates)
	s.Mean = Percent(stat.Mean(rates, nil))
	if len(rates) > 1 {
		s.StdDev = Percent(stat.StdDev(rates, nil))
	}
	s.Median = Percent(stat.Quantile(0.5, stat.Empirical, rates, nil))
	s.Min = Percent(floats.Min(rates))
	s.Max = Percent(floats.Max(rates))
	return s
}
