package stockmanager

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeUnrealized(t *testing.T) {
	got := ComputeUnrealized([]Position{
		pos("AAA", 100, 10, 9),
		pos("BBB", 50, 10, 12),
		pos("CCC", 10, 5, 5),
		pos("ZRO", 10, 0, 3),
	})

	want := Unrealized{
		Positions: []UnrealizedPosition{
			{StockCode: "BBB", StockName: "BBB Corp", Quantity: Q(50), CostPrice: M(10), CurrentPrice: M(12), Profit: M(100), ProfitRate: 20},
			{StockCode: "CCC", StockName: "CCC Corp", Quantity: Q(10), CostPrice: M(5), CurrentPrice: M(5), Profit: M(0), ProfitRate: 0},
			{StockCode: "ZRO", StockName: "ZRO Corp", Quantity: Q(10), CostPrice: M(0), CurrentPrice: M(3), Profit: M(30), ProfitRate: 0},
			{StockCode: "AAA", StockName: "AAA Corp", Quantity: Q(100), CostPrice: M(10), CurrentPrice: M(9), Profit: M(-100), ProfitRate: -10},
		},
		TotalProfit: M(30),
		ProfitCount: 2,
		LossCount:   1,
		AvgProfit:   M(7.5),
	}
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Errorf("ComputeUnrealized() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeUnrealized_IgnoresPrecomputedValues(t *testing.T) {
	p := pos("BBB", 50, 10, 12)
	stale := M(-999)
	p.ProfitLoss = &stale
	got := ComputeUnrealized([]Position{p})
	if !got.TotalProfit.Equal(M(100)) {
		t.Errorf("ComputeUnrealized() total = %v, want 100", got.TotalProfit)
	}
}

func TestComputeUnrealized_Empty(t *testing.T) {
	got := ComputeUnrealized(nil)
	if got.Positions == nil || !got.TotalProfit.IsZero() || !got.AvgProfit.IsZero() || got.ProfitCount != 0 {
		t.Errorf("ComputeUnrealized(nil) = %+v, want zeroed summary", got)
	}
}

func TestPosition_Valuation(t *testing.T) {
	mv, pl := M(650), M(150)
	testCases := []struct {
		name string
		in   Position
		want Valuation
	}{
		{
			name: "derived",
			in:   pos("BBB", 50, 10, 12),
			want: Valuation{CostValue: M(500), MarketValue: M(600), ProfitLoss: M(100), ProfitLossRate: 20},
		},
		{
			name: "precomputed",
			in: func() Position {
				p := pos("BBB", 50, 10, 12)
				p.MarketValue, p.ProfitLoss = &mv, &pl
				return p
			}(),
			want: Valuation{CostValue: M(500), MarketValue: M(650), ProfitLoss: M(150), ProfitLossRate: 30},
		},
		{
			name: "zero cost",
			in:   pos("FREE", 10, 0, 1),
			want: Valuation{CostValue: M(0), MarketValue: M(10), ProfitLoss: M(10), ProfitLossRate: 0},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.in.Valuation(), cmpOpts); diff != "" {
				t.Errorf("Valuation() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
