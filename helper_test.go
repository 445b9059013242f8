package stockmanager

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ntyt123/stock-manager-sub001/date"
)

// cmpOpts compares engine values by their numeric value.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Percent) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
	cmpopts.EquateEmpty(),
}

// d is a helper for test to create a date from a const string.
func d(s string) date.Date { return date.MustParse(s) }

// buy is a helper for test to create a buy of a test stock.
func buy(on, code string, qty, price, fee float64) Trade {
	return NewBuy(d(on), code, code+" Corp", Q(qty), M(price), M(fee))
}

// sell is a helper for test to create a sell of a test stock.
func sell(on, code string, qty, price, fee float64) Trade {
	return NewSell(d(on), code, code+" Corp", Q(qty), M(price), M(fee))
}

// pos is a helper for test to create a position without precomputed values.
func pos(code string, qty, cost, current float64) Position {
	return Position{
		StockCode:    code,
		StockName:    code + " Corp",
		Quantity:     Q(qty),
		CostPrice:    M(cost),
		CurrentPrice: M(current),
	}
}

// fixedClock returns a clock stuck on day s.
func fixedClock(s string) func() date.Date {
	on := d(s)
	return func() date.Date { return on }
}
