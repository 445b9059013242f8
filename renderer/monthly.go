package renderer

import (
	"fmt"
	"strings"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
)

// MonthlyMarkdown renders the monthly report.
func MonthlyMarkdown(r *stockmanager.MonthlyReport, currency string) string {
	p := printer{currency}
	var b strings.Builder

	fmt.Fprint(&b, "# Monthly Report\n\n")

	profit := newTable("Month", "Realized", "Unrealized", "Total", "Closed", "Success")
	for _, a := range r.MonthlyProfit {
		profit.Row(a.Key, p.Signed(a.RealizedProfit), p.Signed(a.UnrealizedProfit), p.Signed(a.TotalProfit), count(a.TradeCount), a.SuccessRate().String())
	}
	section(&b, "Profit", profit)

	if r.BestMonth != nil && r.WorstMonth != nil {
		fmt.Fprintf(&b, "Best month: %s (%s). Worst month: %s (%s).\n\n",
			r.BestMonth.Month, p.Signed(r.BestMonth.Profit), r.WorstMonth.Month, p.Signed(r.WorstMonth.Profit))
	}

	changes := newTable("Month", "Previous", "Change", "Rate", "Trend")
	for _, c := range r.Comparison {
		changes.Row(c.Current, c.Previous, p.Signed(c.Delta), c.DeltaRate.SignedString(), string(c.Trend))
	}
	section(&b, "Month over Month", changes)

	trades := newTable("Month", "Trades", "Buys", "Sells", "Amount", "Fees", "Stocks")
	for _, a := range r.MonthlyTrades {
		trades.Row(a.Key, count(a.Count), count(a.BuyCount), count(a.SellCount), p.Money(a.TotalAmount), p.Money(a.TotalFees), count(a.StockCount))
	}
	section(&b, "Trades", trades)

	review := newTable("Month", "Profit", "Trades", "Stocks", "Most Active")
	for _, m := range r.Review {
		active := ""
		if s := m.MostActiveStock; s != nil {
			active = stock(s.StockCode, s.StockName)
		}
		review.Row(m.Month, p.Signed(m.TotalProfit), count(m.TradeCount), count(m.StockCount), active)
	}
	section(&b, "Review", review)

	oversold(&b, r.Oversold)
	return b.String()
}
