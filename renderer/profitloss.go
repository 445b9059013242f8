package renderer

import (
	"fmt"
	"io"
	"strings"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
)

// ProfitLossMarkdown renders the profit and loss report.
func ProfitLossMarkdown(r *stockmanager.ProfitLossReport, currency string) string {
	p := printer{currency}
	var b strings.Builder
	s := r.TotalSummary

	fmt.Fprint(&b, "# Profit and Loss Report\n\n")
	summary := newTable("", "Amount", "Count")
	summary.Row("Realized", p.Signed(s.RealizedProfit), count(s.RealizedTrades))
	summary.Row("Unrealized", p.Signed(s.UnrealizedProfit), count(s.UnrealizedPositions))
	summary.Row("**Total**", "**"+p.Signed(s.TotalProfit)+"**", "")
	summary.Print(&b)

	realized := newTable("Stock", "Bought", "Sold", "Quantity", "Buy", "Sell", "Days", "Profit", "Rate")
	for _, l := range r.Realized.Lots {
		realized.Row(stock(l.StockCode, l.StockName), l.BuyDate.String(), l.SellDate.String(), l.Quantity.String(),
			p.Money(l.BuyPrice), p.Money(l.SellPrice), count(l.HoldDays), p.Signed(l.Profit), l.ProfitRate.SignedString())
	}
	section(&b, "Realized", realized)

	unrealized := newTable("Stock", "Quantity", "Cost", "Price", "Profit", "Rate")
	for _, u := range r.Unrealized.Positions {
		unrealized.Row(stock(u.StockCode, u.StockName), u.Quantity.String(), p.Money(u.CostPrice), p.Money(u.CurrentPrice), p.Signed(u.Profit), u.ProfitRate.SignedString())
	}
	section(&b, "Unrealized", unrealized)

	distribution(&b, r.Distribution)

	if st := r.RateStats; st.Count > 0 {
		fmt.Fprint(&b, "## Realized Rates\n\n")
		t := newTable("Trades", "Mean", "Median", "Std Dev", "Min", "Max")
		t.Row(count(st.Count), st.Mean.SignedString(), st.Median.SignedString(), st.StdDev.String(), st.Min.SignedString(), st.Max.SignedString())
		t.Print(&b)
	}

	oversold(&b, r.Oversold)
	return b.String()
}

// distribution prints the non empty bands.
func distribution(w io.Writer, d stockmanager.Distribution) {
	t := newTable("Band", "Count", "Share")
	for _, bucket := range d.Buckets {
		if bucket.Count == 0 {
			continue
		}
		t.Row(bucket.Label, count(bucket.Count), bucket.Percentage.String())
	}
	section(w, "Distribution", t)
}
