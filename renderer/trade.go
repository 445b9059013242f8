package renderer

import (
	"fmt"
	"strings"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
)

// TradeMarkdown renders the trade report.
func TradeMarkdown(r *stockmanager.TradeReport, currency string) string {
	p := printer{currency}
	var b strings.Builder
	s := r.Summary

	fmt.Fprint(&b, "# Trade Report\n\n")
	switch {
	case r.From != nil && r.To != nil:
		fmt.Fprintf(&b, "*From %s to %s*\n\n", r.From, r.To)
	case r.From != nil:
		fmt.Fprintf(&b, "*Since %s*\n\n", r.From)
	case r.To != nil:
		fmt.Fprintf(&b, "*Until %s*\n\n", r.To)
	}

	summary := newTable("Trades", "Buys", "Sells", "Bought", "Sold", "Fees", "Stocks")
	summary.Row(count(s.TotalTrades), count(s.BuyCount), count(s.SellCount), p.Money(s.BuyAmount), p.Money(s.SellAmount), p.Money(s.TotalFees), count(s.StockCount))
	summary.Print(&b)

	stocks := newTable("Stock", "Trades", "Bought", "Sold", "Fees")
	for _, rec := range r.TradeRecords {
		stocks.Row(stock(rec.StockCode, rec.StockName), count(rec.TotalTrades), p.Money(rec.BuyAmount), p.Money(rec.SellAmount), p.Money(rec.TotalFees))
	}
	section(&b, "Stocks", stocks)

	fees := newTable("Stock", "Trades", "Buy Fees", "Sell Fees", "Total")
	for _, f := range r.FeeStats.ByStock {
		fees.Row(stock(f.StockCode, f.StockName), count(f.TradeCount), p.Money(f.BuyFees), p.Money(f.SellFees), p.Money(f.TotalFees))
	}
	section(&b, "Fees", fees)

	months := newTable("Month", "Trades", "Buys", "Sells", "Amount")
	for _, a := range r.Frequency.Monthly.ByPeriod {
		months.Row(a.Key, count(a.Count), count(a.BuyCount), count(a.SellCount), p.Money(a.TotalAmount))
	}
	section(&b, "Activity", months)

	if f := r.Frequency.Monthly; f.Periods > 0 {
		fmt.Fprintf(&b, "Most active month: %s with %d trades, %.1f trades per active month on average.\n\n", f.MostActive, f.MaxTrades, f.AvgTrades)
	}

	sr := r.SuccessRate
	if sr.TotalPairedTrades > 0 {
		fmt.Fprint(&b, "## Success Rate\n\n")
		fmt.Fprintf(&b, "%d of %d closed trades were profitable (%s), for a total of %s.\n\n",
			sr.ProfitableTrades, sr.TotalPairedTrades, sr.SuccessRatePercent, p.Signed(sr.TotalProfit))
	}

	oversold(&b, r.Oversold)
	return b.String()
}
