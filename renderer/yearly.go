package renderer

import (
	"fmt"
	"io"
	"strings"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
)

// YearlyMarkdown renders the yearly report.
func YearlyMarkdown(r *stockmanager.YearlyReport, currency string) string {
	p := printer{currency}
	var b strings.Builder
	s := r.Summary

	fmt.Fprintf(&b, "# Yearly Report %d\n\n", r.Year)
	summary := newTable("", "Amount")
	summary.Row("Invested", p.Money(s.TotalInvestment))
	summary.Row("Revenue", p.Money(s.TotalRevenue))
	summary.Row("Fees", p.Money(s.TotalFees))
	summary.Row("Realized", p.Signed(s.RealizedProfit))
	summary.Row("Unrealized", p.Signed(s.UnrealizedProfit))
	summary.Row("**Total**", "**"+p.Signed(s.TotalProfit)+"**")
	summary.Print(&b)
	fmt.Fprintf(&b, "Return %s, success rate %s.\n\n", s.ReturnRate.SignedString(), s.SuccessRate)

	quarters := newTable("Quarter", "Profit", "Trades", "Stocks")
	for _, q := range r.Review.Quarterly {
		quarters.Row(q.Quarter, p.Signed(q.Profit), count(q.Trades), count(q.StockCount))
	}
	section(&b, "Quarters", quarters)

	months := newTable("Month", "Trades", "Buys", "Sells", "Amount")
	for _, m := range r.Trades.ByMonth {
		months.Row(m.Month.String(), count(m.Count), count(m.BuyCount), count(m.SellCount), p.Money(m.Amount))
	}
	section(&b, "Activity", months)

	active := newTable("Stock", "Trades", "Amount", "Profit")
	for _, a := range r.Review.MostActiveStocks {
		active.Row(stock(a.StockCode, a.StockName), count(a.TradeCount), p.Money(a.TotalAmount), p.Signed(a.Profit))
	}
	section(&b, "Most Active Stocks", active)

	lots(&b, p, "Top Profits", r.ProfitLoss.TopProfitTrades)
	lots(&b, p, "Top Losses", r.ProfitLoss.TopLossTrades)
	distribution(&b, r.ProfitLoss.Distribution)

	bw := r.BestWorst
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "## Highlights\n\n")
		printed := false
		highlight := func(label string, l *stockmanager.MatchedLot) {
			if l == nil {
				return
			}
			printed = true
			fmt.Fprintf(w, "- %s: %s, %s to %s, %s (%s)\n", label, stock(l.StockCode, l.StockName),
				l.BuyDate, l.SellDate, p.Signed(l.Profit), l.ProfitRate.SignedString())
		}
		highlight("Best trade", bw.BestTrade)
		highlight("Worst trade", bw.WorstTrade)
		highlight("Best rate", bw.BestProfitRate)
		highlight("Worst rate", bw.WorstProfitRate)
		highlight("Longest hold", bw.LongestHold)
		highlight("Shortest hold", bw.ShortestHold)
		fmt.Fprintln(w)
		return printed
	})

	oversold(&b, r.Oversold)
	return b.String()
}

func lots(w io.Writer, p printer, title string, items []stockmanager.MatchedLot) {
	t := newTable("Stock", "Bought", "Sold", "Quantity", "Profit", "Rate")
	for _, l := range items {
		t.Row(stock(l.StockCode, l.StockName), l.BuyDate.String(), l.SellDate.String(), l.Quantity.String(), p.Signed(l.Profit), l.ProfitRate.SignedString())
	}
	section(w, title, t)
}
