package renderer

import (
	"fmt"
	"strings"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
)

// PositionMarkdown renders the position report.
func PositionMarkdown(r *stockmanager.PositionReport, currency string) string {
	p := printer{currency}
	var b strings.Builder
	s := r.Summary

	fmt.Fprint(&b, "# Position Report\n\n")
	summary := newTable("Positions", "Market Value", "Cost Value", "Profit/Loss", "Rate")
	summary.Row(count(s.TotalPositions), p.Money(s.TotalMarketValue), p.Money(s.TotalCostValue), p.Signed(s.TotalProfitLoss), s.TotalProfitLossRate.SignedString())
	summary.Print(&b)

	positions := newTable("Stock", "Industry", "Quantity", "Cost", "Price", "Market Value", "Weight", "Profit/Loss", "Rate")
	weights := make(map[string]stockmanager.Percent, len(r.PositionRatios))
	for _, ratio := range r.PositionRatios {
		weights[ratio.StockCode] = ratio.Ratio
	}
	for _, h := range r.Positions {
		positions.Row(
			stock(h.StockCode, h.StockName),
			h.Industry,
			h.Quantity.String(),
			p.Money(h.CostPrice),
			p.Money(h.CurrentPrice),
			p.Money(h.MarketValue),
			weights[h.StockCode].String(),
			p.Signed(h.ProfitLoss),
			h.ProfitLossRate.SignedString(),
		)
	}
	section(&b, "Positions", positions)

	industries := newTable("Industry", "Positions", "Market Value", "Weight", "Profit/Loss", "Rate")
	for _, i := range r.IndustryDistribution {
		industries.Row(i.Industry, count(i.Count), p.Money(i.MarketValue), i.Ratio.String(), p.Signed(i.ProfitLoss), i.ProfitLossRate.SignedString())
	}
	section(&b, "Industries", industries)

	costs := newTable("Stock", "Cost", "Price", "Change", "Change Rate")
	for _, c := range r.CostAnalysis {
		costs.Row(stock(c.StockCode, c.StockName), p.Money(c.CostPrice), p.Money(c.CurrentPrice), p.Signed(c.PriceChange), c.PriceChangeRate.SignedString())
	}
	section(&b, "Cost Analysis", costs)

	stats := r.ProfitLossStats
	if stats.TotalPositions > 0 {
		fmt.Fprint(&b, "## Profit and Loss\n\n")
		fmt.Fprintf(&b, "- Profitable positions: %d\n", len(stats.ProfitPositions))
		fmt.Fprintf(&b, "- Losing positions: %d\n", len(stats.LossPositions))
		fmt.Fprintf(&b, "- Flat positions: %d\n", len(stats.FlatPositions))
		fmt.Fprintf(&b, "- Average rate: %s\n", stats.AvgProfitLossRate.SignedString())
		if m := stats.MaxProfit; m != nil {
			fmt.Fprintf(&b, "- Largest profit: %s %s\n", stock(m.StockCode, m.StockName), p.Signed(m.ProfitLoss))
		}
		if m := stats.MaxLoss; m != nil {
			fmt.Fprintf(&b, "- Largest loss: %s %s\n", stock(m.StockCode, m.StockName), p.Signed(m.ProfitLoss))
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
