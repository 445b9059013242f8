package stockmanager

import (
	"slices"

	"github.com/ntyt123/stock-manager-sub001/date"
)

// MonthlyReport rolls profits and trades up per month, latest month first.
type MonthlyReport struct {
	MonthlyProfit []PeriodAggregate  `json:"monthly_profit"`
	MonthlyTrades []TradeActivity    `json:"monthly_trades"`
	Comparison    []PeriodComparison `json:"monthly_comparison"`
	BestMonth     *MonthHighlight    `json:"best_month"`
	WorstMonth    *MonthHighlight    `json:"worst_month"`
	Review        []MonthReview      `json:"monthly_review"`
	Oversold      []Oversell         `json:"oversold"`
}

// MonthHighlight is the best or the worst month.
type MonthHighlight struct {
	Month            string  `json:"month"`
	Profit           Money   `json:"profit"`
	TradeCount       int     `json:"trade_count"`
	ProfitableTrades int     `json:"profitable_trades"`
	LossTrades       int     `json:"loss_trades"`
	SuccessRate      Percent `json:"success_rate"`
	LossRate         Percent `json:"loss_rate"`
}

// MonthReview is the structured review of one month.
type MonthReview struct {
	Month           string         `json:"month"`
	TotalProfit     Money          `json:"total_profit"`
	TradeCount      int            `json:"trade_count"`
	StockCount      int            `json:"stock_count"`
	MostActiveStock *StockActivity `json:"most_active_stock"`
	Summary         ReviewSummary  `json:"summary"`
}

// ReviewSummary gives the closed pairings of a month.
type ReviewSummary struct {
	ProfitableTrades int     `json:"profitable_trades"`
	LossTrades       int     `json:"loss_trades"`
	SuccessRate      Percent `json:"success_rate"`
}

// MonthlyReport groups realized profit by sell month and trades by trade
// month. When positions are held, their unrealized profit is added to the
// reporter's current month, which is created if needed.
func (r *Reporter) MonthlyReport(trades []Trade, positions []Position) *MonthlyReport {
	m := r.match(trades)
	profit := AggregateProfit(m.Lots, date.Monthly)
	if len(positions) > 0 {
		profit = WithUnrealized(profit, r.now().Key(date.Monthly), ComputeUnrealized(positions).TotalProfit)
	}

	report := &MonthlyReport{
		MonthlyProfit: profit,
		MonthlyTrades: ActivityBy(trades, date.Monthly),
		Comparison:    ComparePeriods(profit),
		Review:        monthlyReview(trades, profit),
		Oversold:      m.Oversold,
	}
	if best, worst := BestWorst(profit); best != nil {
		report.BestMonth = highlight(*best)
		report.WorstMonth = highlight(*worst)
	}
	r.log.Debug().Int("trades", len(trades)).Int("months", len(profit)).Msg("monthly report")
	return report
}

func highlight(a PeriodAggregate) *MonthHighlight {
	return &MonthHighlight{
		Month:            a.Key,
		Profit:           a.TotalProfit,
		TradeCount:       a.TradeCount,
		ProfitableTrades: a.ProfitableCount,
		LossTrades:       a.LossCount,
		SuccessRate:      a.SuccessRate(),
		LossRate:         a.LossRate(),
	}
}

// monthlyReview reviews every month that has a profit aggregate. The trades of
// a review are those dated in the month.
func monthlyReview(trades []Trade, profit []PeriodAggregate) []MonthReview {
	byMonth := make(map[string][]Trade)
	for _, t := range trades {
		key := t.Date.Key(date.Monthly)
		byMonth[key] = append(byMonth[key], t)
	}

	reviews := make([]MonthReview, 0, len(profit))
	for _, a := range profit {
		monthTrades := byMonth[a.Key]
		stocks := activityByStock(monthTrades)
		review := MonthReview{
			Month:       a.Key,
			TotalProfit: a.TotalProfit,
			TradeCount:  len(monthTrades),
			StockCount:  len(stocks),
			Summary: ReviewSummary{
				ProfitableTrades: a.ProfitableCount,
				LossTrades:       a.LossCount,
				SuccessRate:      a.SuccessRate(),
			},
		}
		if len(stocks) > 0 {
			slices.SortStableFunc(stocks, func(a, b StockActivity) int { return b.TradeCount() - a.TradeCount() })
			review.MostActiveStock = &stocks[0]
		}
		reviews = append(reviews, review)
	}
	return reviews
}
