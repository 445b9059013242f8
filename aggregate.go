package stockmanager

import (
	"cmp"
	"slices"

	"github.com/ntyt123/stock-manager-sub001/date"
)

// PeriodAggregate is the realized and unrealized profit of one calendar period.
// Realized profit is recognized in the period of the sell date.
type PeriodAggregate struct {
	Key              string `json:"period_key"`
	RealizedProfit   Money  `json:"realized_profit"`
	UnrealizedProfit Money  `json:"unrealized_profit"`
	TotalProfit      Money  `json:"total_profit"`
	TradeCount       int    `json:"trade_count"`
	ProfitableCount  int    `json:"profitable_count"`
	LossCount        int    `json:"loss_count"`
}

// SuccessRate is the share of profitable lots among the period's lots.
func (a PeriodAggregate) SuccessRate() Percent { return share(a.ProfitableCount, a.TradeCount) }

// LossRate is the share of losing lots among the period's lots.
func (a PeriodAggregate) LossRate() Percent { return share(a.LossCount, a.TradeCount) }

// AggregateProfit groups lots by the period of their sell date. The result is
// sorted by key, latest period first.
func AggregateProfit(lots []MatchedLot, period date.Period) []PeriodAggregate {
	index := make(map[string]int)
	aggs := []PeriodAggregate{}
	for _, l := range lots {
		key := l.SellDate.Key(period)
		i, ok := index[key]
		if !ok {
			i = len(aggs)
			index[key] = i
			aggs = append(aggs, PeriodAggregate{Key: key})
		}
		a := &aggs[i]
		a.RealizedProfit = a.RealizedProfit.Add(l.Profit)
		a.TradeCount++
		switch l.Profit.Sign() {
		case 1:
			a.ProfitableCount++
		case -1:
			a.LossCount++
		}
	}
	for i := range aggs {
		aggs[i].TotalProfit = aggs[i].RealizedProfit.Add(aggs[i].UnrealizedProfit)
	}
	slices.SortFunc(aggs, func(a, b PeriodAggregate) int { return cmp.Compare(b.Key, a.Key) })
	return aggs
}

// WithUnrealized returns a copy of aggs where the period key carries the
// unrealized profit. The period is created if missing. The result is sorted
// latest first.
func WithUnrealized(aggs []PeriodAggregate, key string, profit Money) []PeriodAggregate {
	out := slices.Clone(aggs)
	i := slices.IndexFunc(out, func(a PeriodAggregate) bool { return a.Key == key })
	if i < 0 {
		out = append(out, PeriodAggregate{Key: key})
		i = len(out) - 1
	}
	out[i].UnrealizedProfit = profit
	out[i].TotalProfit = out[i].RealizedProfit.Add(profit)
	slices.SortFunc(out, func(a, b PeriodAggregate) int { return cmp.Compare(b.Key, a.Key) })
	return out
}

// CurvePoint is one point of the cumulative profit curve.
type CurvePoint struct {
	Date             date.Date `json:"date"`
	Profit           Money     `json:"profit"`
	CumulativeProfit Money     `json:"cumulative_profit"`
	IsUnrealized     bool      `json:"is_unrealized"`
}

// ProfitCurve accumulates realized profit day by day, by sell date, and ends
// with a point dated today that adds the current unrealized profit.
// That last point is always present, even for lots of a past period.
func ProfitCurve(lots []MatchedLot, unrealized Money, today date.Date) []CurvePoint {
	daily := AggregateProfit(lots, date.Daily)
	slices.Reverse(daily)

	curve := make([]CurvePoint, 0, len(daily)+1)
	var cumulative Money
	for _, a := range daily {
		cumulative = cumulative.Add(a.RealizedProfit)
		curve = append(curve, CurvePoint{
			Date:             date.MustParse(a.Key),
			Profit:           a.RealizedProfit,
			CumulativeProfit: cumulative,
		})
	}
	return append(curve, CurvePoint{
		Date:             today,
		Profit:           unrealized,
		CumulativeProfit: cumulative.Add(unrealized),
		IsUnrealized:     true,
	})
}

// Trend is the direction of a period over period change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// PeriodComparison compares the total profit of a period with the one before.
type PeriodComparison struct {
	Current        string  `json:"current"`
	Previous       string  `json:"previous"`
	CurrentProfit  Money   `json:"current_profit"`
	PreviousProfit Money   `json:"previous_profit"`
	Delta          Money   `json:"delta"`
	DeltaRate      Percent `json:"delta_rate"`
	Trend          Trend   `json:"trend"`
}

// ComparePeriods pairs each period with the previous one that has an
// aggregate, latest first. The rate is relative to the absolute previous
// profit, and 0 when the previous profit is 0.
func ComparePeriods(aggs []PeriodAggregate) []PeriodComparison {
	sorted := slices.Clone(aggs)
	slices.SortFunc(sorted, func(a, b PeriodAggregate) int { return cmp.Compare(b.Key, a.Key) })

	out := []PeriodComparison{}
	for i := 0; i+1 < len(sorted); i++ {
		cur, prev := sorted[i], sorted[i+1]
		delta := cur.TotalProfit.Sub(prev.TotalProfit)
		c := PeriodComparison{
			Current:        cur.Key,
			Previous:       prev.Key,
			CurrentProfit:  cur.TotalProfit,
			PreviousProfit: prev.TotalProfit,
			Delta:          delta,
			DeltaRate:      rate(delta, prev.TotalProfit.Abs()),
			Trend:          TrendFlat,
		}
		switch delta.Sign() {
		case 1:
			c.Trend = TrendUp
		case -1:
			c.Trend = TrendDown
		}
		out = append(out, c)
	}
	return out
}

// extremes returns the indexes of the greatest and the smallest items
// according to cmp, or -1 for an empty slice. Ties keep the first one found.
func extremes[T any](items []T, cmp func(a, b T) int) (maxIndex, minIndex int) {
	if len(items) == 0 {
		return -1, -1
	}
	for i := 1; i < len(items); i++ {
		if cmp(items[i], items[maxIndex]) > 0 {
			maxIndex = i
		}
		if cmp(items[i], items[minIndex]) < 0 {
			minIndex = i
		}
	}
	return maxIndex, minIndex
}

// BestWorst returns the periods with the highest and the lowest total profit,
// nil when aggs is empty. Among equal profits which one is returned is not
// specified.
func BestWorst(aggs []PeriodAggregate) (best, worst *PeriodAggregate) {
	hi, lo := extremes(aggs, func(a, b PeriodAggregate) int { return a.TotalProfit.Cmp(b.TotalProfit) })
	if hi < 0 {
		return nil, nil
	}
	b, w := aggs[hi], aggs[lo]
	return &b, &w
}

// QuarterStat is the activity of one calendar quarter.
type QuarterStat struct {
	Quarter    string `json:"quarter"`
	Profit     Money  `json:"profit"`
	Trades     int    `json:"trades"`
	StockCount int    `json:"stock_count"`
	AvgProfit  Money  `json:"avg_profit"`
}

// RollupQuarters sums, per quarter, the trades by trade date and the realized
// profit by sell date. The year is not considered: callers pass the trades
// and lots of a single year. The four quarters are always present.
func RollupQuarters(trades []Trade, lots []MatchedLot) []QuarterStat {
	stats := make([]QuarterStat, len(date.Quarters))
	stocks := make([]map[string]bool, len(date.Quarters))
	for i, q := range date.Quarters {
		stats[i].Quarter = q.String()
		stocks[i] = make(map[string]bool)
	}
	for _, t := range trades {
		i := int(t.Date.Quarter()) - 1
		stats[i].Trades++
		stocks[i][t.StockCode] = true
	}
	for _, l := range lots {
		i := int(l.SellDate.Quarter()) - 1
		stats[i].Profit = stats[i].Profit.Add(l.Profit)
	}
	for i := range stats {
		stats[i].StockCount = len(stocks[i])
		stats[i].AvgProfit = stats[i].Profit.Avg(stats[i].Trades)
	}
	return stats
}

// TradeActivity is the trading activity of one period, by trade date.
type TradeActivity struct {
	Key         string `json:"period_key"`
	Count       int    `json:"count"`
	BuyCount    int    `json:"buy_count"`
	SellCount   int    `json:"sell_count"`
	BuyAmount   Money  `json:"buy_amount"`
	SellAmount  Money  `json:"sell_amount"`
	TotalAmount Money  `json:"total_amount"`
	TotalFees   Money  `json:"total_fees"`
	StockCount  int    `json:"stock_count"`
}

// ActivityBy groups trades by the period of their trade date, latest first.
func ActivityBy(trades []Trade, period date.Period) []TradeActivity {
	index := make(map[string]int)
	var stocks []map[string]bool
	out := []TradeActivity{}
	for _, t := range trades {
		key := t.Date.Key(period)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, TradeActivity{Key: key})
			stocks = append(stocks, make(map[string]bool))
		}
		a := &out[i]
		a.Count++
		switch t.Type {
		case Buy:
			a.BuyCount++
			a.BuyAmount = a.BuyAmount.Add(t.Value())
		case Sell:
			a.SellCount++
			a.SellAmount = a.SellAmount.Add(t.Value())
		}
		a.TotalAmount = a.TotalAmount.Add(t.Value())
		a.TotalFees = a.TotalFees.Add(t.Fee)
		stocks[i][t.StockCode] = true
	}
	for i := range out {
		out[i].StockCount = len(stocks[i])
	}
	slices.SortFunc(out, func(a, b TradeActivity) int { return cmp.Compare(b.Key, a.Key) })
	return out
}

// Frequency summarises how often trades happen per period.
type Frequency struct {
	Periods    int             `json:"periods"`
	AvgTrades  float64         `json:"avg_trades"`
	MostActive string          `json:"most_active,omitempty"`
	MaxTrades  int             `json:"max_trades"`
	ByPeriod   []TradeActivity `json:"by_period"`
}

// TradeFrequency measures trading frequency per period. The most active period
// is the latest one among those with the most trades.
func TradeFrequency(trades []Trade, period date.Period) Frequency {
	f := Frequency{ByPeriod: ActivityBy(trades, period)}
	f.Periods = len(f.ByPeriod)
	if f.Periods == 0 {
		return f
	}
	hi, _ := extremes(f.ByPeriod, func(a, b TradeActivity) int { return cmp.Compare(a.Count, b.Count) })
	f.MostActive = f.ByPeriod[hi].Key
	f.MaxTrades = f.ByPeriod[hi].Count
	f.AvgTrades = float64(len(trades)) / float64(f.Periods)
	return f
}
