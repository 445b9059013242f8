package stockmanager

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/ntyt123/stock-manager-sub001/date"
)

// topTrades is the length of the top profit, top loss and most active lists.
const topTrades = 10

// YearlyReport reviews one calendar year.
type YearlyReport struct {
	Year           int              `json:"year"`
	Summary        YearlySummary    `json:"yearly_summary"`
	Trades         YearlyTrades     `json:"yearly_trades"`
	ProfitLoss     YearlyProfitLoss `json:"yearly_profit_loss"`
	BestWorst      BestWorstTrades  `json:"best_worst_trades"`
	Review         YearlyReview     `json:"yearly_review"`
	AvailableYears []int            `json:"available_years"`
	Oversold       []Oversell       `json:"oversold"`
}

// YearlySummary gives the year's result. The success rate counts realized
// lots only, while profitable and loss counts include open positions.
type YearlySummary struct {
	TotalProfit      Money   `json:"total_profit"`
	RealizedProfit   Money   `json:"realized_profit"`
	UnrealizedProfit Money   `json:"unrealized_profit"`
	TotalInvestment  Money   `json:"total_investment"`
	TotalRevenue     Money   `json:"total_revenue"`
	TotalFees        Money   `json:"total_fees"`
	ReturnRate       Percent `json:"return_rate"`
	ProfitableTrades int     `json:"profitable_trades"`
	LossTrades       int     `json:"loss_trades"`
	SuccessRate      Percent `json:"success_rate"`
}

// YearlyTrades is the year's trading activity.
type YearlyTrades struct {
	TradeSummary
	ByStock         []StockActivity `json:"by_stock"`
	ByMonth         []MonthActivity `json:"by_month"`
	MostActiveMonth *MonthActivity  `json:"most_active_month"`
}

// MonthActivity is the trading activity of a month of the year.
type MonthActivity struct {
	Month     time.Month `json:"month"`
	Count     int        `json:"count"`
	BuyCount  int        `json:"buy_count"`
	SellCount int        `json:"sell_count"`
	Amount    Money      `json:"amount"`
}

// YearlyProfitLoss is the year's result by month and by lot.
type YearlyProfitLoss struct {
	TotalProfit      Money         `json:"total_profit"`
	RealizedProfit   Money         `json:"realized_profit"`
	UnrealizedProfit Money         `json:"unrealized_profit"`
	ProfitableCount  int           `json:"profitable_count"`
	LossCount        int           `json:"loss_count"`
	Distribution     Distribution  `json:"profit_distribution"`
	ByMonth          []MonthProfit `json:"by_month"`
	TopProfitTrades  []MatchedLot  `json:"top_profit_trades"`
	TopLossTrades    []MatchedLot  `json:"top_loss_trades"`
	RateStats        RateStats     `json:"rate_stats"`
}

// MonthProfit is the realized result of a month of the year, by sell date.
type MonthProfit struct {
	Month           time.Month `json:"month"`
	Profit          Money      `json:"profit"`
	Count           int        `json:"count"`
	ProfitableCount int        `json:"profitable_count"`
	LossCount       int        `json:"loss_count"`
}

// BestWorstTrades are the remarkable lots of the year, nil when there is none.
type BestWorstTrades struct {
	BestTrade       *MatchedLot `json:"best_trade"`
	WorstTrade      *MatchedLot `json:"worst_trade"`
	BestProfitRate  *MatchedLot `json:"best_profit_rate"`
	WorstProfitRate *MatchedLot `json:"worst_profit_rate"`
	LongestHold     *MatchedLot `json:"longest_hold"`
	ShortestHold    *MatchedLot `json:"shortest_hold"`
}

// YearlyReview is the quarterly breakdown and the most traded stocks.
type YearlyReview struct {
	Quarterly        []QuarterStat       `json:"quarterly"`
	MostActiveStocks []StockTurnover     `json:"most_active_stocks"`
	Summary          YearlyReviewSummary `json:"summary"`
	BestQuarter      QuarterStat         `json:"best_quarter"`
	WorstQuarter     QuarterStat         `json:"worst_quarter"`
}

// StockTurnover is how much a stock was traded and what it realized.
type StockTurnover struct {
	StockCode   string `json:"stock_code"`
	StockName   string `json:"stock_name"`
	TradeCount  int    `json:"trade_count"`
	TotalAmount Money  `json:"total_amount"`
	Profit      Money  `json:"profit"`
}

// YearlyReviewSummary recalls the headline figures of the year.
type YearlyReviewSummary struct {
	TotalProfit Money   `json:"total_profit"`
	ReturnRate  Percent `json:"return_rate"`
	SuccessRate Percent `json:"success_rate"`
	TotalTrades int     `json:"total_trades"`
	StockCount  int     `json:"stock_count"`
}

// YearlyReport reviews the trades dated in year; year 0 means the current
// year. Lots are matched among the year's trades only. Positions are valued
// only when year is the current year, since their prices are today's.
func (r *Reporter) YearlyReport(trades []Trade, positions []Position, year int) *YearlyReport {
	today := r.now()
	if year == 0 {
		year = today.Year()
	}
	var yearTrades []Trade
	for _, t := range trades {
		if t.Date.Year() == year {
			yearTrades = append(yearTrades, t)
		}
	}
	if year != today.Year() {
		positions = nil
	}

	m := r.match(yearTrades)
	realized := Realize(m.Lots)
	unrealized := ComputeUnrealized(positions)

	summary := yearlySummary(yearTrades, realized, unrealized)
	report := &YearlyReport{
		Year:           year,
		Summary:        summary,
		Trades:         yearlyTrades(yearTrades),
		ProfitLoss:     r.yearlyProfitLoss(realized, unrealized),
		BestWorst:      bestWorstTrades(m.Lots),
		Review:         yearlyReview(yearTrades, m.Lots, summary),
		AvailableYears: AvailableYears(trades),
		Oversold:       m.Oversold,
	}
	r.log.Debug().Int("year", year).Int("trades", len(yearTrades)).Int("lots", len(m.Lots)).Msg("yearly report")
	return report
}

// AvailableYears lists the distinct years of the trades, latest first.
func AvailableYears(trades []Trade) []int {
	years := []int{}
	for _, t := range trades {
		if y := t.Date.Year(); !slices.Contains(years, y) {
			years = append(years, y)
		}
	}
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })
	return years
}

func yearlySummary(trades []Trade, realized Realized, unrealized Unrealized) YearlySummary {
	activity := summarizeTrades(trades)
	s := YearlySummary{
		RealizedProfit:   realized.TotalProfit,
		UnrealizedProfit: unrealized.TotalProfit,
		TotalProfit:      realized.TotalProfit.Add(unrealized.TotalProfit),
		TotalInvestment:  activity.BuyAmount,
		TotalRevenue:     activity.SellAmount,
		TotalFees:        activity.TotalFees,
		ProfitableTrades: realized.ProfitCount + unrealized.ProfitCount,
		LossTrades:       realized.LossCount + unrealized.LossCount,
		SuccessRate:      share(realized.ProfitCount, len(realized.Lots)),
	}
	s.ReturnRate = rate(s.TotalProfit, s.TotalInvestment)
	return s
}

func yearlyTrades(trades []Trade) YearlyTrades {
	y := YearlyTrades{
		TradeSummary: summarizeTrades(trades),
		ByStock:      activityByStock(trades),
		ByMonth:      []MonthActivity{},
	}
	slices.SortStableFunc(y.ByStock, byTurnoverDesc)

	months := ActivityBy(trades, date.Monthly)
	slices.Reverse(months)
	for _, a := range months {
		y.ByMonth = append(y.ByMonth, MonthActivity{
			Month:     monthOfKey(a.Key),
			Count:     a.Count,
			BuyCount:  a.BuyCount,
			SellCount: a.SellCount,
			Amount:    a.TotalAmount,
		})
	}
	if hi, _ := extremes(y.ByMonth, func(a, b MonthActivity) int { return cmp.Compare(a.Count, b.Count) }); hi >= 0 {
		most := y.ByMonth[hi]
		y.MostActiveMonth = &most
	}
	return y
}

// monthOfKey reads the month of a "2006-01" key.
func monthOfKey(key string) time.Month {
	m, _ := strconv.Atoi(key[len(key)-2:])
	return time.Month(m)
}

func (r *Reporter) yearlyProfitLoss(realized Realized, unrealized Unrealized) YearlyProfitLoss {
	p := YearlyProfitLoss{
		RealizedProfit:   realized.TotalProfit,
		UnrealizedProfit: unrealized.TotalProfit,
		TotalProfit:      realized.TotalProfit.Add(unrealized.TotalProfit),
		ProfitableCount:  realized.ProfitCount + unrealized.ProfitCount,
		LossCount:        realized.LossCount + unrealized.LossCount,
		Distribution:     r.bucketize(append(lotItems(realized.Lots), positionItems(unrealized.Positions)...)),
		ByMonth:          []MonthProfit{},
		RateStats:        ComputeRateStats(realized.Lots),
	}

	months := AggregateProfit(realized.Lots, date.Monthly)
	slices.Reverse(months)
	for _, a := range months {
		p.ByMonth = append(p.ByMonth, MonthProfit{
			Month:           monthOfKey(a.Key),
			Profit:          a.RealizedProfit,
			Count:           a.TradeCount,
			ProfitableCount: a.ProfitableCount,
			LossCount:       a.LossCount,
		})
	}

	winners := slices.DeleteFunc(slices.Clone(realized.Lots), func(l MatchedLot) bool { return !l.Profit.IsPositive() })
	losers := slices.DeleteFunc(slices.Clone(realized.Lots), func(l MatchedLot) bool { return !l.Profit.IsNegative() })
	p.TopProfitTrades = top(sortedLots(winners, byProfitDesc), topTrades)
	p.TopLossTrades = top(sortedLots(losers, byProfitAsc), topTrades)
	return p
}

func top[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func bestWorstTrades(lots []MatchedLot) BestWorstTrades {
	var b BestWorstTrades
	pick := func(cmp func(a, b MatchedLot) int) (best, worst *MatchedLot) {
		hi, lo := extremes(lots, cmp)
		if hi < 0 {
			return nil, nil
		}
		h, l := lots[hi], lots[lo]
		return &h, &l
	}
	b.BestTrade, b.WorstTrade = pick(func(x, y MatchedLot) int { return x.Profit.Cmp(y.Profit) })
	b.BestProfitRate, b.WorstProfitRate = pick(func(x, y MatchedLot) int { return comparePercent(x.ProfitRate, y.ProfitRate) })
	b.LongestHold, b.ShortestHold = pick(func(x, y MatchedLot) int { return cmp.Compare(x.HoldDays, y.HoldDays) })
	return b
}

func yearlyReview(trades []Trade, lots []MatchedLot, summary YearlySummary) YearlyReview {
	quarters := RollupQuarters(trades, lots)

	profit := make(map[string]Money)
	for _, l := range lots {
		profit[l.StockCode] = profit[l.StockCode].Add(l.Profit)
	}
	activity := activityByStock(trades)
	slices.SortStableFunc(activity, func(a, b StockActivity) int { return b.TradeCount() - a.TradeCount() })
	stocks := make([]StockTurnover, 0, len(activity))
	for _, a := range top(activity, topTrades) {
		stocks = append(stocks, StockTurnover{
			StockCode:   a.StockCode,
			StockName:   a.StockName,
			TradeCount:  a.TradeCount(),
			TotalAmount: a.Turnover(),
			Profit:      profit[a.StockCode],
		})
	}

	hi, lo := extremes(quarters, func(a, b QuarterStat) int { return a.Profit.Cmp(b.Profit) })
	return YearlyReview{
		Quarterly:        quarters,
		MostActiveStocks: stocks,
		Summary: YearlyReviewSummary{
			TotalProfit: summary.TotalProfit,
			ReturnRate:  summary.ReturnRate,
			SuccessRate: summary.SuccessRate,
			TotalTrades: len(trades),
			StockCount:  len(activity),
		},
		BestQuarter:  quarters[hi],
		WorstQuarter: quarters[lo],
	}
}
