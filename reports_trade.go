package stockmanager

import (
	"slices"

	"github.com/ntyt123/stock-manager-sub001/date"
)

// TradeReportOptions narrows the trade report.
type TradeReportOptions struct {
	// Range keeps the trades dated within it, bounds included. A zero bound is open.
	Range date.Range
}

// TradeReport describes the trading activity.
type TradeReport struct {
	From         *date.Date        `json:"from,omitempty"`
	To           *date.Date        `json:"to,omitempty"`
	Summary      TradeSummary      `json:"summary"`
	TradeRecords []StockTrades     `json:"trade_records"`
	FeeStats     FeeStats          `json:"fee_stats"`
	Frequency    FrequencyAnalysis `json:"frequency_analysis"`
	SuccessRate  SuccessRate       `json:"success_rate"`
	Oversold     []Oversell        `json:"oversold"`
}

// TradeSummary counts trades and amounts.
type TradeSummary struct {
	TotalTrades    int   `json:"total_trades"`
	BuyCount       int   `json:"buy_count"`
	SellCount      int   `json:"sell_count"`
	BuyAmount      Money `json:"buy_amount"`
	SellAmount     Money `json:"sell_amount"`
	TotalAmount    Money `json:"total_amount"`
	TotalFees      Money `json:"total_fees"`
	StockCount     int   `json:"stock_count"`
	AvgTradeAmount Money `json:"avg_trade_amount"`
}

// StockActivity is the buying and selling of one stock.
type StockActivity struct {
	StockCode    string   `json:"stock_code"`
	StockName    string   `json:"stock_name"`
	BuyCount     int      `json:"buy_count"`
	SellCount    int      `json:"sell_count"`
	BuyQuantity  Quantity `json:"buy_quantity"`
	SellQuantity Quantity `json:"sell_quantity"`
	BuyAmount    Money    `json:"buy_amount"`
	SellAmount   Money    `json:"sell_amount"`
	TotalFees    Money    `json:"total_fees"`
}

// TradeCount is the number of trades of the stock.
func (s StockActivity) TradeCount() int { return s.BuyCount + s.SellCount }

// Turnover is the bought plus sold amount of the stock.
func (s StockActivity) Turnover() Money { return s.BuyAmount.Add(s.SellAmount) }

// StockTrades is the activity of one stock with its trades, latest first.
type StockTrades struct {
	StockActivity
	TotalTrades int         `json:"total_trades"`
	Trades      []TradeLine `json:"trades"`
}

// TradeLine is a trade listed under its stock.
type TradeLine struct {
	Date     date.Date `json:"date"`
	Type     TradeType `json:"type"`
	Quantity Quantity  `json:"quantity"`
	Price    Money     `json:"price"`
	Amount   Money     `json:"amount"`
	Fee      Money     `json:"fee"`
}

// FeeStats breaks the fees down by side and by stock.
type FeeStats struct {
	TotalFees      Money       `json:"total_fees"`
	BuyFees        Money       `json:"buy_fees"`
	SellFees       Money       `json:"sell_fees"`
	BuyCount       int         `json:"buy_count"`
	SellCount      int         `json:"sell_count"`
	AvgFeePerTrade Money       `json:"avg_fee_per_trade"`
	ByStock        []StockFees `json:"by_stock"`
}

// StockFees are the fees paid on one stock.
type StockFees struct {
	StockCode  string `json:"stock_code"`
	StockName  string `json:"stock_name"`
	TotalFees  Money  `json:"total_fees"`
	BuyFees    Money  `json:"buy_fees"`
	SellFees   Money  `json:"sell_fees"`
	TradeCount int    `json:"trade_count"`
}

// FrequencyAnalysis measures trading frequency per day and per month.
type FrequencyAnalysis struct {
	Daily   Frequency `json:"daily"`
	Monthly Frequency `json:"monthly"`
}

// SuccessRate measures how often closed pairings made money. Pairings with
// exactly zero profit are left out of the rate.
type SuccessRate struct {
	TotalPairedTrades  int          `json:"total_paired_trades"`
	ProfitableTrades   int          `json:"profitable_trades"`
	LossTrades         int          `json:"loss_trades"`
	SuccessRatePercent Percent      `json:"success_rate_percent"`
	TotalProfit        Money        `json:"total_profit"`
	AvgProfit          Money        `json:"avg_profit"`
	PairedTrades       []MatchedLot `json:"paired_trades"`
}

// TradeReport analyses the trades within opts.Range. Lots are matched among
// those trades only.
func (r *Reporter) TradeReport(trades []Trade, opts TradeReportOptions) *TradeReport {
	var selected []Trade
	for _, t := range trades {
		if opts.Range.Contains(t.Date) {
			selected = append(selected, t)
		}
	}
	m := r.match(selected)

	report := &TradeReport{
		Summary:      summarizeTrades(selected),
		TradeRecords: tradeRecordsByStock(selected),
		FeeStats:     feeStats(selected),
		Frequency: FrequencyAnalysis{
			Daily:   TradeFrequency(selected, date.Daily),
			Monthly: TradeFrequency(selected, date.Monthly),
		},
		SuccessRate: successRate(m.Lots),
		Oversold:    m.Oversold,
	}
	if from := opts.Range.From; !from.IsZero() {
		report.From = &from
	}
	if to := opts.Range.To; !to.IsZero() {
		report.To = &to
	}
	r.log.Debug().Int("trades", len(selected)).Int("lots", len(m.Lots)).Msg("trade report")
	return report
}

func summarizeTrades(trades []Trade) TradeSummary {
	s := TradeSummary{TotalTrades: len(trades)}
	stocks := make(map[string]bool)
	for _, t := range trades {
		switch t.Type {
		case Buy:
			s.BuyCount++
			s.BuyAmount = s.BuyAmount.Add(t.Value())
		case Sell:
			s.SellCount++
			s.SellAmount = s.SellAmount.Add(t.Value())
		}
		s.TotalFees = s.TotalFees.Add(t.Fee)
		stocks[t.StockCode] = true
	}
	s.TotalAmount = s.BuyAmount.Add(s.SellAmount)
	s.StockCount = len(stocks)
	s.AvgTradeAmount = s.TotalAmount.Avg(len(trades))
	return s
}

// activityByStock totals trades per stock in order of first appearance.
func activityByStock(trades []Trade) []StockActivity {
	index := make(map[string]int)
	out := []StockActivity{}
	for _, t := range trades {
		i, ok := index[t.StockCode]
		if !ok {
			i = len(out)
			index[t.StockCode] = i
			out = append(out, StockActivity{StockCode: t.StockCode, StockName: t.StockName})
		}
		s := &out[i]
		switch t.Type {
		case Buy:
			s.BuyCount++
			s.BuyQuantity = s.BuyQuantity.Add(t.Quantity)
			s.BuyAmount = s.BuyAmount.Add(t.Value())
		case Sell:
			s.SellCount++
			s.SellQuantity = s.SellQuantity.Add(t.Quantity)
			s.SellAmount = s.SellAmount.Add(t.Value())
		}
		s.TotalFees = s.TotalFees.Add(t.Fee)
	}
	return out
}

// byTurnoverDesc orders stocks by traded amount, largest first.
func byTurnoverDesc(a, b StockActivity) int { return b.Turnover().Cmp(a.Turnover()) }

// tradeRecordsByStock lists each stock's trades, the most traded stocks first.
func tradeRecordsByStock(trades []Trade) []StockTrades {
	latestFirst := slices.Clone(trades)
	slices.Reverse(latestFirst)
	slices.SortStableFunc(latestFirst, func(a, b Trade) int { return b.Date.Compare(a.Date) })

	lines := make(map[string][]TradeLine)
	for _, t := range latestFirst {
		lines[t.StockCode] = append(lines[t.StockCode], TradeLine{
			Date:     t.Date,
			Type:     t.Type,
			Quantity: t.Quantity,
			Price:    t.Price,
			Amount:   t.Value(),
			Fee:      t.Fee,
		})
	}

	activity := activityByStock(trades)
	slices.SortStableFunc(activity, byTurnoverDesc)
	records := make([]StockTrades, 0, len(activity))
	for _, a := range activity {
		records = append(records, StockTrades{
			StockActivity: a,
			TotalTrades:   a.TradeCount(),
			Trades:        lines[a.StockCode],
		})
	}
	return records
}

func feeStats(trades []Trade) FeeStats {
	var f FeeStats
	index := make(map[string]int)
	f.ByStock = []StockFees{}
	for _, t := range trades {
		i, ok := index[t.StockCode]
		if !ok {
			i = len(f.ByStock)
			index[t.StockCode] = i
			f.ByStock = append(f.ByStock, StockFees{StockCode: t.StockCode, StockName: t.StockName})
		}
		s := &f.ByStock[i]
		s.TotalFees = s.TotalFees.Add(t.Fee)
		s.TradeCount++
		switch t.Type {
		case Buy:
			f.BuyCount++
			f.BuyFees = f.BuyFees.Add(t.Fee)
			s.BuyFees = s.BuyFees.Add(t.Fee)
		case Sell:
			f.SellCount++
			f.SellFees = f.SellFees.Add(t.Fee)
			s.SellFees = s.SellFees.Add(t.Fee)
		}
	}
	f.TotalFees = f.BuyFees.Add(f.SellFees)
	f.AvgFeePerTrade = f.TotalFees.Avg(len(trades))
	slices.SortStableFunc(f.ByStock, func(a, b StockFees) int { return b.TotalFees.Cmp(a.TotalFees) })
	return f
}

func successRate(lots []MatchedLot) SuccessRate {
	realized := Realize(lots)
	s := SuccessRate{
		TotalPairedTrades: realized.ProfitCount + realized.LossCount,
		ProfitableTrades:  realized.ProfitCount,
		LossTrades:        realized.LossCount,
		TotalProfit:       realized.TotalProfit,
		PairedTrades:      sortedLots(lots, byProfitRateDesc),
	}
	s.SuccessRatePercent = share(s.ProfitableTrades, s.TotalPairedTrades)
	s.AvgProfit = s.TotalProfit.Avg(s.TotalPairedTrades)
	return s
}
