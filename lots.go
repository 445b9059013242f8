package stockmanager

import (
	"slices"

	"github.com/ntyt123/stock-manager-sub001/date"
)

// MatchedLot is one FIFO pairing of (part of) a buy with (part of) a sell of
// the same stock. BuyFee and SellFee are the shares of each trade's fee
// allocated to the matched quantity.
type MatchedLot struct {
	StockCode  string    `json:"stock_code"`
	StockName  string    `json:"stock_name"`
	BuyID      int64     `json:"buy_id,omitempty"`
	SellID     int64     `json:"sell_id,omitempty"`
	BuyDate    date.Date `json:"buy_date"`
	SellDate   date.Date `json:"sell_date"`
	Quantity   Quantity  `json:"quantity"`
	BuyPrice   Money     `json:"buy_price"`
	SellPrice  Money     `json:"sell_price"`
	BuyFee     Money     `json:"buy_fee"`
	SellFee    Money     `json:"sell_fee"`
	Profit     Money     `json:"profit"`
	ProfitRate Percent   `json:"profit_rate"`
	HoldDays   int       `json:"hold_days"`
}

// BuyValue is the cost of the matched quantity, fees excluded.
func (l MatchedLot) BuyValue() Money { return l.BuyPrice.Mul(l.Quantity) }

// SellValue is the proceeds of the matched quantity, fees excluded.
func (l MatchedLot) SellValue() Money { return l.SellPrice.Mul(l.Quantity) }

// OpenLot is the unsold remainder of a buy.
type OpenLot struct {
	StockCode string    `json:"stock_code"`
	StockName string    `json:"stock_name"`
	BuyID     int64     `json:"buy_id,omitempty"`
	BuyDate   date.Date `json:"buy_date"`
	Quantity  Quantity  `json:"quantity"`
	BuyPrice  Money     `json:"buy_price"`
}

// Oversell is the sell quantity of a stock that no earlier buy could cover.
type Oversell struct {
	StockCode string   `json:"stock_code"`
	StockName string   `json:"stock_name"`
	Quantity  Quantity `json:"quantity"`
}

// Matching is the outcome of FIFO matching a set of trades.
type Matching struct {
	// Lots in stock first-appearance order, then in matching order.
	Lots     []MatchedLot `json:"lots"`
	Open     []OpenLot    `json:"open"`
	Oversold []Oversell   `json:"oversold"`
}

// stockTrades holds the buys and sells of one stock code.
type stockTrades struct {
	code  string
	buys  []Trade
	sells []Trade
}

// groupByStock splits trades per stock code in order of first appearance.
// Buys and sells are stable sorted by date so that same-day trades keep their
// input order. Trades with a non positive quantity cannot be matched and are skipped.
func groupByStock(trades []Trade) []*stockTrades {
	index := make(map[string]int)
	var groups []*stockTrades
	for _, t := range trades {
		if !t.Quantity.IsPositive() {
			continue
		}
		i, ok := index[t.StockCode]
		if !ok {
			i = len(groups)
			index[t.StockCode] = i
			groups = append(groups, &stockTrades{code: t.StockCode})
		}
		switch t.Type {
		case Buy:
			groups[i].buys = append(groups[i].buys, t)
		case Sell:
			groups[i].sells = append(groups[i].sells, t)
		}
	}
	byDate := func(a, b Trade) int { return a.Date.Compare(b.Date) }
	for _, g := range groups {
		slices.SortStableFunc(g.buys, byDate)
		slices.SortStableFunc(g.sells, byDate)
	}
	return groups
}

// MatchFIFO pairs the buys and sells of each stock first in, first out.
//
// Each sell consumes the oldest buys still open. Fees are allocated pro rata
// of the matched quantity, so that the fee shares of all the pairings that
// consume one trade add up to that trade's fee. Buys left unsold are reported
// in Open; sell quantity exceeding all earlier buys is reported in Oversold and
// contributes to no lot.
func MatchFIFO(trades []Trade) Matching {
	m := Matching{
		Lots:     []MatchedLot{},
		Open:     []OpenLot{},
		Oversold: []Oversell{},
	}
	for _, g := range groupByStock(trades) {
		m.match(g)
	}
	return m
}

func (m *Matching) match(g *stockTrades) {
	var bi, si int
	var buyRemaining, sellRemaining Quantity
	for bi < len(g.buys) && si < len(g.sells) {
		buy, sell := g.buys[bi], g.sells[si]
		if buyRemaining.IsZero() {
			buyRemaining = buy.Quantity
		}
		if sellRemaining.IsZero() {
			sellRemaining = sell.Quantity
		}

		matched := minQuantity(buyRemaining, sellRemaining)
		m.Lots = append(m.Lots, pair(buy, sell, matched))

		buyRemaining = buyRemaining.Sub(matched)
		sellRemaining = sellRemaining.Sub(matched)
		if buyRemaining.IsZero() {
			bi++
		}
		if sellRemaining.IsZero() {
			si++
		}
	}

	for ; bi < len(g.buys); bi++ {
		buy := g.buys[bi]
		open := buy.Quantity
		if !buyRemaining.IsZero() {
			open, buyRemaining = buyRemaining, Quantity{}
		}
		m.Open = append(m.Open, OpenLot{
			StockCode: buy.StockCode,
			StockName: buy.StockName,
			BuyID:     buy.ID,
			BuyDate:   buy.Date,
			Quantity:  open,
			BuyPrice:  buy.Price,
		})
	}

	if si < len(g.sells) {
		over := Oversell{StockCode: g.code, StockName: g.sells[si].StockName}
		for ; si < len(g.sells); si++ {
			left := g.sells[si].Quantity
			if !sellRemaining.IsZero() {
				left, sellRemaining = sellRemaining, Quantity{}
			}
			over.Quantity = over.Quantity.Add(left)
		}
		m.Oversold = append(m.Oversold, over)
	}
}

// pair computes the realized result of selling quantity shares bought by buy
// through sell.
func pair(buy, sell Trade, quantity Quantity) MatchedLot {
	buyValue := buy.Price.Mul(quantity)
	sellValue := sell.Price.Mul(quantity)
	buyFee := buy.Fee.Mul(quantity).Div(buy.Quantity)
	sellFee := sell.Fee.Mul(quantity).Div(sell.Quantity)
	profit := sellValue.Sub(buyValue).Sub(buyFee).Sub(sellFee)

	return MatchedLot{
		StockCode:  buy.StockCode,
		StockName:  buy.StockName,
		BuyID:      buy.ID,
		SellID:     sell.ID,
		BuyDate:    buy.Date,
		SellDate:   sell.Date,
		Quantity:   quantity,
		BuyPrice:   buy.Price,
		SellPrice:  sell.Price,
		BuyFee:     buyFee,
		SellFee:    sellFee,
		Profit:     profit,
		ProfitRate: rate(profit, buyValue),
		HoldDays:   max(0, sell.Date.DaysSince(buy.Date)),
	}
}

// Realized summarises a set of matched lots.
type Realized struct {
	Lots        []MatchedLot `json:"trades"`
	TotalProfit Money        `json:"total_profit"`
	ProfitCount int          `json:"profit_count"`
	LossCount   int          `json:"loss_count"`
	AvgProfit   Money        `json:"avg_profit"`
}

// Realize totals lots. Lots with exactly zero profit count as neither profit nor loss.
func Realize(lots []MatchedLot) Realized {
	r := Realized{Lots: lots}
	if r.Lots == nil {
		r.Lots = []MatchedLot{}
	}
	for _, l := range lots {
		r.TotalProfit = r.TotalProfit.Add(l.Profit)
		switch l.Profit.Sign() {
		case 1:
			r.ProfitCount++
		case -1:
			r.LossCount++
		}
	}
	r.AvgProfit = r.TotalProfit.Avg(len(lots))
	return r
}

// Lot orderings used by the reports. All sorts are stable.
var (
	bySellDateDesc   = func(a, b MatchedLot) int { return b.SellDate.Compare(a.SellDate) }
	byProfitDesc     = func(a, b MatchedLot) int { return b.Profit.Cmp(a.Profit) }
	byProfitAsc      = func(a, b MatchedLot) int { return a.Profit.Cmp(b.Profit) }
	byProfitRateDesc = func(a, b MatchedLot) int { return comparePercent(b.ProfitRate, a.ProfitRate) }
)

// sortedLots returns a sorted copy of lots.
func sortedLots(lots []MatchedLot, cmp func(a, b MatchedLot) int) []MatchedLot {
	out := slices.Clone(lots)
	if out == nil {
		out = []MatchedLot{}
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func comparePercent(a, b Percent) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
