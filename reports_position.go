package stockmanager

import "slices"

// flatTolerance is the absolute profit under which a position counts as flat.
var flatTolerance = M(0.01)

// PositionReport describes the open positions of a portfolio.
type PositionReport struct {
	Summary              PositionSummary   `json:"summary"`
	Positions            []PositionHolding `json:"positions"`
	IndustryDistribution []IndustryShare   `json:"industry_distribution"`
	PositionRatios       []PositionRatio   `json:"position_ratios"`
	CostAnalysis         []CostLine        `json:"cost_analysis"`
	ProfitLossStats      ProfitLossStats   `json:"profit_loss_stats"`
}

// PositionSummary totals all positions.
type PositionSummary struct {
	TotalPositions      int     `json:"total_positions"`
	TotalMarketValue    Money   `json:"total_market_value"`
	TotalCostValue      Money   `json:"total_cost_value"`
	TotalProfitLoss     Money   `json:"total_profit_loss"`
	TotalProfitLossRate Percent `json:"total_profit_loss_rate"`
	ProfitPositions     int     `json:"profit_positions"`
	LossPositions       int     `json:"loss_positions"`
}

// PositionHolding is a position with its valuation and industry.
type PositionHolding struct {
	StockCode    string   `json:"stock_code"`
	StockName    string   `json:"stock_name"`
	Industry     string   `json:"industry"`
	Quantity     Quantity `json:"quantity"`
	CostPrice    Money    `json:"cost_price"`
	CurrentPrice Money    `json:"current_price"`
	Valuation
}

// IndustryShare is the weight of one industry in the portfolio.
type IndustryShare struct {
	Industry       string           `json:"industry"`
	Count          int              `json:"count"`
	MarketValue    Money            `json:"market_value"`
	ProfitLoss     Money            `json:"profit_loss"`
	Ratio          Percent          `json:"ratio"`
	ProfitLossRate Percent          `json:"profit_loss_rate"`
	Positions      []IndustryMember `json:"positions"`
}

// IndustryMember is a position listed under its industry.
type IndustryMember struct {
	StockCode   string `json:"stock_code"`
	StockName   string `json:"stock_name"`
	MarketValue Money  `json:"market_value"`
}

// PositionRatio is the weight of one position in the portfolio.
type PositionRatio struct {
	StockCode      string  `json:"stock_code"`
	StockName      string  `json:"stock_name"`
	Industry       string  `json:"industry"`
	MarketValue    Money   `json:"market_value"`
	Ratio          Percent `json:"ratio"`
	ProfitLoss     Money   `json:"profit_loss"`
	ProfitLossRate Percent `json:"profit_loss_rate"`
}

// CostLine compares the cost and the current price of one position.
type CostLine struct {
	StockCode       string   `json:"stock_code"`
	StockName       string   `json:"stock_name"`
	Industry        string   `json:"industry"`
	Quantity        Quantity `json:"quantity"`
	CostPrice       Money    `json:"cost_price"`
	CurrentPrice    Money    `json:"current_price"`
	CostValue       Money    `json:"cost_value"`
	MarketValue     Money    `json:"market_value"`
	PriceChange     Money    `json:"price_change"`
	PriceChangeRate Percent  `json:"price_change_rate"`
	ProfitLoss      Money    `json:"profit_loss"`
	ProfitLossRate  Percent  `json:"profit_loss_rate"`
}

// PositionResult is the floating result of one position.
type PositionResult struct {
	StockCode      string  `json:"stock_code"`
	StockName      string  `json:"stock_name"`
	Industry       string  `json:"industry"`
	ProfitLoss     Money   `json:"profit_loss"`
	ProfitLossRate Percent `json:"profit_loss_rate"`
	MarketValue    Money   `json:"market_value"`
}

// ProfitLossStats splits positions into profitable, losing and flat ones.
// A position is flat when its profit is within ±0.01.
type ProfitLossStats struct {
	TotalPositions    int              `json:"total_positions"`
	ProfitPositions   []PositionResult `json:"profit_positions"`
	LossPositions     []PositionResult `json:"loss_positions"`
	FlatPositions     []PositionResult `json:"flat_positions"`
	MaxProfit         *PositionResult  `json:"max_profit"`
	MaxLoss           *PositionResult  `json:"max_loss"`
	AvgProfitLossRate Percent          `json:"avg_profit_loss_rate"`
}

// PositionReport analyses the open positions. Precomputed market values and
// profits of the positions are used when present.
func (r *Reporter) PositionReport(positions []Position) *PositionReport {
	holdings := make([]PositionHolding, 0, len(positions))
	for _, p := range positions {
		holdings = append(holdings, PositionHolding{
			StockCode:    p.StockCode,
			StockName:    p.StockName,
			Industry:     industryOf(r.industries, p.StockCode),
			Quantity:     p.Quantity,
			CostPrice:    p.CostPrice,
			CurrentPrice: p.CurrentPrice,
			Valuation:    p.Valuation(),
		})
	}
	slices.SortStableFunc(holdings, func(a, b PositionHolding) int { return b.MarketValue.Cmp(a.MarketValue) })

	report := &PositionReport{
		Summary:              summarizePositions(holdings),
		Positions:            holdings,
		IndustryDistribution: industryDistribution(holdings),
		PositionRatios:       positionRatios(holdings),
		CostAnalysis:         costAnalysis(holdings),
		ProfitLossStats:      profitLossStats(holdings),
	}
	r.log.Debug().Int("positions", len(holdings)).Msg("position report")
	return report
}

func summarizePositions(holdings []PositionHolding) PositionSummary {
	s := PositionSummary{TotalPositions: len(holdings)}
	for _, h := range holdings {
		s.TotalMarketValue = s.TotalMarketValue.Add(h.MarketValue)
		s.TotalCostValue = s.TotalCostValue.Add(h.CostValue)
		s.TotalProfitLoss = s.TotalProfitLoss.Add(h.ProfitLoss)
		switch h.ProfitLoss.Sign() {
		case 1:
			s.ProfitPositions++
		case -1:
			s.LossPositions++
		}
	}
	s.TotalProfitLossRate = rate(s.TotalProfitLoss, s.TotalCostValue)
	return s
}

func totalMarketValue(holdings []PositionHolding) Money {
	var total Money
	for _, h := range holdings {
		total = total.Add(h.MarketValue)
	}
	return total
}

// industryDistribution groups holdings by industry, largest market value first.
// The industry rate is relative to its cost, derived as market value minus profit.
func industryDistribution(holdings []PositionHolding) []IndustryShare {
	total := totalMarketValue(holdings)
	index := make(map[string]int)
	shares := []IndustryShare{}
	for _, h := range holdings {
		i, ok := index[h.Industry]
		if !ok {
			i = len(shares)
			index[h.Industry] = i
			shares = append(shares, IndustryShare{Industry: h.Industry, Positions: []IndustryMember{}})
		}
		s := &shares[i]
		s.Count++
		s.MarketValue = s.MarketValue.Add(h.MarketValue)
		s.ProfitLoss = s.ProfitLoss.Add(h.ProfitLoss)
		s.Positions = append(s.Positions, IndustryMember{
			StockCode:   h.StockCode,
			StockName:   h.StockName,
			MarketValue: h.MarketValue,
		})
	}
	for i := range shares {
		s := &shares[i]
		s.Ratio = rate(s.MarketValue, total)
		if s.MarketValue.IsPositive() {
			s.ProfitLossRate = rate(s.ProfitLoss, s.MarketValue.Sub(s.ProfitLoss))
		}
	}
	slices.SortStableFunc(shares, func(a, b IndustryShare) int { return b.MarketValue.Cmp(a.MarketValue) })
	return shares
}

func positionRatios(holdings []PositionHolding) []PositionRatio {
	total := totalMarketValue(holdings)
	ratios := make([]PositionRatio, 0, len(holdings))
	for _, h := range holdings {
		ratios = append(ratios, PositionRatio{
			StockCode:      h.StockCode,
			StockName:      h.StockName,
			Industry:       h.Industry,
			MarketValue:    h.MarketValue,
			Ratio:          rate(h.MarketValue, total),
			ProfitLoss:     h.ProfitLoss,
			ProfitLossRate: h.ProfitLossRate,
		})
	}
	slices.SortStableFunc(ratios, func(a, b PositionRatio) int { return comparePercent(b.Ratio, a.Ratio) })
	return ratios
}

func costAnalysis(holdings []PositionHolding) []CostLine {
	lines := make([]CostLine, 0, len(holdings))
	for _, h := range holdings {
		change := h.CurrentPrice.Sub(h.CostPrice)
		lines = append(lines, CostLine{
			StockCode:       h.StockCode,
			StockName:       h.StockName,
			Industry:        h.Industry,
			Quantity:        h.Quantity,
			CostPrice:       h.CostPrice,
			CurrentPrice:    h.CurrentPrice,
			CostValue:       h.CostValue,
			MarketValue:     h.MarketValue,
			PriceChange:     change,
			PriceChangeRate: rate(change, h.CostPrice),
			ProfitLoss:      h.ProfitLoss,
			ProfitLossRate:  h.ProfitLossRate,
		})
	}
	slices.SortStableFunc(lines, func(a, b CostLine) int { return comparePercent(b.ProfitLossRate, a.ProfitLossRate) })
	return lines
}

func profitLossStats(holdings []PositionHolding) ProfitLossStats {
	stats := ProfitLossStats{
		TotalPositions:  len(holdings),
		ProfitPositions: []PositionResult{},
		LossPositions:   []PositionResult{},
		FlatPositions:   []PositionResult{},
	}
	var rateSum float64
	for _, h := range holdings {
		item := PositionResult{
			StockCode:      h.StockCode,
			StockName:      h.StockName,
			Industry:       h.Industry,
			ProfitLoss:     h.ProfitLoss,
			ProfitLossRate: h.ProfitLossRate,
			MarketValue:    h.MarketValue,
		}
		switch {
		case h.ProfitLoss.GreaterThan(flatTolerance):
			stats.ProfitPositions = append(stats.ProfitPositions, item)
		case h.ProfitLoss.LessThan(flatTolerance.Neg()):
			stats.LossPositions = append(stats.LossPositions, item)
		default:
			stats.FlatPositions = append(stats.FlatPositions, item)
		}
		if stats.MaxProfit == nil || item.ProfitLoss.GreaterThan(stats.MaxProfit.ProfitLoss) {
			p := item
			stats.MaxProfit = &p
		}
		if stats.MaxLoss == nil || item.ProfitLoss.LessThan(stats.MaxLoss.ProfitLoss) {
			l := item
			stats.MaxLoss = &l
		}
		rateSum += float64(h.ProfitLossRate)
	}
	slices.SortStableFunc(stats.ProfitPositions, func(a, b PositionResult) int { return b.ProfitLoss.Cmp(a.ProfitLoss) })
	slices.SortStableFunc(stats.LossPositions, func(a, b PositionResult) int { return a.ProfitLoss.Cmp(b.ProfitLoss) })
	if len(holdings) > 0 {
		stats.AvgProfitLossRate = Percent(rateSum / float64(len(holdings)))
	}
	return stats
}
