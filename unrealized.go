package stockmanager

import "slices"

// UnrealizedPosition is the floating result of one open position.
type UnrealizedPosition struct {
	StockCode    string   `json:"stock_code"`
	StockName    string   `json:"stock_name"`
	Quantity     Quantity `json:"quantity"`
	CostPrice    Money    `json:"cost_price"`
	CurrentPrice Money    `json:"current_price"`
	Profit       Money    `json:"profit"`
	ProfitRate   Percent  `json:"profit_rate"`
}

// Unrealized summarises the floating results of all open positions.
type Unrealized struct {
	// Positions sorted by profit rate, best first.
	Positions   []UnrealizedPosition `json:"positions"`
	TotalProfit Money                `json:"total_profit"`
	ProfitCount int                  `json:"profit_count"`
	LossCount   int                  `json:"loss_count"`
	AvgProfit   Money                `json:"avg_profit"`
}

// ComputeUnrealized values every position at its current price.
//
// The profit is always recomputed from prices, precomputed fields of the
// positions are ignored. A position with a zero cost price has a 0% rate.
func ComputeUnrealized(positions []Position) Unrealized {
	u := Unrealized{Positions: make([]UnrealizedPosition, 0, len(positions))}
	for _, p := range positions {
		diff := p.CurrentPrice.Sub(p.CostPrice)
		up := UnrealizedPosition{
			StockCode:    p.StockCode,
			StockName:    p.StockName,
			Quantity:     p.Quantity,
			CostPrice:    p.CostPrice,
			CurrentPrice: p.CurrentPrice,
			Profit:       diff.Mul(p.Quantity),
			ProfitRate:   rate(diff, p.CostPrice),
		}
		u.Positions = append(u.Positions, up)
		u.TotalProfit = u.TotalProfit.Add(up.Profit)
		switch up.Profit.Sign() {
		case 1:
			u.ProfitCount++
		case -1:
			u.LossCount++
		}
	}
	u.AvgProfit = u.TotalProfit.Avg(len(positions))
	slices.SortStableFunc(u.Positions, func(a, b UnrealizedPosition) int {
		return comparePercent(b.ProfitRate, a.ProfitRate)
	})
	return u
}
