package stockmanager

// ProfitLossReport combines realized and unrealized results.
type ProfitLossReport struct {
	// Realized lots, latest sell first.
	Realized     Realized          `json:"realized_profit_loss"`
	Unrealized   Unrealized        `json:"unrealized_profit_loss"`
	TotalSummary ProfitLossSummary `json:"total_summary"`
	ProfitCurve  []CurvePoint      `json:"profit_curve"`
	Distribution Distribution      `json:"profit_distribution"`
	RateStats    RateStats         `json:"rate_stats"`
	Oversold     []Oversell        `json:"oversold"`
}

// ProfitLossSummary adds realized and unrealized profit.
type ProfitLossSummary struct {
	RealizedProfit      Money `json:"realized_profit"`
	UnrealizedProfit    Money `json:"unrealized_profit"`
	TotalProfit         Money `json:"total_profit"`
	RealizedTrades      int   `json:"realized_trades"`
	UnrealizedPositions int   `json:"unrealized_positions"`
}

// ProfitLossReport matches all trades and values all positions. The profit
// curve ends with the unrealized profit dated on the reporter's current day.
func (r *Reporter) ProfitLossReport(trades []Trade, positions []Position) *ProfitLossReport {
	m := r.match(trades)
	realized := Realize(sortedLots(m.Lots, bySellDateDesc))
	unrealized := ComputeUnrealized(positions)

	report := &ProfitLossReport{
		Realized:   realized,
		Unrealized: unrealized,
		TotalSummary: ProfitLossSummary{
			RealizedProfit:      realized.TotalProfit,
			UnrealizedProfit:    unrealized.TotalProfit,
			TotalProfit:         realized.TotalProfit.Add(unrealized.TotalProfit),
			RealizedTrades:      len(realized.Lots),
			UnrealizedPositions: len(unrealized.Positions),
		},
		ProfitCurve:  ProfitCurve(m.Lots, unrealized.TotalProfit, r.now()),
		Distribution: r.bucketize(append(lotItems(realized.Lots), positionItems(unrealized.Positions)...)),
		RateStats:    ComputeRateStats(m.Lots),
		Oversold:     m.Oversold,
	}
	r.log.Debug().
		Int("trades", len(trades)).
		Int("lots", len(m.Lots)).
		Int("positions", len(positions)).
		Msg("profit-loss report")
	return report
}
