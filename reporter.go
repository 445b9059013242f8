package stockmanager

import (
	"github.com/ntyt123/stock-manager-sub001/date"
	"github.com/rs/zerolog"
)

// Reporter assembles the five reports from trades and positions.
//
// A Reporter holds no state between calls and can be shared between
// goroutines. Reports are deterministic for a given clock: the clock only
// dates the unrealized point of the profit curve, the current month and the
// current year.
type Reporter struct {
	log        zerolog.Logger
	now        func() date.Date
	industries IndustryLookup
}

// NewReporter returns a Reporter that logs data defects to log, uses the
// system clock and classifies every stock as UnknownIndustry.
func NewReporter(log zerolog.Logger) *Reporter {
	return &Reporter{
		log: log.With().Str("component", "reporter").Logger(),
		now: date.Today,
	}
}

// WithClock returns a copy of r using now as the current day.
func (r *Reporter) WithClock(now func() date.Date) *Reporter {
	c := *r
	c.now = now
	return &c
}

// WithIndustries returns a copy of r classifying stocks with lookup.
func (r *Reporter) WithIndustries(lookup IndustryLookup) *Reporter {
	c := *r
	c.industries = lookup
	return &c
}

// match runs MatchFIFO and reports oversold stocks.
func (r *Reporter) match(trades []Trade) Matching {
	m := MatchFIFO(trades)
	for _, o := range m.Oversold {
		r.log.Warn().
			Str("stock_code", o.StockCode).
			Str("quantity", o.Quantity.String()).
			Msg("sell quantity exceeds earlier buys, the excess is ignored")
	}
	return m
}

// bucketize runs Bucketize and reports items that fit no band.
func (r *Reporter) bucketize(items []RatedItem) Distribution {
	dist := Bucketize(items)
	for _, item := range dist.Unclassified {
		r.log.Warn().
			Str("stock_code", item.StockCode).
			Float64("profit_rate", float64(item.ProfitRate)).
			Msg("profit rate fits no distribution band")
	}
	return dist
}
