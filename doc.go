// Package stockmanager is the accounting engine of a personal stock
// portfolio tracker. It reads the trades and holdings recorded by a user and
// turns them into analytical reports.
//
// The engine is organised in layers, each a set of pure functions over plain
// records:
//   - Lot matching: MatchFIFO pairs buys and sells of the same stock first in,
//     first out, allocating fees proportionally to the matched quantity.
//   - Unrealized gains: ComputeUnrealized values the currently open positions
//     against their last known price.
//   - Distribution: Bucketize classifies profit rates into eight fixed bands.
//   - Temporal aggregation: profits and trade activity are rolled up per day,
//     month, quarter and year, with cumulative curves, period over period
//     comparisons and rankings.
//   - Reports: a Reporter composes the layers into the position, trade,
//     profit-loss, monthly and yearly reports.
//
// No function of the engine performs I/O or keeps state between calls; the
// store subpackage supplies the records and the renderer subpackage presents
// the reports. This package serves as the foundational logic for the `smr`
// command-line tool.
package stockmanager

import "github.com/shopspring/decimal"

func init() {
	// Money and Quantity are persisted as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
