package stockmanager

import "math"

// RatedItem is anything that has a profit rate to classify: a matched lot or
// an open position.
type RatedItem struct {
	StockCode  string  `json:"stock_code"`
	StockName  string  `json:"stock_name"`
	Profit     Money   `json:"profit"`
	ProfitRate Percent `json:"profit_rate"`
	Unrealized bool    `json:"unrealized,omitempty"`
}

// DistributionBucket is one band of profit rates.
type DistributionBucket struct {
	Label      string      `json:"label"`
	LowerBound Percent     `json:"lower_bound"` // null for -Inf
	UpperBound Percent     `json:"upper_bound"` // null for +Inf
	Count      int         `json:"count"`
	Percentage Percent     `json:"percentage"`
	Items      []RatedItem `json:"items"`
}

// Distribution is the classification of a set of items into the bands.
type Distribution struct {
	Buckets []DistributionBucket `json:"buckets"`
	Total   int                  `json:"total"`
	// Unclassified holds items whose rate fits no band, such as NaN.
	Unclassified []RatedItem `json:"unclassified"`
}

// band is the definition of one bucket. The first band is (-Inf, upper), the
// last one [lower, +Inf), the others [lower, upper).
type band struct {
	label        string
	lower, upper float64
}

var bands = []band{
	{"loss >20%", math.Inf(-1), -20},
	{"loss 10-20%", -20, -10},
	{"loss 5-10%", -10, -5},
	{"loss 0-5%", -5, 0},
	{"profit 0-5%", 0, 5},
	{"profit 5-10%", 5, 10},
	{"profit 10-20%", 10, 20},
	{"profit >20%", 20, math.Inf(1)},
}

// bandOf returns the index of the band containing r, or -1.
func bandOf(r Percent) int {
	v := float64(r)
	last := len(bands) - 1
	for i, b := range bands {
		var in bool
		switch i {
		case 0:
			in = v < b.upper
		case last:
			in = v >= b.lower
		default:
			in = v >= b.lower && v < b.upper
		}
		if in {
			return i
		}
	}
	return -1
}

// Bucketize classifies items by profit rate into the eight fixed bands.
// Percentages are relative to all the items, unclassified ones included.
func Bucketize(items []RatedItem) Distribution {
	dist := Distribution{
		Buckets:      make([]DistributionBucket, len(bands)),
		Total:        len(items),
		Unclassified: []RatedItem{},
	}
	for i, b := range bands {
		dist.Buckets[i] = DistributionBucket{
			Label:      b.label,
			LowerBound: Percent(b.lower),
			UpperBound: Percent(b.upper),
			Items:      []RatedItem{},
		}
	}
	for _, item := range items {
		i := bandOf(item.ProfitRate)
		if i < 0 {
			dist.Unclassified = append(dist.Unclassified, item)
			continue
		}
		dist.Buckets[i].Count++
		dist.Buckets[i].Items = append(dist.Buckets[i].Items, item)
	}
	for i := range dist.Buckets {
		dist.Buckets[i].Percentage = share(dist.Buckets[i].Count, dist.Total)
	}
	return dist
}

// lotItems returns the rated view of matched lots.
func lotItems(lots []MatchedLot) []RatedItem {
	items := make([]RatedItem, 0, len(lots))
	for _, l := range lots {
		items = append(items, RatedItem{
			StockCode:  l.StockCode,
			StockName:  l.StockName,
			Profit:     l.Profit,
			ProfitRate: l.ProfitRate,
		})
	}
	return items
}

// positionItems returns the rated view of open positions.
func positionItems(positions []UnrealizedPosition) []RatedItem {
	items := make([]RatedItem, 0, len(positions))
	for _, p := range positions {
		items = append(items, RatedItem{
			StockCode:  p.StockCode,
			StockName:  p.StockName,
			Profit:     p.Profit,
			ProfitRate: p.ProfitRate,
			Unrealized: true,
		})
	}
	return items
}
