package stockmanager

import (
	"encoding/json"

	"github.com/ntyt123/stock-manager-sub001/date"
)

// Position is the aggregate of the open lots of one stock, as maintained by the
// portfolio store. MarketValue, ProfitLoss and ProfitLossRate may be supplied
// precomputed; when nil they are derived from prices and quantity.
type Position struct {
	StockCode      string
	StockName      string
	Quantity       Quantity
	CostPrice      Money
	CurrentPrice   Money
	MarketValue    *Money
	ProfitLoss     *Money
	ProfitLossRate *Percent
	BuyDate        date.Date
	Notes          string
}

// Valuation is the money view of a Position.
type Valuation struct {
	CostValue      Money   `json:"cost_value"`
	MarketValue    Money   `json:"market_value"`
	ProfitLoss     Money   `json:"profit_loss"`
	ProfitLossRate Percent `json:"profit_loss_rate"`
}

// Valuation returns the position's values, preferring the precomputed fields.
func (p Position) Valuation() Valuation {
	v := Valuation{
		CostValue:   p.CostPrice.Mul(p.Quantity),
		MarketValue: p.CurrentPrice.Mul(p.Quantity),
	}
	if p.MarketValue != nil {
		v.MarketValue = *p.MarketValue
	}
	v.ProfitLoss = v.MarketValue.Sub(v.CostValue)
	if p.ProfitLoss != nil {
		v.ProfitLoss = *p.ProfitLoss
	}
	v.ProfitLossRate = rate(v.ProfitLoss, v.CostValue)
	if p.ProfitLossRate != nil && p.ProfitLossRate.IsFinite() {
		v.ProfitLossRate = *p.ProfitLossRate
	}
	return v
}

// positionJSON is the persisted form of a Position.
type positionJSON struct {
	StockCode      string     `json:"stock_code"`
	StockName      string     `json:"stock_name"`
	Quantity       Quantity   `json:"quantity"`
	CostPrice      Money      `json:"cost_price"`
	CurrentPrice   Money      `json:"current_price"`
	MarketValue    *Money     `json:"market_value"`
	ProfitLoss     *Money     `json:"profit_loss"`
	ProfitLossRate *Percent   `json:"profit_loss_rate"`
	BuyDate        *date.Date `json:"buy_date"`
	Notes          string     `json:"notes"`
}

// MarshalJSON writes the position with its derived values filled in.
func (p Position) MarshalJSON() ([]byte, error) {
	v := p.Valuation()
	var w jsonObjectWriter
	w.Append("stock_code", p.StockCode)
	w.Append("stock_name", p.StockName)
	w.Append("quantity", p.Quantity)
	w.Append("cost_price", p.CostPrice)
	w.Append("current_price", p.CurrentPrice)
	w.Append("market_value", v.MarketValue)
	w.Append("profit_loss", v.ProfitLoss)
	w.Append("profit_loss_rate", v.ProfitLossRate)
	w.Optional("buy_date", p.BuyDate)
	w.Optional("notes", p.Notes)
	return w.MarshalJSON()
}

func (p *Position) UnmarshalJSON(b []byte) error {
	var tmp positionJSON
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}
	*p = Position{
		StockCode:      tmp.StockCode,
		StockName:      tmp.StockName,
		Quantity:       tmp.Quantity,
		CostPrice:      tmp.CostPrice,
		CurrentPrice:   tmp.CurrentPrice,
		MarketValue:    tmp.MarketValue,
		ProfitLoss:     tmp.ProfitLoss,
		ProfitLossRate: tmp.ProfitLossRate,
		Notes:          tmp.Notes,
	}
	if tmp.BuyDate != nil {
		p.BuyDate = *tmp.BuyDate
	}
	return nil
}
