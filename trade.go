package stockmanager

import (
	"errors"
	"fmt"

	"github.com/ntyt123/stock-manager-sub001/date"
)

// ErrInvalidTrade is returned by Trade.Validate.
var ErrInvalidTrade = errors.New("invalid trade")

// Trade is one recorded buy or sell operation. Trades are immutable: the engine
// never modifies the records it is given.
type Trade struct {
	ID        int64     `json:"id,omitempty"`
	Type      TradeType `json:"trade_type"`
	Date      date.Date `json:"trade_date"`
	StockCode string    `json:"stock_code"`
	StockName string    `json:"stock_name"`
	Quantity  Quantity  `json:"quantity"`
	Price     Money     `json:"price"`
	Fee       Money     `json:"fee"`
	// Amount is the traded value as recorded, usually Quantity*Price.
	Amount Money  `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// Value returns the recorded amount, or Quantity*Price when none was recorded.
func (t Trade) Value() Money {
	if !t.Amount.IsZero() {
		return t.Amount
	}
	return t.Price.Mul(t.Quantity)
}

// Validate checks the record contract: a known type, a date, a stock code,
// a positive quantity and price and a non negative fee.
func (t Trade) Validate() error {
	switch {
	case t.Type != Buy && t.Type != Sell:
		return fmt.Errorf("%w: %w", ErrInvalidTrade, ErrUnknownTradeType)
	case t.Date.IsZero():
		return fmt.Errorf("%w: missing trade_date", ErrInvalidTrade)
	case t.StockCode == "":
		return fmt.Errorf("%w: missing stock_code", ErrInvalidTrade)
	case !t.Quantity.IsPositive():
		return fmt.Errorf("%w: quantity %v must be positive", ErrInvalidTrade, t.Quantity)
	case !t.Price.IsPositive():
		return fmt.Errorf("%w: price %v must be positive", ErrInvalidTrade, t.Price)
	case t.Fee.IsNegative():
		return fmt.Errorf("%w: fee %v must not be negative", ErrInvalidTrade, t.Fee)
	}
	return nil
}

// NewBuy returns a buy trade whose amount is quantity*price.
func NewBuy(on date.Date, code, name string, quantity Quantity, price, fee Money) Trade {
	return newTrade(Buy, on, code, name, quantity, price, fee)
}

// NewSell returns a sell trade whose amount is quantity*price.
func NewSell(on date.Date, code, name string, quantity Quantity, price, fee Money) Trade {
	return newTrade(Sell, on, code, name, quantity, price, fee)
}

func newTrade(t TradeType, on date.Date, code, name string, quantity Quantity, price, fee Money) Trade {
	return Trade{
		Type:      t,
		Date:      on,
		StockCode: code,
		StockName: name,
		Quantity:  quantity,
		Price:     price,
		Fee:       fee,
		Amount:    price.Mul(quantity),
	}
}
