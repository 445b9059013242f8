package stockmanager

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of decimal places kept when a Money is persisted.
// It is wider than any currency fraction so that fee shares survive a round trip.
const moneyPlaces = 6

// Money is an amount in the reporting currency, in major units.
// All amounts of a portfolio share one currency, Money carries none.
type Money struct {
	value decimal.Decimal
}

// M returns the amount v.
func M[T number](v T) Money { return Money{value: newDecimal(v)} }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) Cmp(n Money) int                 { return m.value.Cmp(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) Sign() int                       { return m.value.Sign() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value)} }

// Div divides m by q. Dividing by a zero quantity yields zero.
func (m Money) Div(q Quantity) Money {
	if q.IsZero() {
		return Money{}
	}
	return Money{value: m.value.Div(q.value)}
}

// Avg returns m split evenly over n items, zero when there is none.
func (m Money) Avg(n int) Money {
	if n == 0 {
		return Money{}
	}
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))}
}

// Float returns m as a float64, for statistics and display only.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// String returns m with two decimal places and no currency symbol.
func (m Money) String() string { return m.value.StringFixed(2) }

// Format renders m in the given ISO 4217 currency, e.g. "¥1,200.50".
func (m Money) Format(currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedFormat is like Format with an explicit sign. Zero is represented as "-".
func (m Money) SignedFormat(currency string) string {
	switch {
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.Format(currency)
	default:
		return m.Format(currency)
	}
}

// ValidCurrency checks that code is an ISO 4217 currency known to go-money.
func ValidCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(moneyPlaces).MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
