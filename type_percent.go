package stockmanager

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Percent is a percentage, 19.78 means 19.78%.
type Percent float64

var hundred = decimal.NewFromInt(100)

// rate returns num/den as a percentage, or 0 when den is zero.
func rate(num, den Money) Percent {
	if den.IsZero() {
		return 0
	}
	return Percent(num.value.Div(den.value).Mul(hundred).InexactFloat64())
}

// share returns n/total as a percentage, or 0 when total is zero.
func share(n, total int) Percent {
	if total == 0 {
		return 0
	}
	return Percent(float64(n) / float64(total) * 100)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

// IsFinite reports whether p is neither NaN nor infinite.
func (p Percent) IsFinite() bool {
	return !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0)
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// MarshalJSON writes p rounded to 4 decimals. Non finite values are written as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.IsFinite() {
		return []byte("null"), nil
	}
	v := math.Round(float64(p)*1e4) / 1e4
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = Percent(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid percent %s: %w", b, err)
	}
	*p = Percent(v)
	return nil
}
