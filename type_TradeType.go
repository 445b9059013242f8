package stockmanager

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TradeType tells whether a trade opens or closes shares.
type TradeType int

const (
	// Buy acquires shares, opening a lot.
	Buy TradeType = iota + 1
	// Sell disposes of shares, consuming the oldest open lots first.
	Sell
)

func (t TradeType) String() string {
	switch t {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTradeType parses "buy" or "sell", ignoring case.
func ParseTradeType(s string) (TradeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTradeType, s)
	}
}

func (t TradeType) MarshalJSON() ([]byte, error) {
	if t != Buy && t != Sell {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTradeType, int(t))
	}
	return json.Marshal(t.String())
}

func (t *TradeType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseTradeType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
