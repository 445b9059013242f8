package stockmanager

import (
	"errors"

	"github.com/ntyt123/stock-manager-sub001/date"
)

var (
	// ErrUnknownTradeType is returned when a trade is neither a buy nor a sell.
	ErrUnknownTradeType = errors.New("unknown trade type")
	// ErrInvalidDate is returned when a trade or position date cannot be parsed.
	ErrInvalidDate = date.ErrInvalid
	// ErrUnknownCurrency is returned for an ISO 4217 code go-money does not know.
	ErrUnknownCurrency = errors.New("unknown currency")
)
