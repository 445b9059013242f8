package stockmanager

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		in       Money
		currency string
		want     string
	}{
		{M(1234.567), "USD", "$1,234.57"},
		{M(-3), "USD", "-$3.00"},
		{M(0.004), "USD", "$0.00"},
	}
	for _, tc := range testCases {
		if got := tc.in.Format(tc.currency); got != tc.want {
			t.Errorf("%v.Format(%q) = %q, want %q", tc.in, tc.currency, got, tc.want)
		}
	}
}

func TestMoney_SignedFormat(t *testing.T) {
	if got := M(0).SignedFormat("USD"); got != "-" {
		t.Errorf("SignedFormat(0) = %q, want %q", got, "-")
	}
	if got := M(2).SignedFormat("USD"); got != "+$2.00" {
		t.Errorf("SignedFormat(2) = %q, want %q", got, "+$2.00")
	}
}

func TestMoney_JSON(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`12.3456789`), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != "12.345679" {
		t.Errorf("Marshal() = %s, want 12.345679", b)
	}
	// quoted numbers are accepted on read
	if err := json.Unmarshal([]byte(`"0.44"`), &m); err != nil || !m.Equal(M(0.44)) {
		t.Errorf(`Unmarshal("0.44") = %v, %v`, m, err)
	}
}

func TestMoney_DivisionGuards(t *testing.T) {
	if got := M(10).Div(Q(0)); !got.IsZero() {
		t.Errorf("Div(0) = %v, want 0", got)
	}
	if got := M(10).Avg(0); !got.IsZero() {
		t.Errorf("Avg(0) = %v, want 0", got)
	}
	if got := M(10).Avg(4); !got.Equal(M(2.5)) {
		t.Errorf("Avg(4) = %v, want 2.5", got)
	}
	if got := rate(M(5), M(0)); got != 0 {
		t.Errorf("rate(5, 0) = %v, want 0", got)
	}
	if got := rate(M(197.8), M(1000)); !got.Equal(19.78) {
		t.Errorf("rate(197.8, 1000) = %v, want 19.78", got)
	}
	if got := share(1, 0); got != 0 {
		t.Errorf("share(1, 0) = %v, want 0", got)
	}
}

func TestValidCurrency(t *testing.T) {
	if err := ValidCurrency("CNY"); err != nil {
		t.Errorf("ValidCurrency(CNY) = %v", err)
	}
	if err := ValidCurrency("XYZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("ValidCurrency(XYZ) = %v, want ErrUnknownCurrency", err)
	}
}

func TestPercent_SignedString(t *testing.T) {
	testCases := []struct {
		in   Percent
		want string
	}{
		{19.781, "+19.78%"},
		{-5, "-5.00%"},
		{0, "-"},
		{-0.001, "-"},
	}
	for _, tc := range testCases {
		if got := tc.in.SignedString(); got != tc.want {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.in), got, tc.want)
		}
	}
}

func TestParseTradeType(t *testing.T) {
	testCases := []struct {
		in      string
		want    TradeType
		wantErr bool
	}{
		{"buy", Buy, false},
		{"SELL", Sell, false},
		{" sell ", Sell, false},
		{"dividend", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseTradeType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTradeType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnknownTradeType) {
			t.Errorf("ParseTradeType(%q) error = %v, want ErrUnknownTradeType", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseTradeType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
