package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{"day", New(2025, time.September, 8), Daily, Range{New(2025, time.September, 8), New(2025, time.September, 8)}},
		{"a wednesday", New(2025, time.September, 10), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"a sunday", New(2025, time.September, 14), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"leap february", New(2024, time.February, 15), Monthly, Range{New(2024, time.February, 1), New(2024, time.February, 29)}},
		{"Q2", New(2025, time.May, 20), Quarterly, Range{New(2025, time.April, 1), New(2025, time.June, 30)}},
		{"Q4", New(2025, time.November, 2), Quarterly, Range{New(2025, time.October, 1), New(2025, time.December, 31)}},
		{"year", New(2025, time.September, 8), Yearly, Range{New(2025, time.January, 1), New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	from, to := New(2024, time.January, 1), New(2024, time.January, 31)
	testCases := []struct {
		name string
		r    Range
		in   Date
		want bool
	}{
		{"lower bound", Range{from, to}, from, true},
		{"upper bound", Range{from, to}, to, true},
		{"before", Range{from, to}, from.Add(-1), false},
		{"after", Range{from, to}, to.Add(1), false},
		{"open start", Range{To: to}, New(1999, time.May, 1), true},
		{"open end", Range{From: from}, New(2099, time.May, 1), true},
		{"open end excludes before", Range{From: from}, from.Add(-1), false},
		{"unbounded", Range{}, New(2024, time.June, 1), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.in); got != tc.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tc.r, tc.in, got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Daily Identifier", NewRange(New(2025, time.September, 8), Daily), "2025-09-08"},
		{"Weekly Identifier", NewRange(New(2025, time.September, 8), Weekly), "2025-W37"},
		{"Early Week Identifier", NewRange(New(2025, time.January, 6), Weekly), "2025-W02"},
		{"Monthly Identifier", NewRange(New(2025, time.September, 1), Monthly), "2025-09"},
		{"Quarterly Identifier", NewRange(New(2025, time.July, 1), Quarterly), "2025-Q3"},
		{"Yearly Identifier", NewRange(New(2025, time.January, 1), Yearly), "2025"},
		{"Custom Range Identifier", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
		{"Eror Prone Identifier", Range{From: New(2025, time.January, 1), To: New(2026, time.December, 31)}, "2025-01-01_2026-12-31"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"Week", Weekly, false},
		{"monthly", Monthly, false},
		{"quarter", Quarterly, false},
		{"YEARLY", Yearly, false},
		{"unknown", Daily, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
