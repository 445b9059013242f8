package date

import (
	"errors"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-10", New(2024, time.January, 10), false},
		{"2024-1-9", New(2024, time.January, 9), false},
		{" 2024-02-10 ", New(2024, time.February, 10), false},
		{"2024-02-10T15:30:00Z", New(2024, time.February, 10), false},
		{"2024-02-10T23:30:00+08:00", New(2024, time.February, 10), false},
		{"2024-02-10 09:15:00", New(2024, time.February, 10), false},
		{"10/02/2024", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalid", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDaysSince(t *testing.T) {
	testCases := []struct {
		from, to string
		want     int
	}{
		{"2024-01-10", "2024-02-10", 31},
		{"2024-02-10", "2024-02-10", 0},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2023-12-31", "2024-01-01", 1},
		{"2024-02-10", "2024-01-10", -31},
	}
	for _, tc := range testCases {
		if got := MustParse(tc.to).DaysSince(MustParse(tc.from)); got != tc.want {
			t.Errorf("%s.DaysSince(%s) = %d, want %d", tc.to, tc.from, got, tc.want)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2024, time.March, 5)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2024-03-05"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"2024-03-05"`)
	}
	var got Date
	if err := got.UnmarshalJSON([]byte(`"2024-3-5"`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if got != d {
		t.Errorf("UnmarshalJSON() = %v, want %v", got, d)
	}
}

func TestQuarterOf(t *testing.T) {
	want := map[time.Month]Quarter{
		time.January: Q1, time.March: Q1,
		time.April: Q2, time.June: Q2,
		time.July: Q3, time.September: Q3,
		time.October: Q4, time.December: Q4,
	}
	for m, q := range want {
		if got := QuarterOf(m); got != q {
			t.Errorf("QuarterOf(%v) = %v, want %v", m, got, q)
		}
	}
	if got := Q3.FirstMonth(); got != time.July {
		t.Errorf("Q3.FirstMonth() = %v, want July", got)
	}
}

func TestKey(t *testing.T) {
	d := New(2024, time.February, 10)
	testCases := []struct {
		period Period
		want   string
	}{
		{Daily, "2024-02-10"},
		{Weekly, "2024-W06"},
		{Monthly, "2024-02"},
		{Quarterly, "2024-Q1"},
		{Yearly, "2024"},
	}
	for _, tc := range testCases {
		if got := d.Key(tc.period); got != tc.want {
			t.Errorf("Key(%v) = %q, want %q", tc.period, got, tc.want)
		}
	}
}
