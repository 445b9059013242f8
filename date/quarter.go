package date

import (
	"fmt"
	"time"
)

// Quarter is a calendar quarter, Q1 to Q4.
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// Quarters lists the four quarters in calendar order.
var Quarters = []Quarter{Q1, Q2, Q3, Q4}

var quarterOfMonth = map[time.Month]Quarter{
	time.January:   Q1,
	time.February:  Q1,
	time.March:     Q1,
	time.April:     Q2,
	time.May:       Q2,
	time.June:      Q2,
	time.July:      Q3,
	time.August:    Q3,
	time.September: Q3,
	time.October:   Q4,
	time.November:  Q4,
	time.December:  Q4,
}

// QuarterOf returns the quarter containing month m.
func QuarterOf(m time.Month) Quarter {
	q, ok := quarterOfMonth[m]
	if !ok {
		panic(fmt.Sprintf("invalid month %d", m))
	}
	return q
}

// Quarter returns the quarter containing d.
func (d Date) Quarter() Quarter { return QuarterOf(d.m) }

// FirstMonth returns the first month of q.
func (q Quarter) FirstMonth() time.Month { return time.Month(int(q-1)*3 + 1) }

func (q Quarter) String() string { return fmt.Sprintf("Q%d", int(q)) }
