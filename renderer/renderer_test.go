package renderer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
	"github.com/ntyt123/stock-manager-sub001/date"
)

func testBook() ([]stockmanager.Trade, []stockmanager.Position) {
	on := date.MustParse
	trades := []stockmanager.Trade{
		stockmanager.NewBuy(on("2024-01-10"), "600000", "PF Bank", stockmanager.Q(100), stockmanager.M(10), stockmanager.M(5)),
		stockmanager.NewSell(on("2024-02-15"), "600000", "PF Bank", stockmanager.Q(100), stockmanager.M(12), stockmanager.M(5)),
		stockmanager.NewBuy(on("2024-03-01"), "000001", "PA Bank", stockmanager.Q(10), stockmanager.M(10), stockmanager.M(0)),
	}
	positions := []stockmanager.Position{{
		StockCode:    "000001",
		StockName:    "PA Bank",
		Quantity:     stockmanager.Q(10),
		CostPrice:    stockmanager.M(10),
		CurrentPrice: stockmanager.M(11),
	}}
	return trades, positions
}

func testReporter() *stockmanager.Reporter {
	today := date.MustParse("2024-06-30")
	return stockmanager.NewReporter(zerolog.Nop()).WithClock(func() date.Date { return today })
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

func TestConditionalBlock(t *testing.T) {
	var b bytes.Buffer
	ConditionalBlock(&b, func(w io.Writer) bool { w.Write([]byte("kept")); return true })
	ConditionalBlock(&b, func(w io.Writer) bool { w.Write([]byte("dropped")); return false })
	if got := b.String(); got != "kept" {
		t.Errorf("ConditionalBlock() wrote %q, want %q", got, "kept")
	}
}

func TestTable(t *testing.T) {
	var b bytes.Buffer
	tbl := newTable("Stock", "Profit")
	if tbl.Print(&b) || b.Len() != 0 {
		t.Errorf("empty table printed %q", b.String())
	}
	tbl.Row("AAA", "+1.00")
	if !tbl.Print(&b) {
		t.Fatal("table with rows was not printed")
	}
	want := "| Stock | Profit |\n|:---|---:|\n| AAA | +1.00 |\n\n"
	if got := b.String(); got != want {
		t.Errorf("table =\n%q\nwant\n%q", got, want)
	}
}

func TestReportsMarkdown(t *testing.T) {
	trades, positions := testBook()
	r := testReporter()

	t.Run("position", func(t *testing.T) {
		md := PositionMarkdown(r.PositionReport(positions), "USD")
		assertContains(t, md, "# Position Report", "## Positions", "PA Bank (000001)", "$110.00", "+10.00%", "## Industries", "unknown")
	})
	t.Run("trades", func(t *testing.T) {
		md := TradeMarkdown(r.TradeReport(trades, stockmanager.TradeReportOptions{}), "USD")
		assertContains(t, md, "# Trade Report", "## Stocks", "PF Bank (600000)", "## Success Rate", "1 of 1 closed trades")
		if strings.Contains(md, "## Oversold") {
			t.Errorf("unexpected oversold section:\n%s", md)
		}
	})
	t.Run("trades range", func(t *testing.T) {
		opts := stockmanager.TradeReportOptions{Range: date.Range{From: date.MustParse("2024-02-01")}}
		md := TradeMarkdown(r.TradeReport(trades, opts), "USD")
		assertContains(t, md, "*Since 2024-02-01*", "## Oversold")
	})
	t.Run("profit and loss", func(t *testing.T) {
		md := ProfitLossMarkdown(r.ProfitLossReport(trades, positions), "USD")
		assertContains(t, md, "# Profit and Loss Report", "## Realized", "+$190.00", "## Unrealized", "+$10.00", "## Distribution", "profit 10-20%")
	})
	t.Run("monthly", func(t *testing.T) {
		md := MonthlyMarkdown(r.MonthlyReport(trades, positions), "USD")
		assertContains(t, md, "# Monthly Report", "2024-06", "2024-02", "## Trades", "## Month over Month")
	})
	t.Run("yearly", func(t *testing.T) {
		md := YearlyMarkdown(r.YearlyReport(trades, positions, 2024), "USD")
		assertContains(t, md, "# Yearly Report 2024", "## Quarters", "Q1", "## Top Profits", "- Best trade: PF Bank (600000)")
		if strings.Contains(md, "## Top Losses") {
			t.Errorf("unexpected empty section:\n%s", md)
		}
	})
	t.Run("empty", func(t *testing.T) {
		md := ProfitLossMarkdown(r.ProfitLossReport(nil, nil), "USD")
		if strings.Contains(md, "## Realized") || strings.Contains(md, "## Distribution") {
			t.Errorf("empty report printed empty sections:\n%s", md)
		}
	})
}

func TestHTML(t *testing.T) {
	got, err := HTML("# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	assertContains(t, got, "<h1>Title</h1>", "<table>", "<td>1</td>")

	page, err := HTMLPage("P&L", "text")
	if err != nil {
		t.Fatalf("HTMLPage() error = %v", err)
	}
	assertContains(t, page, "<title>P&amp;L</title>", "<p>text</p>")
}

func TestTerminal(t *testing.T) {
	got, err := Terminal("# Yearly Report\n\nSome text.\n", "notty", 80)
	if err != nil {
		t.Fatalf("Terminal() error = %v", err)
	}
	assertContains(t, got, "Yearly Report", "Some text.")
}
