package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// column alignments of a markdown table.
const (
	left  = ":---"
	right = "---:"
)

// table accumulates rows and prints a markdown table.
type table struct {
	header []string
	align  []string
	rows   [][]string
}

// newTable returns a table whose first column is left aligned and the others right aligned.
func newTable(header ...string) *table {
	align := make([]string, len(header))
	for i := range align {
		align[i] = right
	}
	if len(align) > 0 {
		align[0] = left
	}
	return &table{header: header, align: align}
}

func (t *table) Row(cells ...string) { t.rows = append(t.rows, cells) }

// Print writes the table to w and reports whether it had any row.
func (t *table) Print(w io.Writer) bool {
	if len(t.rows) == 0 {
		return false
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(t.header, " | "))
	fmt.Fprintf(w, "|%s|\n", strings.Join(t.align, "|"))
	for _, r := range t.rows {
		fmt.Fprintf(w, "| %s |\n", strings.Join(r, " | "))
	}
	fmt.Fprintln(w)
	return true
}

// section prints a level 2 title and the table, only if the table has rows.
func section(w io.Writer, title string, t *table) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "## %s\n\n", title)
		return t.Print(w)
	})
}

// stock labels a stock by name and code.
func stock(code, name string) string {
	if name == "" || name == code {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}

// printer formats amounts in one currency.
type printer struct{ currency string }

func (p printer) Money(m stockmanager.Money) string  { return m.Format(p.currency) }
func (p printer) Signed(m stockmanager.Money) string { return m.SignedFormat(p.currency) }

func count(n int) string { return fmt.Sprintf("%d", n) }

func oversold(w io.Writer, items []stockmanager.Oversell) {
	t := newTable("Stock", "Unmatched Quantity")
	for _, o := range items {
		t.Row(stock(o.StockCode, o.StockName), o.Quantity.String())
	}
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprint(w, "## Oversold\n\n")
		fmt.Fprint(w, "These sells exceed the earlier buys. The excess is left out of the figures.\n\n")
		return t.Print(w)
	})
}
