package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
	"github.com/ntyt123/stock-manager-sub001/date"
	"github.com/ntyt123/stock-manager-sub001/renderer"
)

type positionCmd struct{ out output }

func (*positionCmd) Name() string     { return "position" }
func (*positionCmd) Synopsis() string { return "display the open positions with weights and industries" }
func (*positionCmd) Usage() string {
	return `smr position [-format <format>] [-query <jsonpath>]

  Displays the open positions: summary, weights, industries, cost analysis
  and profit and loss statistics.
`
}

func (c *positionCmd) SetFlags(f *flag.FlagSet) { c.out.SetFlags(f) }

func (c *positionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.out.check(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		report := s.reporter.PositionReport(s.book.Positions)
		return c.out.write(stdout, report, "Position Report", func() string {
			return renderer.PositionMarkdown(report, s.cfg.Currency)
		})
	})
}

type tradesCmd struct {
	out      output
	from, to string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "display trading activity, fees and success rate" }
func (*tradesCmd) Usage() string {
	return `smr trades [-from <date>] [-to <date>] [-format <format>] [-query <jsonpath>]

  Displays the trades between two dates, bounds included. Sells are matched
  against the buys of the same range only.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	c.out.SetFlags(f)
	f.StringVar(&c.from, "from", "", "First trade date to include (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Last trade date to include (YYYY-MM-DD)")
}

// options parses the date flags.
func (c *tradesCmd) options() (opts stockmanager.TradeReportOptions, err error) {
	if c.from != "" {
		if opts.Range.From, err = date.Parse(c.from); err != nil {
			return opts, fmt.Errorf("-from: %w", err)
		}
	}
	if c.to != "" {
		if opts.Range.To, err = date.Parse(c.to); err != nil {
			return opts, fmt.Errorf("-to: %w", err)
		}
	}
	if !opts.Range.From.IsZero() && !opts.Range.To.IsZero() && opts.Range.To.Before(opts.Range.From) {
		return opts, fmt.Errorf("-to %s is before -from %s", opts.Range.To, opts.Range.From)
	}
	return opts, nil
}

func (c *tradesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err == nil {
		err = c.out.check()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		report := s.reporter.TradeReport(s.book.Trades, opts)
		return c.out.write(stdout, report, "Trade Report", func() string {
			return renderer.TradeMarkdown(report, s.cfg.Currency)
		})
	})
}

type pnlCmd struct{ out output }

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "display realized and unrealized profit and loss" }
func (*pnlCmd) Usage() string {
	return `smr pnl [-format <format>] [-query <jsonpath>]

  Displays the realized profit of FIFO matched trades, the unrealized profit
  of the open positions, the profit curve and the distribution of rates.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) { c.out.SetFlags(f) }

func (c *pnlCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.out.check(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		report := s.reporter.ProfitLossReport(s.book.Trades, s.book.Positions)
		return c.out.write(stdout, report, "Profit and Loss Report", func() string {
			return renderer.ProfitLossMarkdown(report, s.cfg.Currency)
		})
	})
}

type monthlyCmd struct{ out output }

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display profit and trading activity per month" }
func (*monthlyCmd) Usage() string {
	return `smr monthly [-format <format>] [-query <jsonpath>]

  Displays the profit per month, realized by sell date, with the unrealized
  profit of the open positions in the current month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) { c.out.SetFlags(f) }

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.out.check(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		report := s.reporter.MonthlyReport(s.book.Trades, s.book.Positions)
		return c.out.write(stdout, report, "Monthly Report", func() string {
			return renderer.MonthlyMarkdown(report, s.cfg.Currency)
		})
	})
}

type yearlyCmd struct {
	out  output
	year int
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the review of a calendar year" }
func (*yearlyCmd) Usage() string {
	return `smr yearly [-year <year>] [-format <format>] [-query <jsonpath>]

  Displays the review of a year. Only the trades dated in the year are
  matched, and open positions only count for the current year.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	c.out.SetFlags(f)
	f.IntVar(&c.year, "year", 0, "Year to review (defaults to the current year)")
}

func (c *yearlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := c.out.check()
	if err == nil && c.year != 0 && (c.year < 1900 || c.year > time.Now().Year()+1) {
		err = fmt.Errorf("-year %d is out of range", c.year)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		report := s.reporter.YearlyReport(s.book.Trades, s.book.Positions, c.year)
		return c.out.write(stdout, report, fmt.Sprintf("Yearly Report %d", report.Year), func() string {
			return renderer.YearlyMarkdown(report, s.cfg.Currency)
		})
	})
}
