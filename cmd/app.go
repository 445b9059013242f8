// Package cmd implements the smr command line: one subcommand per report.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
	"github.com/ntyt123/stock-manager-sub001/config"
	"github.com/ntyt123/stock-manager-sub001/store"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile    = flag.String("config", "", "Path to the YAML configuration file")
	tradesFile    = flag.String("trades", "", "Trades file (JSON array or JSONL), overrides the configured source")
	positionsFile = flag.String("positions", "", "Positions file (JSON array or JSONL), overrides the configured source")
	databaseFile  = flag.String("db", "", "SQLite database of the portfolio application, overrides the configured source")
	userID        = flag.Int64("user", 0, "User whose rows are read from the database")
	verbose       = flag.Bool("v", false, "Log debug messages")
)

// stdout and stderr are the command outputs.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&positionCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")
	c.Register(&pnlCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&yearlyCmd{}, "reports")
}

// session is what a report command needs: the settings, the loaded book and
// a reporter.
type session struct {
	cfg      *config.Config
	log      zerolog.Logger
	book     *store.Book
	reporter *stockmanager.Reporter
}

// newSession loads the configuration, applies the global flags over it and
// loads the book.
func newSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *tradesFile != "" || *positionsFile != "" {
		cfg.Source.Kind = store.KindFile
		cfg.Source.Trades = *tradesFile
		cfg.Source.Positions = *positionsFile
	}
	if *databaseFile != "" {
		cfg.Source.Kind = store.KindSQLite
		cfg.Source.Database = *databaseFile
	}
	if *userID != 0 {
		cfg.Source.UserID = *userID
	}
	if *verbose {
		cfg.Log.Level = zerolog.LevelDebugValue
	}

	log := cfg.Logger(stderr)
	src, err := store.Open(cfg.StoreOptions(), log)
	if err != nil {
		return nil, err
	}
	book, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load the portfolio: %w", err)
	}

	reporter := stockmanager.NewReporter(log)
	if lookup := cfg.IndustryLookup(); lookup != nil {
		reporter = reporter.WithIndustries(lookup)
	}
	return &session{cfg: cfg, log: log, book: book, reporter: reporter}, nil
}

// run executes a report with a fresh session and reports errors on stderr.
func run(ctx context.Context, report func(*session) error) subcommands.ExitStatus {
	s, err := newSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := report(s); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
