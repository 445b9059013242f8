// Package store loads the trades and positions of a portfolio from where the
// portfolio application keeps them: JSON files or the application's SQLite
// database.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
)

// ErrUnknownSource is returned by Open for an unsupported source kind.
var ErrUnknownSource = errors.New("unknown source")

// Book is everything the reports need: the trades in recording order and the
// current positions.
type Book struct {
	Trades    []stockmanager.Trade
	Positions []stockmanager.Position
}

// Source loads a Book.
type Source interface {
	Load(ctx context.Context) (*Book, error)
}

// Source kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// Options selects and configures a Source.
type Options struct {
	Kind string
	// Trades and Positions are the file paths of a file source. Either may be empty.
	Trades    string
	Positions string
	// Database and UserID select the rows of a sqlite source.
	Database string
	UserID   int64
}

// Open returns the Source described by opts.
func Open(opts Options, log zerolog.Logger) (Source, error) {
	switch opts.Kind {
	case KindFile, "":
		return &FileSource{TradesPath: opts.Trades, PositionsPath: opts.Positions, log: log.With().Str("source", KindFile).Logger()}, nil
	case KindSQLite:
		if opts.Database == "" {
			return nil, fmt.Errorf("sqlite source: missing database path")
		}
		return &SQLiteSource{Path: opts.Database, UserID: opts.UserID, log: log.With().Str("source", KindSQLite).Logger()}, nil
	default:
		return nil, fmt.Errorf("%w %q, want %q or %q", ErrUnknownSource, opts.Kind, KindFile, KindSQLite)
	}
}
