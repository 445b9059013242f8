package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
)

// FileSource reads trades and positions from JSON files. Each file holds
// either a JSON array or one JSON object per line. An empty path means no
// records of that kind.
type FileSource struct {
	TradesPath    string
	PositionsPath string
	log           zerolog.Logger
}

// NewFileSource returns a FileSource reading the two files.
func NewFileSource(trades, positions string, log zerolog.Logger) *FileSource {
	return &FileSource{TradesPath: trades, PositionsPath: positions, log: log}
}

func (s *FileSource) Load(ctx context.Context) (*Book, error) {
	book := &Book{}
	if s.TradesPath != "" {
		trades, err := readFile(s.TradesPath, stockmanager.DecodeTrades)
		if err != nil {
			return nil, err
		}
		book.Trades = trades
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.PositionsPath != "" {
		positions, err := readFile(s.PositionsPath, stockmanager.DecodePositions)
		if err != nil {
			return nil, err
		}
		book.Positions = positions
	}
	s.log.Debug().
		Str("trades_path", s.TradesPath).
		Str("positions_path", s.PositionsPath).
		Int("trades", len(book.Trades)).
		Int("positions", len(book.Positions)).
		Msg("book loaded")
	return book, nil
}

func readFile[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	records, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return records, nil
}
