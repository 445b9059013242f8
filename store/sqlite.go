package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
	"github.com/ntyt123/stock-manager-sub001/date"
)

// SQLiteSource reads one user's trades and positions from the portfolio
// application's database, tables trade_operations and positions.
type SQLiteSource struct {
	Path   string
	UserID int64
	log    zerolog.Logger
}

// NewSQLiteSource returns a SQLiteSource reading the rows of userID.
func NewSQLiteSource(path string, userID int64, log zerolog.Logger) *SQLiteSource {
	return &SQLiteSource{Path: path, UserID: userID, log: log}
}

// tradeColumns must match the scan order of scanTrade.
const tradeColumns = `id, trade_type, trade_date, stock_code, stock_name, quantity, price, fee, amount, notes`

// positionColumns must match the scan order of scanPosition.
const positionColumns = `stock_code, stock_name, quantity, cost_price, current_price, market_value, profit_loss, profit_loss_rate, buy_date, notes`

func (s *SQLiteSource) Load(ctx context.Context) (*Book, error) {
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", s.Path, err)
	}
	defer db.Close()
	return s.LoadFrom(ctx, db)
}

// LoadFrom reads the book from an already opened database.
func (s *SQLiteSource) LoadFrom(ctx context.Context, db *sql.DB) (*Book, error) {
	trades, err := s.trades(ctx, db)
	if err != nil {
		return nil, err
	}
	positions, err := s.positions(ctx, db)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int64("user_id", s.UserID).
		Int("trades", len(trades)).
		Int("positions", len(positions)).
		Msg("book loaded")
	return &Book{Trades: trades, Positions: positions}, nil
}

func (s *SQLiteSource) trades(ctx context.Context, db *sql.DB) ([]stockmanager.Trade, error) {
	query := "SELECT " + tradeColumns + " FROM trade_operations WHERE user_id = ? ORDER BY trade_date ASC, created_at ASC, id ASC"
	rows, err := db.QueryContext(ctx, query, s.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []stockmanager.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trades: %w", err)
	}
	return trades, nil
}

func scanTrade(rows *sql.Rows) (stockmanager.Trade, error) {
	var (
		t               stockmanager.Trade
		kind, on        string
		quantity, price float64
		fee, amount     sql.NullFloat64
		notes           sql.NullString
	)
	if err := rows.Scan(&t.ID, &kind, &on, &t.StockCode, &t.StockName, &quantity, &price, &fee, &amount, &notes); err != nil {
		return t, fmt.Errorf("failed to scan trade: %w", err)
	}
	var err error
	if t.Type, err = stockmanager.ParseTradeType(kind); err != nil {
		return t, fmt.Errorf("trade %d: %w", t.ID, err)
	}
	if t.Date, err = date.Parse(on); err != nil {
		return t, fmt.Errorf("trade %d: %w", t.ID, err)
	}
	t.Quantity = stockmanager.Q(quantity)
	t.Price = stockmanager.M(price)
	t.Fee = stockmanager.M(fee.Float64)
	t.Amount = stockmanager.M(amount.Float64)
	t.Notes = notes.String
	return t, nil
}

func (s *SQLiteSource) positions(ctx context.Context, db *sql.DB) ([]stockmanager.Position, error) {
	query := "SELECT " + positionColumns + " FROM positions WHERE user_id = ? ORDER BY id ASC"
	rows, err := db.QueryContext(ctx, query, s.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	var positions []stockmanager.Position
	for rows.Next() {
		p, err := s.scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}
	return positions, nil
}

// scanPosition reads a position row. A missing current price falls back to
// the cost price.
func (s *SQLiteSource) scanPosition(rows *sql.Rows) (stockmanager.Position, error) {
	var (
		p                                   stockmanager.Position
		quantity, cost                      float64
		current, market, profit, profitRate sql.NullFloat64
		buyDate, notes                      sql.NullString
	)
	if err := rows.Scan(&p.StockCode, &p.StockName, &quantity, &cost, &current, &market, &profit, &profitRate, &buyDate, &notes); err != nil {
		return p, fmt.Errorf("failed to scan position: %w", err)
	}
	p.Quantity = stockmanager.Q(quantity)
	p.CostPrice = stockmanager.M(cost)
	p.CurrentPrice = p.CostPrice
	if current.Valid {
		p.CurrentPrice = stockmanager.M(current.Float64)
	} else {
		s.log.Debug().Str("stock_code", p.StockCode).Msg("position has no current price, using cost price")
	}
	if market.Valid {
		v := stockmanager.M(market.Float64)
		p.MarketValue = &v
	}
	if profit.Valid {
		v := stockmanager.M(profit.Float64)
		p.ProfitLoss = &v
	}
	if profitRate.Valid {
		v := stockmanager.Percent(profitRate.Float64)
		p.ProfitLossRate = &v
	}
	if buyDate.Valid && buyDate.String != "" {
		on, err := date.Parse(buyDate.String)
		if err != nil {
			return p, fmt.Errorf("position %s: %w", p.StockCode, err)
		}
		p.BuyDate = on
	}
	p.Notes = notes.String
	return p, nil
}
