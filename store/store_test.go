package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
	"github.com/ntyt123/stock-manager-sub001/date"
)

const schema = `
CREATE TABLE trade_operations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	trade_type TEXT NOT NULL,
	trade_date TEXT NOT NULL,
	stock_code TEXT NOT NULL,
	stock_name TEXT NOT NULL,
	quantity REAL NOT NULL,
	price REAL NOT NULL,
	fee REAL DEFAULT 0,
	amount REAL NOT NULL,
	notes TEXT,
	created_at TEXT NOT NULL
);
CREATE TABLE positions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	stock_code TEXT NOT NULL,
	stock_name TEXT NOT NULL,
	quantity REAL NOT NULL,
	cost_price REAL NOT NULL,
	current_price REAL,
	market_value REAL,
	profit_loss REAL,
	profit_loss_rate REAL,
	buy_date TEXT,
	notes TEXT
);`

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(schema)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO trade_operations
		(user_id, trade_type, trade_date, stock_code, stock_name, quantity, price, fee, amount, notes, created_at)
		VALUES
		(1, 'sell', '2024-02-01', '600000', 'PF Bank', 100, 11, 5, 1100, NULL, '2024-02-01 10:00:00'),
		(1, 'buy', '2024-01-10', '600000', 'PF Bank', 100, 10, 5, 1000, 'first', '2024-01-10 10:00:00'),
		(2, 'buy', '2024-01-11', '000001', 'PA Bank', 10, 10, 0, 100, NULL, '2024-01-11 10:00:00'),
		(1, 'buy', '2024-01-10', '000001', 'PA Bank', 10, 10, NULL, 100, NULL, '2024-01-10 09:00:00')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO positions
		(user_id, stock_code, stock_name, quantity, cost_price, current_price, market_value, profit_loss, profit_loss_rate, buy_date, notes)
		VALUES
		(1, '000001', 'PA Bank', 10, 10, 12, 120, 20, 20, '2024-01-10', NULL),
		(1, '300750', 'CATL', 5, 200, NULL, NULL, NULL, NULL, NULL, 'no quote')`)
	require.NoError(t, err)
	return path
}

func TestSQLiteSource_Load(t *testing.T) {
	path := newTestDB(t)
	src := NewSQLiteSource(path, 1, zerolog.Nop())

	book, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, book.Trades, 3)
	// ordered by trade_date then created_at
	assert.Equal(t, "000001", book.Trades[0].StockCode)
	assert.True(t, book.Trades[0].Fee.IsZero())
	assert.Equal(t, "600000", book.Trades[1].StockCode)
	assert.Equal(t, stockmanager.Buy, book.Trades[1].Type)
	assert.Equal(t, "first", book.Trades[1].Notes)
	assert.Equal(t, stockmanager.Sell, book.Trades[2].Type)
	assert.Equal(t, date.New(2024, 2, 1), book.Trades[2].Date)
	assert.True(t, book.Trades[2].Amount.Equal(stockmanager.M(1100)))

	require.Len(t, book.Positions, 2)
	first := book.Positions[0]
	require.NotNil(t, first.MarketValue)
	assert.True(t, first.MarketValue.Equal(stockmanager.M(120)))
	require.NotNil(t, first.ProfitLossRate)
	assert.Equal(t, date.New(2024, 1, 10), first.BuyDate)

	second := book.Positions[1]
	assert.Nil(t, second.MarketValue)
	assert.True(t, second.CurrentPrice.Equal(stockmanager.M(200)), "missing current price falls back to cost")
	assert.Equal(t, "no quote", second.Notes)
}

func TestSQLiteSource_UnknownUser(t *testing.T) {
	path := newTestDB(t)
	book, err := NewSQLiteSource(path, 42, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, book.Trades)
	assert.Empty(t, book.Positions)
}

func TestSQLiteSource_MissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	_, err := NewSQLiteSource(path, 1, zerolog.Nop()).Load(context.Background())
	assert.Error(t, err)
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	trades := filepath.Join(dir, "trades.jsonl")
	positions := filepath.Join(dir, "positions.json")
	require.NoError(t, os.WriteFile(trades, []byte(
		`{"trade_type":"buy","trade_date":"2024-01-10","stock_code":"600000","stock_name":"PF Bank","quantity":100,"price":10,"fee":5,"amount":1000}
{"trade_type":"sell","trade_date":"2024-02-01","stock_code":"600000","stock_name":"PF Bank","quantity":100,"price":11,"fee":5,"amount":1100}
`), 0o644))
	require.NoError(t, os.WriteFile(positions, []byte(
		`[{"stock_code":"000001","stock_name":"PA Bank","quantity":10,"cost_price":10,"current_price":12}]`), 0o644))

	book, err := NewFileSource(trades, positions, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, book.Trades, 2)
	require.Len(t, book.Positions, 1)
	assert.Equal(t, "000001", book.Positions[0].StockCode)
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileSource(filepath.Join(dir, "missing.json"), "", zerolog.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"trade_type":"hold","trade_date":"2024-01-10","stock_code":"X","quantity":1,"price":1}]`), 0o644))
	_, err = NewFileSource(bad, "", zerolog.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, stockmanager.ErrUnknownTradeType)

	book, err := NewFileSource("", "", zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, book.Trades)
}

func TestOpen(t *testing.T) {
	log := zerolog.Nop()

	src, err := Open(Options{Trades: "t.json"}, log)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	src, err = Open(Options{Kind: KindSQLite, Database: "stock.db", UserID: 3}, log)
	require.NoError(t, err)
	require.IsType(t, &SQLiteSource{}, src)
	assert.Equal(t, int64(3), src.(*SQLiteSource).UserID)

	_, err = Open(Options{Kind: KindSQLite}, log)
	assert.Error(t, err)

	_, err = Open(Options{Kind: "postgres"}, log)
	assert.ErrorIs(t, err, ErrUnknownSource)
}
