package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
	"github.com/ntyt123/stock-manager-sub001/store"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "CNY", c.Currency)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, store.KindFile, c.Source.Kind)
	assert.Nil(t, c.IndustryLookup())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
currency: USD
log:
  level: debug
  format: json
source:
  kind: sqlite
  database: /var/lib/stock/stock.db
  user_id: 7
industries:
  "600000": banking
exchange_boards: true
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", c.Currency)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, store.Options{Kind: store.KindSQLite, Database: "/var/lib/stock/stock.db", UserID: 7}, c.StoreOptions())

	lookup := c.IndustryLookup()
	require.NotNil(t, lookup)
	industry, ok := lookup.Industry("600000")
	assert.True(t, ok)
	assert.Equal(t, "banking", industry)
	industry, ok = lookup.Industry("300750")
	assert.True(t, ok)
	assert.Equal(t, "ChiNext", industry)
}

func TestLoad_Env(t *testing.T) {
	path := writeConfig(t, "currency: USD\n")
	t.Setenv("SMR_CURRENCY", "EUR")
	t.Setenv("SMR_TRADES", "trades.jsonl")
	t.Setenv("SMR_USER_ID", "12")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", c.Currency)
	assert.Equal(t, "trades.jsonl", c.Source.Trades)
	assert.Equal(t, int64(12), c.Source.UserID)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"currency", "currency: XXY\n", stockmanager.ErrUnknownCurrency},
		{"source", "source:\n  kind: postgres\n", store.ErrUnknownSource},
		{"log format", "log:\n  format: xml\n", ErrInvalid},
		{"log level", "log:\n  level: loud\n", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(writeConfig(t, "colour: blue\n"))
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLogger(t *testing.T) {
	c := Default()
	c.Log.Format = "json"
	c.Log.Level = "info"

	var buf bytes.Buffer
	log := c.Logger(&buf)
	log.Debug().Msg("hidden")
	log.Info().Str("k", "v").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
