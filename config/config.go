// Package config loads the settings of the smr command: a YAML file, an
// optional .env file and SMR_* environment variables, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	stockmanager "github.com/ntyt123/stock-manager-sub001"
	"github.com/ntyt123/stock-manager-sub001/store"
)

// ErrInvalid is returned for settings that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the smr settings.
type Config struct {
	// Currency is the ISO code used to format amounts. It is never converted.
	Currency string `yaml:"currency"`
	Log      struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // console or json
	} `yaml:"log"`
	Source struct {
		Kind      string `yaml:"kind"` // file or sqlite
		Trades    string `yaml:"trades"`
		Positions string `yaml:"positions"`
		Database  string `yaml:"database"`
		UserID    int64  `yaml:"user_id"`
	} `yaml:"source"`
	// Industries maps stock codes to industry names.
	Industries map[string]string `yaml:"industries"`
	// ExchangeBoards classifies unmapped A-share codes by listing board.
	ExchangeBoards bool `yaml:"exchange_boards"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	c := &Config{Currency: "CNY"}
	c.Log.Level = "warn"
	c.Log.Format = "console"
	c.Source.Kind = store.KindFile
	c.Source.UserID = 1
	return c
}

// Load reads the YAML file at path over the defaults, then the .env file if
// any, then applies the SMR_* environment variables. An empty path skips the
// file.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()
		if err := c.decode(f); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
	}

	// a missing .env file is fine
	_ = godotenv.Load()
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Currency = getEnv("SMR_CURRENCY", c.Currency)
	c.Log.Level = getEnv("SMR_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("SMR_LOG_FORMAT", c.Log.Format)
	c.Source.Kind = getEnv("SMR_SOURCE", c.Source.Kind)
	c.Source.Trades = getEnv("SMR_TRADES", c.Source.Trades)
	c.Source.Positions = getEnv("SMR_POSITIONS", c.Source.Positions)
	c.Source.Database = getEnv("SMR_DATABASE", c.Source.Database)
	c.Source.UserID = getEnvAsInt64("SMR_USER_ID", c.Source.UserID)
	c.ExchangeBoards = getEnvAsBool("SMR_EXCHANGE_BOARDS", c.ExchangeBoards)
}

// Validate checks the currency, the log settings and the source kind.
func (c *Config) Validate() error {
	if err := stockmanager.ValidCurrency(c.Currency); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q, want console or json", ErrInvalid, c.Log.Format)
	}
	switch c.Source.Kind {
	case store.KindFile, store.KindSQLite:
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalid, store.ErrUnknownSource, c.Source.Kind)
	}
	return nil
}

// Logger returns the logger described by the log settings, writing to w.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if c.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// StoreOptions returns the options to open the configured source.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Kind:      c.Source.Kind,
		Trades:    c.Source.Trades,
		Positions: c.Source.Positions,
		Database:  c.Source.Database,
		UserID:    c.Source.UserID,
	}
}

// IndustryLookup returns the configured industry classification, or nil.
func (c *Config) IndustryLookup() stockmanager.IndustryLookup {
	var lookups stockmanager.Industries
	if len(c.Industries) > 0 {
		lookups = append(lookups, stockmanager.IndustryMap(c.Industries))
	}
	if c.ExchangeBoards {
		lookups = append(lookups, stockmanager.ExchangeBoards{})
	}
	if len(lookups) == 0 {
		return nil
	}
	return lookups
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}
