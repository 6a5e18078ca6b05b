package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/shipping"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	OutputConsole = "console"
	OutputLog     = "log"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

var ErrItemLineIsInvalid = errors.New("order item must have the form name=price")

type Config struct {
	CustomerName         string               `env:"CUSTOMER_NAME"          envDefault:"Maria"`
	OrderItems           []string             `env:"ORDER_ITEMS"            envDefault:"Notebook=3000;Mouse=150;Keyboard=200" envSeparator:";"`
	ShippingDestination  shipping.Destination `env:"SHIPPING_DESTINATION"   envDefault:"national"`
	InvoiceOutput        string               `env:"INVOICE_OUTPUT"         envDefault:"console"`
	QuoteAllDestinations bool                 `env:"QUOTE_ALL_DESTINATIONS" envDefault:"false"`
	LogLevel             slog.Level           `env:"LOG_LEVEL"              envDefault:"INFO"`
	LogFormat            string               `env:"LOG_FORMAT"             envDefault:"text"`
}

// LoadConfig reads the optional dotenv files into the process environment and
// then parses Config from it. Variables already set in the environment win over
// the files. Missing files are ignored.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	return parseConfig(env.Options{})
}

// ParseConfig reads Config from vars instead of the process environment.
func ParseConfig(vars map[string]string) (Config, error) {
	return parseConfig(env.Options{Environment: vars})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error

	switch c.InvoiceOutput {
	case OutputConsole, OutputLog:
	default:
		errList = append(errList, fmt.Errorf("INVOICE_OUTPUT must be %q or %q, got %q", OutputConsole, OutputLog, c.InvoiceOutput))
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		errList = append(errList, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat))
	}

	if _, err := c.LineItems(); err != nil {
		errList = append(errList, err)
	}

	return errors.Join(errList...)
}

// LineItems splits each ORDER_ITEMS entry at its last '=' into name and price.
// Blank entries are skipped so a trailing separator is harmless.
func (c Config) LineItems() ([]commands.LineItem, error) {
	items := make([]commands.LineItem, 0, len(c.OrderItems))
	for _, raw := range c.OrderItems {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		idx := strings.LastIndex(raw, "=")
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrItemLineIsInvalid, raw)
		}

		items = append(items, commands.LineItem{
			Name:  strings.TrimSpace(raw[:idx]),
			Price: strings.TrimSpace(raw[idx+1:]),
		})
	}
	return items, nil
}
