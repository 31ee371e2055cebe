package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config holds all service configuration, loaded from environment variables.
type Config struct {
	Port     string `envconfig:"APP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TaxRateBps is the sales tax rate in basis points (800 = 8%).
	TaxRateBps int64 `envconfig:"TAX_RATE_BPS" default:"800"`

	// PaymentTimeout bounds a single payment authorization attempt.
	PaymentTimeout time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"5s"`

	NotifyQueueSize int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"64"`
	NotifyTimeout   time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`

	MailtrapAPIURL    string `envconfig:"MAILTRAP_API_URL" default:"https://send.api.mailtrap.io/api/send"`
	MailtrapAPIToken  string `envconfig:"MAILTRAP_API_TOKEN" default:""`
	MailtrapFromEmail string `envconfig:"MAILTRAP_FROM_EMAIL" default:"orders@shopflow.com"`
	MailtrapFromName  string `envconfig:"MAILTRAP_FROM_NAME" default:"ShopFlow Orders"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TaxRate returns the configured tax rate as a decimal fraction (0.08 for 800 bps).
func (c *Config) TaxRate() decimal.Decimal {
	return decimal.New(c.TaxRateBps, -4)
}
