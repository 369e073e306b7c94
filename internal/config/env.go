package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cottington/wealth-calculator/pkg/money"
)

// ServerConfig configures the HTTP API. Every field comes from the environment.
type ServerConfig struct {
	Addr            string        `env:"WEALTHCALC_ADDR" envDefault:":8080"`
	Mode            string        `env:"WEALTHCALC_MODE" envDefault:"release"`
	AllowedOrigins  []string      `env:"WEALTHCALC_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SessionTTL      time.Duration `env:"WEALTHCALC_SESSION_TTL" envDefault:"30m"`
	ShutdownTimeout time.Duration `env:"WEALTHCALC_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Currency        string        `env:"WEALTHCALC_CURRENCY" envDefault:"ZAR"`
}

// LoadServerConfig reads ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Validate checks the server settings.
func (c ServerConfig) Validate() error {
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("WEALTHCALC_MODE must be debug, release or test, got %q", c.Mode)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("WEALTHCALC_SESSION_TTL must be positive")
	}
	if !money.ValidCurrency(c.Currency) {
		return fmt.Errorf("WEALTHCALC_CURRENCY: unknown currency code %q", c.Currency)
	}
	return nil
}
