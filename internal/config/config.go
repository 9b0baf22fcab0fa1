package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	JWTSecret  string `env:"JWT_SECRET" envDefault:"super-secret-key-change-me"`

	// Credential placeholder for the payment provider. The bundled simulator
	// never sends it anywhere; a real Mollie client would.
	MollieAPIKey string `env:"MOLLIE_API_KEY" envDefault:"test_api_key"`

	RedirectURL string `env:"PAYMENT_REDIRECT_URL" envDefault:"https://vibratonic.app/payment/success"`
	WebhookURL  string `env:"PAYMENT_WEBHOOK_URL" envDefault:"https://vibratonic.app/webhook/mollie"`

	AllowOrigins []string `env:"ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
