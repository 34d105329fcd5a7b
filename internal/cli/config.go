package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string        `env:"PLAYERS_SERVER" envDefault:"http://localhost:8080"`
	Timeout   time.Duration `env:"PLAYERS_TIMEOUT" envDefault:"30s"`
	Output    string        `env:"PLAYERS_OUTPUT" envDefault:"text"`
}

// LoadConfig reads the CLI defaults from the environment. Flags override
// whatever it returns.
func LoadConfig() (*Config, error) {
	c := &Config{
		ServerURL: "http://localhost:8080",
		Timeout:   30 * time.Second,
		Output:    "text",
	}
	if err := env.Parse(c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
