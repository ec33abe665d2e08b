package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel    int         `env:"LOG_LEVEL" envDefault:"0"`
	API         API         `envPrefix:"API_"`
	ImgBB       ImgBB       `envPrefix:"IMGBB_"`
	Credentials Credentials `envPrefix:"CREDENTIALS_"`
}

// API contains backend connection parameters.
type API struct {
	BaseURL string        `env:"URL" envDefault:"https://localhost:7277"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// ImgBB contains image host parameters.
type ImgBB struct {
	Key string `env:"KEY"`
}

// Credentials contains durable credential storage parameters. An empty Path
// resolves to a file under the user config directory.
type Credentials struct {
	Path string `env:"FILE"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
