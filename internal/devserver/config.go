package devserver

import (
	"fmt"
	"net"

	"github.com/kelseyhightower/envconfig"
)

// Config holds dev server configuration, loaded from JAY_-prefixed
// environment variables.
type Config struct {
	Host         string   `envconfig:"HOST" default:"127.0.0.1"`
	Port         string   `envconfig:"PORT" default:"8787"`
	LogLevel     string   `envconfig:"LOG_LEVEL" default:"info"`
	LogDev       bool     `envconfig:"LOG_DEV" default:"true"`
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"*"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("jay", &cfg); err != nil {
		return nil, fmt.Errorf("devserver: load config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
