package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// DatabaseURL is optional: without it translations are not archived.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`

	DefaultProvider string `envconfig:"TRANSLATION_PROVIDER" default:"google"`
	RequestTimeout  int    `envconfig:"TRANSLATION_TIMEOUT_SECONDS" default:"30"`
	HTTPProxy       string `envconfig:"TRANSLATION_HTTP_PROXY" default:""`
	HTTPSProxy      string `envconfig:"TRANSLATION_HTTPS_PROXY" default:""`

	ServerHost         string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort         int    `envconfig:"SERVER_PORT" default:"8080"`
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DefaultProvider) == "" {
		return fmt.Errorf("TRANSLATION_PROVIDER is required")
	}
	if c.RequestTimeout < 1 {
		return fmt.Errorf("TRANSLATION_TIMEOUT_SECONDS must be >= 1")
	}
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	return nil
}

// Timeout is the per-request vendor timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Proxies collects the configured per-scheme proxy URLs, empty when none.
func (c *Config) Proxies() map[string]string {
	proxies := make(map[string]string, 2)
	if proxy := strings.TrimSpace(c.HTTPProxy); proxy != "" {
		proxies["http"] = proxy
	}
	if proxy := strings.TrimSpace(c.HTTPSProxy); proxy != "" {
		proxies["https"] = proxy
	}
	if len(proxies) == 0 {
		return nil
	}
	return proxies
}

func (c *Config) CORSAllowedOriginsList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if _, exists := seen[origin]; exists {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	return origins
}
