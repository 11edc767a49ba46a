// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config contains runtime settings for the MCP server. Base URL overrides
// exist so tests and self-hosted mirrors can point the clients elsewhere;
// none of the upstreams require credentials.
type Config struct {
	Transport string `envconfig:"MCP_TRANSPORT" default:"stdio"`
	Host      string `envconfig:"MCP_HOST" default:"0.0.0.0"`
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	Fetch    FetchConfig
	Upstream UpstreamConfig
}

// FetchConfig tunes the shared HTTP fetch policy.
type FetchConfig struct {
	Timeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	Retries int           `envconfig:"FETCH_RETRIES" default:"3"`
}

// UpstreamConfig overrides the seven upstream base URLs.
type UpstreamConfig struct {
	JobSearchURL  string `envconfig:"JOBSEARCH_BASE_URL"`
	JobStreamURL  string `envconfig:"JOBSTREAM_BASE_URL"`
	HistoricalURL string `envconfig:"HISTORICAL_BASE_URL"`
	EnrichURL     string `envconfig:"ENRICH_BASE_URL"`
	LinksURL      string `envconfig:"LINKS_BASE_URL"`
	JobEdURL      string `envconfig:"JOBED_BASE_URL"`
	TaxonomyURL   string `envconfig:"TAXONOMY_BASE_URL"`
}

// Load populates config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("config: unknown transport %q (want %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("config: fetch timeout must be positive, got %v", c.Fetch.Timeout)
	}
	if c.Fetch.Retries < 0 {
		return fmt.Errorf("config: fetch retries must be >= 0, got %d", c.Fetch.Retries)
	}

	return nil
}
