package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultBaseURL is the public ElevateAI API root.
const DefaultBaseURL = "https://api.elevateai.com/v1"

// Config groups the client tunables. Values are taken from environment
// variables with the prefix "ELEVATEAI_". Example:
// ELEVATEAI_API_TOKEN=... ELEVATEAI_POLL_INTERVAL=30s .
type Config struct {
	BaseURL   string `envconfig:"BASE_URL"   default:"https://api.elevateai.com/v1"`
	APIToken  string `envconfig:"API_TOKEN"`
	UserAgent string `envconfig:"USER_AGENT"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG"        default:"false"`

	PollInterval          time.Duration `envconfig:"POLL_INTERVAL"           default:"60s"`
	PollMaxAttempts       int           `envconfig:"POLL_MAX_ATTEMPTS"       default:"120"`
	PollTimeout           time.Duration `envconfig:"POLL_TIMEOUT"            default:"0s"`
	PollTolerateTransient bool          `envconfig:"POLL_TOLERATE_TRANSIENT" default:"false"`
}

// LoadConfig populates Config from environment variables (prefix ELEVATEAI_).
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("ELEVATEAI", &c); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return c, nil
}

// PollPolicy returns the polling policy described by the config.
func (c Config) PollPolicy() PollPolicy {
	return PollPolicy{
		Interval:          c.PollInterval,
		MaxAttempts:       c.PollMaxAttempts,
		Timeout:           c.PollTimeout,
		TolerateTransient: c.PollTolerateTransient,
	}
}

// NewFromConfig builds a Client from cfg; opts are applied after the
// config-derived options.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	var base []Option
	if cfg.HTTPTimeout > 0 {
		base = append(base, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.UserAgent != "" {
		base = append(base, WithUserAgent(cfg.UserAgent))
	}
	base = append(base, opts...)
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, cfg.APIToken, base...)
}
