// Package scraper provides configuration for the course listing scraper:
// target site, politeness settings, and pagination limits.
package scraper

import (
	"errors"
	"time"
)

// Default configuration values
const (
	DefaultBaseURL        = "https://www.udemy.com"
	DefaultUserAgent      = "gocourses/1.0"
	DefaultDelay          = 2 * time.Second
	DefaultRandomDelay    = 1 * time.Second
	DefaultParallelism    = 2
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxPages       = 5
)

// Config represents the scraper configuration.
type Config struct {
	// BaseURL is the site root that topic listing paths are resolved against
	BaseURL string `env:"SCRAPER_BASE_URL" yaml:"base_url" mapstructure:"base_url"`
	// UserAgent is the user agent to use for requests
	UserAgent string `env:"SCRAPER_USER_AGENT" yaml:"user_agent" mapstructure:"user_agent"`
	// Delay is the delay between requests
	Delay time.Duration `env:"SCRAPER_DELAY" yaml:"delay" mapstructure:"delay"`
	// RandomDelay is the random delay added to the base delay
	RandomDelay time.Duration `env:"SCRAPER_RANDOM_DELAY" yaml:"random_delay" mapstructure:"random_delay"`
	// Parallelism is the maximum number of concurrent requests
	Parallelism int `env:"SCRAPER_PARALLELISM" yaml:"parallelism" mapstructure:"parallelism"`
	// RequestTimeout is the timeout for each request
	RequestTimeout time.Duration `env:"SCRAPER_REQUEST_TIMEOUT" yaml:"request_timeout" mapstructure:"request_timeout"`
	// MaxPages caps how many listing pages are visited per topic
	MaxPages int `env:"SCRAPER_MAX_PAGES" yaml:"max_pages" mapstructure:"max_pages"`
}

// Validate validates the scraper configuration.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url must be specified")
	}
	if c.Parallelism < 1 {
		return errors.New("parallelism must be positive")
	}
	if c.Delay < 0 {
		return errors.New("delay must be non-negative")
	}
	if c.RandomDelay < 0 {
		return errors.New("random_delay must be non-negative")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request_timeout must be non-negative")
	}
	if c.MaxPages < 1 {
		return errors.New("max_pages must be positive")
	}
	return nil
}

// New creates a new scraper configuration with default values.
func New() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		UserAgent:      DefaultUserAgent,
		Delay:          DefaultDelay,
		RandomDelay:    DefaultRandomDelay,
		Parallelism:    DefaultParallelism,
		RequestTimeout: DefaultRequestTimeout,
		MaxPages:       DefaultMaxPages,
	}
}
