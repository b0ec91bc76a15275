// Package server provides server configuration types and functions.
package server

import (
	"errors"
	"time"
)

// Default configuration values
const (
	DefaultAddress      = ":8080"
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
)

// Config represents server-specific configuration settings.
type Config struct {
	// Address is the address to listen on (e.g., ":8080")
	Address string `env:"SERVER_ADDRESS" yaml:"address" mapstructure:"address"`
	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" yaml:"read_timeout" mapstructure:"read_timeout"`
	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" yaml:"write_timeout" mapstructure:"write_timeout"`
	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("server address must be specified")
	}
	if c.ReadTimeout < 0 {
		return errors.New("read_timeout must be non-negative")
	}
	if c.WriteTimeout < 0 {
		return errors.New("write_timeout must be non-negative")
	}
	if c.IdleTimeout < 0 {
		return errors.New("idle_timeout must be non-negative")
	}
	return nil
}

// New creates a new Config instance with default values.
func New() *Config {
	return &Config{
		Address:      DefaultAddress,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}
}
