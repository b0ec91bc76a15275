// Package logging provides logging configuration loaded alongside the rest
// of the application configuration.
package logging

import (
	"fmt"

	"github.com/jonesrussell/gocourses/internal/logger"
)

// validLevels are the accepted logging level names.
var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

// Config represents the logging configuration.
type Config struct {
	// Level is the minimum logging level
	Level string `env:"LOG_LEVEL" yaml:"level" mapstructure:"level"`
	// Development enables development mode formatting
	Development bool `env:"LOG_DEVELOPMENT" yaml:"development" mapstructure:"development"`
	// Encoding sets the log encoding ("console" or "json")
	Encoding string `env:"LOG_FORMAT" yaml:"encoding" mapstructure:"encoding"`
	// EnableColor enables colored level output in development mode
	EnableColor bool `env:"LOG_COLOR" yaml:"enable_color" mapstructure:"enable_color"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Level != "" && !validLevels[c.Level] {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	if c.Encoding != "" && c.Encoding != "console" && c.Encoding != "json" {
		return fmt.Errorf("invalid log encoding: %s", c.Encoding)
	}
	return nil
}

// ToLoggerConfig converts the logging configuration into the logger
// package's config type.
func (c *Config) ToLoggerConfig() *logger.Config {
	return &logger.Config{
		Level:       logger.Level(c.Level),
		Development: c.Development,
		Encoding:    c.Encoding,
		EnableColor: c.EnableColor,
	}
}

// New creates a new logging configuration with default values.
func New() *Config {
	return &Config{
		Level:    string(logger.DefaultLevel),
		Encoding: logger.DefaultEncoding,
	}
}
