// Package config provides configuration management for the gocourses
// application. It handles loading, validation, and access to configuration
// values from YAML files and environment variables via Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonesrussell/gocourses/internal/config/app"
	catalogcfg "github.com/jonesrussell/gocourses/internal/config/catalog"
	"github.com/jonesrussell/gocourses/internal/config/logging"
	"github.com/jonesrussell/gocourses/internal/config/scraper"
	"github.com/jonesrussell/gocourses/internal/config/server"
)

// Interface defines the interface for configuration management.
type Interface interface {
	// GetAppConfig returns the application configuration.
	GetAppConfig() *app.Config
	// GetLogConfig returns the logging configuration.
	GetLogConfig() *logging.Config
	// GetCatalogConfig returns the catalog configuration.
	GetCatalogConfig() *catalogcfg.Config
	// GetServerConfig returns the server configuration.
	GetServerConfig() *server.Config
	// GetScraperConfig returns the scraper configuration.
	GetScraperConfig() *scraper.Config
	// Validate validates the configuration.
	Validate() error
}

// Ensure Config implements Interface
var _ Interface = (*Config)(nil)

// Config represents the application configuration.
type Config struct {
	// App holds application-level configuration
	App *app.Config `yaml:"app" mapstructure:"app"`
	// Logger holds logging configuration
	Logger *logging.Config `yaml:"logger" mapstructure:"logger"`
	// Catalog holds catalog configuration
	Catalog *catalogcfg.Config `yaml:"catalog" mapstructure:"catalog"`
	// Server holds HTTP server configuration
	Server *server.Config `yaml:"server" mapstructure:"server"`
	// Scraper holds scraper configuration
	Scraper *scraper.Config `yaml:"scraper" mapstructure:"scraper"`
}

// New builds a Config from Viper's merged settings (defaults, config file,
// environment). Call after the root command has initialized Viper.
func New() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults fills in nil sections so callers never see a nil sub-config.
func setDefaults(cfg *Config) {
	if cfg.App == nil {
		cfg.App = app.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.New()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalogcfg.New()
	}
	if cfg.Server == nil {
		cfg.Server = server.New()
	}
	if cfg.Scraper == nil {
		cfg.Scraper = scraper.New()
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = server.DefaultAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = server.DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = server.DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = server.DefaultIdleTimeout
	}
	if cfg.Catalog.CoursesDir == "" {
		cfg.Catalog.CoursesDir = catalogcfg.DefaultCoursesDir
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if err := c.Catalog.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Scraper.Validate(); err != nil {
		return fmt.Errorf("scraper: %w", err)
	}
	return nil
}

// GetAppConfig returns the application configuration.
func (c *Config) GetAppConfig() *app.Config {
	return c.App
}

// GetLogConfig returns the logging configuration.
func (c *Config) GetLogConfig() *logging.Config {
	return c.Logger
}

// GetCatalogConfig returns the catalog configuration.
func (c *Config) GetCatalogConfig() *catalogcfg.Config {
	return c.Catalog
}

// GetServerConfig returns the server configuration.
func (c *Config) GetServerConfig() *server.Config {
	return c.Server
}

// GetScraperConfig returns the scraper configuration.
func (c *Config) GetScraperConfig() *scraper.Config {
	return c.Scraper
}
