// Package catalog provides configuration for the topic and course catalog:
// where course CSV files live and where the optional flat topics CSV is.
package catalog

import (
	"errors"
)

// Default configuration values
const (
	// DefaultCoursesDir is the default root directory of per-section course CSVs.
	DefaultCoursesDir = "data/courses"
	// DefaultTopicsFile is the default flat CSV of known topics.
	DefaultTopicsFile = "data/topics.csv"
)

// Config represents the catalog configuration.
type Config struct {
	// CoursesDir is the root directory whose immediate subdirectories are
	// sections and whose CSV files are named by topic slug
	CoursesDir string `env:"CATALOG_COURSES_DIR" yaml:"courses_dir" mapstructure:"courses_dir"`
	// TopicsFile is an optional flat CSV (slug,name,url,section) of
	// metadata-only topics without a backing course file
	TopicsFile string `env:"CATALOG_TOPICS_FILE" yaml:"topics_file" mapstructure:"topics_file"`
}

// Validate validates the catalog configuration.
func (c *Config) Validate() error {
	if c.CoursesDir == "" {
		return errors.New("courses_dir must be specified")
	}
	return nil
}

// New creates a new catalog configuration with default values.
func New() *Config {
	return &Config{
		CoursesDir: DefaultCoursesDir,
		TopicsFile: DefaultTopicsFile,
	}
}
