// Package common provides shared utilities for command implementations.
package common

import (
	"github.com/jonesrussell/gocourses/internal/catalog"
	"github.com/jonesrussell/gocourses/internal/config"
	"github.com/jonesrussell/gocourses/internal/logger"
	"github.com/jonesrussell/gocourses/internal/repository"
)

// CommandDeps holds common dependencies for all commands.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger     logger.Interface
	Config     config.Interface
	Catalog    *catalog.Index
	Repository *repository.Repository
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	if d.Catalog == nil {
		return ErrCatalogRequired
	}
	if d.Repository == nil {
		return ErrRepositoryRequired
	}
	return nil
}
