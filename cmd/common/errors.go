package common

import "errors"

var (
	// ErrLoggerRequired is returned when CommandDeps.Logger is nil
	ErrLoggerRequired = errors.New("logger is required")

	// ErrConfigRequired is returned when CommandDeps.Config is nil
	ErrConfigRequired = errors.New("config is required")

	// ErrCatalogRequired is returned when CommandDeps.Catalog is nil
	ErrCatalogRequired = errors.New("catalog is required")

	// ErrRepositoryRequired is returned when CommandDeps.Repository is nil
	ErrRepositoryRequired = errors.New("repository is required")
)
