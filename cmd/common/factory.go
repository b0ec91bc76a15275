package common

import (
	"fmt"

	"github.com/jonesrussell/gocourses/internal/catalog"
	"github.com/jonesrussell/gocourses/internal/config"
	"github.com/jonesrussell/gocourses/internal/logger"
	"github.com/jonesrussell/gocourses/internal/repository"
)

// NewCommandDeps creates CommandDeps by loading config and constructing the
// logger, catalog, and repository. This consolidates the common
// initialization code shared by every command.
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := config.New()
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.GetLogConfig().ToLoggerConfig())
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	idx := catalog.New(cfg.GetCatalogConfig(), log)

	deps := CommandDeps{
		Logger:     log,
		Config:     cfg,
		Catalog:    idx,
		Repository: repository.New(log),
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}
