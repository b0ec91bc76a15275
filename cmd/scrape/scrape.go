// Package scrape implements the command-line interface for scraping topic
// listings into the catalog's CSV files.
package scrape

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocourses/cmd/common"
	"github.com/jonesrussell/gocourses/internal/scraper"
)

// Command returns the scrape command.
func Command() *cobra.Command {
	var (
		section  string
		schedule string
	)

	cmd := &cobra.Command{
		Use:   "scrape <topic-slug>...",
		Short: "Scrape course listings for topics",
		Long: `Fetch the listing pages of each topic slug and write the results to
<courses_dir>/<section>/<slug>.csv. With --schedule, keep running and
rescrape on the given cron expression.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			s := scraper.New(deps.Config.GetScraperConfig(), deps.Logger)
			run := func() {
				scrapeTopics(cmd.Context(), deps, s, section, args)
			}

			if schedule == "" {
				run()
				return nil
			}
			return runScheduled(cmd.Context(), deps, schedule, run)
		},
	}

	cmd.Flags().StringVar(&section, "section", "development", "section directory for the output files")
	cmd.Flags().StringVar(&schedule, "schedule", "", "cron expression for periodic rescraping (e.g. \"0 3 * * *\")")
	return cmd
}

// scrapeTopics runs one scrape pass over every requested topic. Failures
// are logged per topic so one bad topic does not abort the rest.
func scrapeTopics(
	ctx context.Context,
	deps common.CommandDeps,
	s *scraper.Scraper,
	section string,
	slugs []string,
) {
	coursesDir := deps.Config.GetCatalogConfig().CoursesDir

	for _, slug := range slugs {
		result, err := s.ScrapeTopic(ctx, slug)
		if err != nil {
			deps.Logger.Error("Scrape failed", "topic", slug, "error", err)
			continue
		}
		if len(result.Courses) == 0 {
			deps.Logger.Warn("Scrape produced no courses, keeping existing file",
				"topic", slug,
				"run_id", result.RunID,
			)
			continue
		}
		if err := scraper.WriteCourseCSV(coursesDir, section, slug, result.Courses); err != nil {
			deps.Logger.Error("Failed to write course file", "topic", slug, "error", err)
		}
	}

	// New files are invisible until the index rebuilds.
	deps.Catalog.Reset()
}

// runScheduled runs the scrape on a cron schedule until interrupted.
func runScheduled(ctx context.Context, deps common.CommandDeps, schedule string, run func()) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, run); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	// First pass immediately, then on the schedule.
	run()
	c.Start()
	deps.Logger.Info("Scrape scheduler started", "schedule", schedule)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-sigChan:
		deps.Logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
	}

	stopCtx := c.Stop()
	<-stopCtx.Done()
	return nil
}
