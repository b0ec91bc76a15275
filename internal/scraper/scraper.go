// Package scraper fetches course listings from topic pages and turns them
// into the per-topic CSV files the catalog is built from.
package scraper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	colly "github.com/gocolly/colly/v2"
	"github.com/google/uuid"

	scrapercfg "github.com/jonesrussell/gocourses/internal/config/scraper"
	"github.com/jonesrussell/gocourses/internal/domain"
	"github.com/jonesrussell/gocourses/internal/logger"
)

// Collector defaults
const (
	defaultMaxDepth = 1
	courseCardQuery = "div[class*=course-card], div[data-purpose=course-card-container]"
)

// Result describes one scrape run for a topic.
type Result struct {
	// RunID identifies the run in logs and reports
	RunID string `json:"run_id"`
	// Topic is the slug the run scraped
	Topic string `json:"topic"`
	// Courses holds everything extracted, in page order
	Courses []domain.Course `json:"courses"`
	// Pages is the number of listing pages fetched
	Pages int `json:"pages"`
	// Errors counts failed requests
	Errors int `json:"errors"`
	// Duration is the wall time of the run
	Duration time.Duration `json:"duration"`
}

// Scraper fetches topic listing pages. Construct with New; a Scraper is
// safe for sequential reuse across topics but not for concurrent runs.
type Scraper struct {
	cfg *scrapercfg.Config
	log logger.Interface
}

// New creates a scraper with the given configuration.
func New(cfg *scrapercfg.Config, log logger.Interface) *Scraper {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Scraper{
		cfg: cfg,
		log: log.WithComponent("scraper"),
	}
}

// ScrapeTopic fetches up to MaxPages listing pages for one topic slug and
// returns the extracted courses. Request failures are counted, not fatal;
// the run only errors when the collector cannot be started at all.
func (s *Scraper) ScrapeTopic(ctx context.Context, slug string) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID: uuid.NewString(),
		Topic: slug,
	}

	collector := s.setupCollector(ctx)

	var mu sync.Mutex
	collector.OnHTML(courseCardQuery, func(e *colly.HTMLElement) {
		course := extractCourse(e.DOM)
		if !course.IsValid() {
			return
		}
		mu.Lock()
		result.Courses = append(result.Courses, course)
		mu.Unlock()
	})

	collector.OnResponse(func(r *colly.Response) {
		mu.Lock()
		result.Pages++
		mu.Unlock()
		s.log.Debug("Fetched listing page",
			"run_id", result.RunID,
			"url", r.Request.URL.String(),
			"status", r.StatusCode,
		)
	})

	collector.OnError(func(r *colly.Response, visitErr error) {
		mu.Lock()
		result.Errors++
		mu.Unlock()
		s.log.Warn("Failed to fetch listing page",
			"run_id", result.RunID,
			"url", r.Request.URL.String(),
			"status", r.StatusCode,
			"error", visitErr,
		)
	})

	s.log.Info("Starting topic scrape",
		"run_id", result.RunID,
		"topic", slug,
		"max_pages", s.cfg.MaxPages,
	)

	for page := 1; page <= s.cfg.MaxPages; page++ {
		if err := collector.Visit(s.topicPageURL(slug, page)); err != nil {
			return nil, fmt.Errorf("failed to visit topic page: %w", err)
		}
	}
	collector.Wait()

	result.Duration = time.Since(start)
	s.log.Info("Topic scrape finished",
		"run_id", result.RunID,
		"topic", slug,
		"courses", len(result.Courses),
		"pages", result.Pages,
		"errors", result.Errors,
		"duration", result.Duration,
	)
	return result, nil
}

// setupCollector configures the collector from the scraper settings.
func (s *Scraper) setupCollector(ctx context.Context) *colly.Collector {
	collector := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.MaxDepth(defaultMaxDepth),
		colly.Async(true),
		colly.UserAgent(s.cfg.UserAgent),
	)
	collector.SetRequestTimeout(s.cfg.RequestTimeout)

	// A single LimitRule covers every host we touch.
	_ = collector.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       s.cfg.Delay,
		RandomDelay: s.cfg.RandomDelay,
		Parallelism: s.cfg.Parallelism,
	})

	collector.OnRequest(func(r *colly.Request) {
		select {
		case <-ctx.Done():
			r.Abort()
		default:
		}
	})

	return collector
}

// topicPageURL builds the listing URL for one page of a topic.
func (s *Scraper) topicPageURL(slug string, page int) string {
	base := strings.TrimRight(s.cfg.BaseURL, "/")
	if page <= 1 {
		return fmt.Sprintf("%s/topic/%s/", base, slug)
	}
	return fmt.Sprintf("%s/topic/%s/?p=%d", base, slug, page)
}
