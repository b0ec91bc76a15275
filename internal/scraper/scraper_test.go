package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	scrapercfg "github.com/jonesrussell/gocourses/internal/config/scraper"
	"github.com/jonesrussell/gocourses/internal/logger"
	"github.com/jonesrussell/gocourses/internal/scraper"
)

const listingPage = `<html><body>
<div class="course-card--container">
  <h3 data-purpose="course-title-url"><a href="/course/complete-python-bootcamp/">Complete Python Bootcamp</a></h3>
  <div class="course-card--instructor-list">Jose Portilla</div>
  <span data-purpose="rating-number">4.7</span>
  <div data-purpose="course-price-text"><span><span>$13.99</span></span></div>
</div>
<div class="course-card--container">
  <h3 data-purpose="course-title-url"><a href="/course/python-data-analysis/">Python for Data Analysis</a></h3>
  <div class="course-card--instructor-list">Maria Garcia</div>
  <span data-purpose="rating-number">4.5</span>
  <div data-purpose="course-price-text"><span><span>Free</span></span></div>
</div>
</body></html>`

func newTestScraper(serverURL string) *scraper.Scraper {
	cfg := &scrapercfg.Config{
		BaseURL:        serverURL,
		UserAgent:      "gocourses-test/1.0",
		Parallelism:    1,
		RequestTimeout: 5 * time.Second,
		MaxPages:       1,
	}
	return scraper.New(cfg, logger.NewNoOp())
}

func TestScrapeTopic(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
		case "/topic/python/":
			_, _ = w.Write([]byte(listingPage))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := newTestScraper(server.URL)
	result, err := s.ScrapeTopic(context.Background(), "python")
	require.NoError(t, err)

	require.NotEmpty(t, result.RunID)
	require.Equal(t, "python", result.Topic)
	require.Equal(t, 1, result.Pages)
	require.Zero(t, result.Errors)
	require.Len(t, result.Courses, 2)
	require.Equal(t, "Complete Python Bootcamp", result.Courses[0].Title)
	require.Equal(t, "Free", result.Courses[1].Price)
}

func TestScrapeTopicServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := newTestScraper(server.URL)
	result, err := s.ScrapeTopic(context.Background(), "python")
	require.NoError(t, err)
	require.Empty(t, result.Courses)
	require.Equal(t, 1, result.Errors)
}
