package scraper

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonesrussell/gocourses/internal/domain"
)

// courseHeader is the column order of the per-topic CSV files. The catalog
// reads these files back by header name, so order only matters for humans
// diffing the output.
var courseHeader = []string{
	"title", "url", "instructor", "rating", "reviews_count",
	"price", "original_price", "duration", "lectures", "level", "bestseller",
}

// WriteCourseCSV writes the scraped courses of one topic to
// <coursesDir>/<section>/<slug>.csv, replacing any previous file.
func WriteCourseCSV(coursesDir, section, slug string, courses []domain.Course) error {
	dir := filepath.Join(coursesDir, section)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create section directory: %w", err)
	}

	path := filepath.Join(dir, slug+".csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create course file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(courseHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range courses {
		if err := writer.Write(courseRecord(&courses[i])); err != nil {
			return fmt.Errorf("failed to write course row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush course file: %w", err)
	}
	return nil
}

func courseRecord(c *domain.Course) []string {
	return []string{
		c.Title, c.URL, c.Instructor, c.Rating, c.ReviewsCount,
		c.Price, c.OriginalPrice, c.Duration, c.Lectures, c.Level, c.Bestseller,
	}
}
