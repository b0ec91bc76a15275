package domain

import (
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/jonesrussell/gocourses/internal/parsing"
)

// Course represents one row of scraped or curated course metadata. Fields
// hold the raw CSV values; the typed accessors normalize them on demand so
// a malformed cell never invalidates the record.
type Course struct {
	// Title of the course; the only field required for validity
	Title string `json:"title" mapstructure:"title"`
	// URL is the course page URL and the primary deduplication identity
	URL string `json:"url,omitempty" mapstructure:"url"`
	// Instructor name(s)
	Instructor string `json:"instructor,omitempty" mapstructure:"instructor"`
	// Rating as scraped, e.g. "4.7" or "4.7 out of 5"
	Rating string `json:"rating,omitempty" mapstructure:"rating"`
	// ReviewsCount as scraped, e.g. "(12,345)" or "1.2K"
	ReviewsCount string `json:"reviews_count,omitempty" mapstructure:"reviews_count"`
	// Price as scraped, e.g. "$12.99" or "Free"
	Price string `json:"price,omitempty" mapstructure:"price"`
	// OriginalPrice before discount
	OriginalPrice string `json:"original_price,omitempty" mapstructure:"original_price"`
	// Duration as scraped, e.g. "22 total hours" or "90 min"
	Duration string `json:"duration,omitempty" mapstructure:"duration"`
	// Lectures count as scraped
	Lectures string `json:"lectures,omitempty" mapstructure:"lectures"`
	// Level, e.g. "Beginner", "All Levels"
	Level string `json:"level,omitempty" mapstructure:"level"`
	// Bestseller badge text if present
	Bestseller string `json:"bestseller,omitempty" mapstructure:"bestseller"`

	// Topic and Section are injected by the index layer when rows are loaded
	Topic   string `json:"topic,omitempty" mapstructure:"topic"`
	Section string `json:"section,omitempty" mapstructure:"section"`

	// Extra collects unknown CSV columns for forward compatibility with
	// varying schemas
	Extra map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// CourseFromRow decodes a CSV row (header name to cell value) into a Course.
// Unknown columns land in Extra rather than being dropped.
func CourseFromRow(row map[string]string) (Course, error) {
	var course Course
	if err := mapstructure.Decode(row, &course); err != nil {
		return Course{}, err
	}
	return course, nil
}

// IsValid reports whether the record carries the minimum required data.
func (c *Course) IsValid() bool {
	return strings.TrimSpace(c.Title) != ""
}

// DedupKey returns the identity used to deduplicate courses across topics:
// the URL when present, otherwise a title|instructor composite.
func (c *Course) DedupKey() string {
	if c.URL != "" {
		return c.URL
	}
	return c.Title + "|" + c.Instructor
}

// RatingValue returns the parsed rating in [0,5].
func (c *Course) RatingValue() float64 {
	return parsing.ParseRating(c.Rating)
}

// ReviewsValue returns the parsed review count.
func (c *Course) ReviewsValue() int {
	return parsing.ParseNumber(c.ReviewsCount)
}

// PriceValue returns the parsed price, 0 for free courses.
func (c *Course) PriceValue() float64 {
	return parsing.ParsePrice(c.Price)
}

// DurationHours returns the parsed duration in hours.
func (c *Course) DurationHours() float64 {
	return parsing.ParseDuration(c.Duration)
}

// LecturesValue returns the parsed lecture count.
func (c *Course) LecturesValue() int {
	return parsing.ParseNumber(c.Lectures)
}

// IsFree reports whether the course is free.
func (c *Course) IsFree() bool {
	return c.PriceValue() == 0
}

// IsBestseller reports whether the course carries a bestseller badge.
func (c *Course) IsBestseller() bool {
	return strings.TrimSpace(c.Bestseller) != ""
}
