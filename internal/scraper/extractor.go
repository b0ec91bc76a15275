package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/gocourses/internal/domain"
)

// Course card selectors. Listing markup shifts between page variants, so
// each field tries a few known selectors in order.
var (
	titleSelectors = []string{
		"h3[data-purpose=course-title-url] a",
		"div[class*=course-card--course-title]",
		"h3 a",
	}
	instructorSelectors = []string{
		"div[class*=course-card--instructor-list]",
		"span[data-purpose=visible-instructors]",
	}
	ratingSelectors = []string{
		"span[data-purpose=rating-number]",
		"span[aria-label*=rating]",
	}
	reviewsSelectors = []string{
		"span[class*=reviews-text]",
		"span[class*=course-card--reviews]",
	}
	priceSelectors = []string{
		"div[data-purpose=course-price-text] span span",
		"div[data-purpose=course-price-text]",
	}
	originalPriceSelectors = []string{
		"div[data-purpose=course-old-price-text] span span",
		"div[data-purpose=course-old-price-text]",
	}
	badgeSelectors = []string{
		"div[data-purpose=badge] span",
		"div[class*=course-badge]",
	}
)

// extractCourse pulls the course fields out of one listing card.
func extractCourse(card *goquery.Selection) domain.Course {
	course := domain.Course{
		Title:         firstText(card, titleSelectors),
		Instructor:    firstText(card, instructorSelectors),
		Rating:        firstText(card, ratingSelectors),
		ReviewsCount:  firstText(card, reviewsSelectors),
		Price:         firstText(card, priceSelectors),
		OriginalPrice: firstText(card, originalPriceSelectors),
		Bestseller:    firstText(card, badgeSelectors),
		URL:           courseURL(card),
	}

	// Duration, lectures, and level share one metadata row.
	card.Find("div[class*=course-card--course-meta-info] span, span[data-purpose=course-meta-info] span").
		Each(func(_ int, meta *goquery.Selection) {
			text := strings.TrimSpace(meta.Text())
			switch {
			case strings.Contains(text, "total hour") || strings.Contains(text, "min"):
				if course.Duration == "" {
					course.Duration = text
				}
			case strings.Contains(text, "lecture"):
				if course.Lectures == "" {
					course.Lectures = text
				}
			case text != "":
				if course.Level == "" {
					course.Level = text
				}
			}
		})

	return course
}

// firstText returns the trimmed text of the first selector that matches.
func firstText(card *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(card.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// courseURL extracts the absolute or site-relative course link of a card.
func courseURL(card *goquery.Selection) string {
	href, ok := card.Find("a[href*='/course/']").First().Attr("href")
	if !ok {
		href, _ = card.Find("h3 a").First().Attr("href")
	}
	return strings.TrimSpace(href)
}
