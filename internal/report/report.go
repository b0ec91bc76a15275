// Package report aggregates the catalog into per-section summaries for the
// report command and renders them as markdown.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jonesrussell/gocourses/internal/catalog"
	"github.com/jonesrussell/gocourses/internal/domain"
	"github.com/jonesrussell/gocourses/internal/logger"
	"github.com/jonesrussell/gocourses/internal/repository"
)

// defaultTopRated caps how many top-rated courses a summary carries.
const defaultTopRated = 10

// minRatingsForTop filters out courses with too few reviews to rank.
const minRatingsForTop = 100

// SectionSummary aggregates one section of the catalog. Averages skip
// courses whose raw field did not parse; the price average also skips free
// courses so a section of freebies does not read as cheap paid content.
type SectionSummary struct {
	Section     string  `json:"section"`
	Topics      int     `json:"topics"`
	Courses     int     `json:"courses"`
	FreeCourses int     `json:"free_courses"`
	AvgRating   float64 `json:"avg_rating"`
	AvgPrice    float64 `json:"avg_price"`
	AvgHours    float64 `json:"avg_hours"`
}

// Summary is the full catalog report.
type Summary struct {
	GeneratedAt  time.Time        `json:"generated_at"`
	TotalTopics  int              `json:"total_topics"`
	TotalCourses int              `json:"total_courses"`
	Sections     []SectionSummary `json:"sections"`
	TopRated     []domain.Course  `json:"top_rated"`
}

// Generator builds catalog summaries.
type Generator struct {
	idx  *catalog.Index
	repo *repository.Repository
	log  logger.Interface
}

// NewGenerator creates a report generator over the given catalog.
func NewGenerator(idx *catalog.Index, repo *repository.Repository, log logger.Interface) *Generator {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Generator{
		idx:  idx,
		repo: repo,
		log:  log.WithComponent("report"),
	}
}

// sectionAccum accumulates averages for one section.
type sectionAccum struct {
	ratingSum float64
	ratingN   int
	priceSum  float64
	priceN    int
	hoursSum  float64
	hoursN    int
}

// Build loads every topic and aggregates the catalog into a Summary.
func (g *Generator) Build() (*Summary, error) {
	summary := &Summary{GeneratedAt: time.Now()}
	sections := make(map[string]*SectionSummary)
	accums := make(map[string]*sectionAccum)

	var rateable []domain.Course
	for _, topic := range g.idx.AvailableTopics() {
		courses, err := g.repo.LoadTopicCourses(topic)
		if err != nil {
			return nil, fmt.Errorf("failed to load topic %s: %w", topic.Slug, err)
		}

		sec, ok := sections[topic.Section]
		if !ok {
			sec = &SectionSummary{Section: topic.Section}
			sections[topic.Section] = sec
			accums[topic.Section] = &sectionAccum{}
		}
		accum := accums[topic.Section]
		sec.Topics++
		sec.Courses += len(courses)
		summary.TotalTopics++
		summary.TotalCourses += len(courses)

		for i := range courses {
			course := &courses[i]
			if course.IsFree() {
				sec.FreeCourses++
			} else if price := course.PriceValue(); price > 0 {
				accum.priceSum += price
				accum.priceN++
			}
			if hours := course.DurationHours(); hours > 0 {
				accum.hoursSum += hours
				accum.hoursN++
			}
			rating := course.RatingValue()
			if rating > 0 {
				accum.ratingSum += rating
				accum.ratingN++
			}
			if rating > 0 && course.ReviewsValue() >= minRatingsForTop {
				rateable = append(rateable, courses[i])
			}
		}
	}

	for name, sec := range sections {
		accum := accums[name]
		if accum.ratingN > 0 {
			sec.AvgRating = accum.ratingSum / float64(accum.ratingN)
		}
		if accum.priceN > 0 {
			sec.AvgPrice = accum.priceSum / float64(accum.priceN)
		}
		if accum.hoursN > 0 {
			sec.AvgHours = accum.hoursSum / float64(accum.hoursN)
		}
		summary.Sections = append(summary.Sections, *sec)
	}
	sort.Slice(summary.Sections, func(a, b int) bool {
		return summary.Sections[a].Section < summary.Sections[b].Section
	})

	summary.TopRated = topRated(rateable, defaultTopRated)

	g.log.Info("Report built",
		"sections", len(summary.Sections),
		"topics", summary.TotalTopics,
		"courses", summary.TotalCourses,
	)
	return summary, nil
}

// topRated sorts by rating then review count and keeps the first n. Dedup
// by URL keeps a course listed under several topics from appearing twice.
func topRated(courses []domain.Course, n int) []domain.Course {
	sort.SliceStable(courses, func(a, b int) bool {
		if courses[a].RatingValue() != courses[b].RatingValue() {
			return courses[a].RatingValue() > courses[b].RatingValue()
		}
		return courses[a].ReviewsValue() > courses[b].ReviewsValue()
	})

	seen := make(map[string]bool)
	var top []domain.Course
	for i := range courses {
		key := courses[i].DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		top = append(top, courses[i])
		if len(top) == n {
			break
		}
	}
	return top
}

// WriteMarkdown renders the summary as a markdown document.
func WriteMarkdown(w io.Writer, s *Summary) error {
	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	write("# Course Catalog Report\n\n")
	write("Generated: %s\n\n", s.GeneratedAt.Format(time.RFC3339))
	write("- Topics: %d\n- Courses: %d\n\n", s.TotalTopics, s.TotalCourses)

	write("## Sections\n\n")
	write("| Section | Topics | Courses | Free | Avg Rating | Avg Price | Avg Hours |\n")
	write("|---|---|---|---|---|---|---|\n")
	for _, sec := range s.Sections {
		write("| %s | %d | %d | %d | %.2f | %.2f | %.1f |\n",
			sec.Section, sec.Topics, sec.Courses, sec.FreeCourses,
			sec.AvgRating, sec.AvgPrice, sec.AvgHours)
	}

	if len(s.TopRated) > 0 {
		write("\n## Top Rated\n\n")
		for i := range s.TopRated {
			course := &s.TopRated[i]
			write("%d. %s (%.1f, %d reviews)\n",
				i+1, course.Title, course.RatingValue(), course.ReviewsValue())
		}
	}
	return err
}
