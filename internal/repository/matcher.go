package repository

import (
	"sort"
	"strings"

	"github.com/jonesrussell/gocourses/internal/catalog"
	"github.com/jonesrussell/gocourses/internal/domain"
	"github.com/jonesrussell/gocourses/internal/textmatch"
)

// Course-name match scoring. A score at or above matchShortCircuit is good
// enough to stop searching further pools; results below matchFloor are not
// reported at all.
const (
	matchShortCircuit = 0.9
	matchFloor        = 0.5
)

// stopWords are ignored when comparing word sets; they carry no signal
// about which course is meant.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "in": true, "on": true,
	"to": true, "for": true, "of": true, "and": true, "with": true,
	"from": true, "course": true,
}

// MatchScore scores how well a course title matches a free-text query.
// Exact match scores 1.0, containment 0.9 or 0.85 depending on direction,
// and anything else is scored by stop-word-filtered word overlap.
func MatchScore(query, title string) float64 {
	queryNorm := strings.ToLower(strings.TrimSpace(query))
	titleNorm := strings.ToLower(strings.TrimSpace(title))

	switch {
	case queryNorm == titleNorm:
		return 1.0
	case strings.Contains(titleNorm, queryNorm):
		return 0.9
	case strings.Contains(queryNorm, titleNorm):
		return 0.85
	}

	queryWords := significantWords(queryNorm)
	if len(queryWords) == 0 {
		return 0
	}
	titleWords := significantWords(titleNorm)

	overlap := 0
	for word := range queryWords {
		if titleWords[word] {
			overlap++
		}
	}
	coverage := float64(overlap) / float64(len(queryWords))

	switch {
	case overlap >= 3:
		return min(0.8, coverage)
	case overlap == 2:
		return min(0.6, coverage)
	default:
		return coverage * 0.5
	}
}

// significantWords returns the word set of a normalized string with stop
// words removed.
func significantWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(s) {
		if !stopWords[word] {
			words[word] = true
		}
	}
	return words
}

// SearchCourseByName finds the best-matching course for a free-text name.
// Candidate pools are tried cheapest first: prior results from the caller,
// then topics already cached, then uncached topics whose slug words appear
// in the query. A match at or above 0.9 in an earlier pool short-circuits
// the later ones, and nothing below 0.5 is reported.
func (r *Repository) SearchCourseByName(
	name string,
	prior []domain.Course,
	idx *catalog.Index,
) (domain.Course, float64, bool) {
	best, bestScore := bestInPool(name, prior, domain.Course{}, 0)
	if bestScore >= matchShortCircuit {
		return best, bestScore, true
	}

	cached, err := r.LoadMultipleTopics(r.sortedCachedSlugs(), idx, true)
	if err == nil {
		best, bestScore = bestInPool(name, cached, best, bestScore)
		if bestScore >= matchShortCircuit {
			return best, bestScore, true
		}
	}

	likely, err := r.LoadMultipleTopics(r.likelyTopics(name, idx), idx, true)
	if err == nil {
		best, bestScore = bestInPool(name, likely, best, bestScore)
	}

	if bestScore < matchFloor {
		return domain.Course{}, 0, false
	}
	r.log.Debug("Matched course by name",
		"query", name,
		"title", best.Title,
		"score", bestScore,
	)
	return best, bestScore, true
}

// bestInPool scans one candidate pool and keeps the running best match.
func bestInPool(name string, pool []domain.Course, best domain.Course, bestScore float64) (domain.Course, float64) {
	for _, course := range pool {
		if score := MatchScore(name, course.Title); score > bestScore {
			best = course
			bestScore = score
		}
	}
	return best, bestScore
}

// likelyTopics returns uncached slugs whose words appear in the query,
// in lexical order so repeated searches behave identically.
func (r *Repository) likelyTopics(name string, idx *catalog.Index) []string {
	queryLower := strings.ToLower(name)

	r.mu.RLock()
	cached := make(map[string]bool, len(r.cache))
	for slug := range r.cache {
		cached[slug] = true
	}
	r.mu.RUnlock()

	var likely []string
	for _, slug := range idx.AvailableSlugs() {
		if cached[slug] {
			continue
		}
		for _, word := range strings.Split(slug, "-") {
			if len(word) > 2 && strings.Contains(queryLower, word) {
				likely = append(likely, slug)
				break
			}
		}
	}
	return likely
}

// sortedCachedSlugs returns the cached slugs in lexical order.
func (r *Repository) sortedCachedSlugs() []string {
	slugs := r.CachedSlugs()
	sort.Strings(slugs)
	return slugs
}

// GenerateCourseURL derives the canonical course page URL from a title.
func GenerateCourseURL(title string) string {
	return "https://www.udemy.com/course/" + textmatch.Slugify(title) + "/"
}
